package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// rootHandler answers health probes on the root path.
func rootHandler(c *gin.Context) {
	c.String(http.StatusOK, "MediTrack API is running")
}

// SetupRootRoute sets up the root route for the application.
func SetupRootRoute(router *gin.Engine) {
	router.GET("/", rootHandler)
}
