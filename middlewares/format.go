package middlewares

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HttpError logs the underlying error and writes a client-safe JSON
// message; internal detail never reaches the response body.
func HttpError(c *gin.Context, message string, status int, err error) {
	log.Printf("HTTP %d - %s: %v", status, message, err)
	c.JSON(status, gin.H{"message": message})
}

// BindError reports a request body that could not be decoded at all.
func BindError(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": message,
		"errors":  gin.H{"body": err.Error()},
	})
}

// ValidationError reports per-field violations. The errors value is an
// ozzo validation.Errors map, which marshals as field -> message.
func ValidationError(c *gin.Context, message string, errs error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": message,
		"errors":  errs,
	})
}
