package handlers

import (
	"MediTrack/middlewares"
	"MediTrack/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Failed to fetch dashboard stats", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
