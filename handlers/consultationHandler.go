package handlers

import (
	"MediTrack/middlewares"
	"MediTrack/models"
	"MediTrack/services"
	"MediTrack/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ConsultationHandler struct {
	service *services.ConsultationService
}

func NewConsultationHandler(service *services.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{service: service}
}

func (h *ConsultationHandler) GetAllConsultations(c *gin.Context) {
	consultations, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Failed to fetch consultations", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, consultations)
}

func (h *ConsultationHandler) GetTodayConsultations(c *gin.Context) {
	consultations, err := h.service.GetToday(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Failed to fetch today's consultations", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, consultations)
}

func (h *ConsultationHandler) GetConsultationsByPatient(c *gin.Context) {
	patientID, ok := parseID(c, "patient_id")
	if !ok {
		c.JSON(http.StatusOK, []models.Consultation{})
		return
	}
	consultations, err := h.service.GetByPatient(c.Request.Context(), patientID)
	if err != nil {
		middlewares.HttpError(c, "Failed to fetch patient consultations", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, consultations)
}

func (h *ConsultationHandler) GetConsultationByID(c *gin.Context) {
	id, ok := parseID(c, "consultation_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Consultation not found"})
		return
	}
	consultation, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middlewares.HttpError(c, "Failed to fetch consultation", http.StatusInternalServerError, err)
		return
	}
	if consultation == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Consultation not found"})
		return
	}
	c.JSON(http.StatusOK, consultation)
}

func (h *ConsultationHandler) CreateConsultation(c *gin.Context) {
	var input models.ConsultationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middlewares.BindError(c, "Invalid consultation data", err)
		return
	}
	if err := utils.ValidateConsultationInput(&input); err != nil {
		middlewares.ValidationError(c, "Invalid consultation data", err)
		return
	}
	consultation, err := h.service.Create(c.Request.Context(), &input)
	if err != nil {
		middlewares.HttpError(c, "Failed to create consultation", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, consultation)
}

func (h *ConsultationHandler) UpdateConsultation(c *gin.Context) {
	id, ok := parseID(c, "consultation_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Consultation not found"})
		return
	}
	var update models.ConsultationUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		middlewares.BindError(c, "Invalid consultation data", err)
		return
	}
	if err := utils.ValidateConsultationUpdate(&update); err != nil {
		middlewares.ValidationError(c, "Invalid consultation data", err)
		return
	}
	consultation, err := h.service.Update(c.Request.Context(), id, &update)
	if err != nil {
		middlewares.HttpError(c, "Failed to update consultation", http.StatusInternalServerError, err)
		return
	}
	if consultation == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Consultation not found"})
		return
	}
	c.JSON(http.StatusOK, consultation)
}

func (h *ConsultationHandler) DeleteConsultation(c *gin.Context) {
	id, ok := parseID(c, "consultation_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Consultation not found"})
		return
	}
	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		middlewares.HttpError(c, "Failed to delete consultation", http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Consultation not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
