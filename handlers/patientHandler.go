package handlers

import (
	"MediTrack/middlewares"
	"MediTrack/models"
	"MediTrack/services"
	"MediTrack/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// parseID reads a numeric path parameter. A non-numeric value can
// never name a record, so callers treat a false return as not-found.
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	patients, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Failed to fetch patients", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *PatientHandler) SearchPatients(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Query parameter 'q' is required"})
		return
	}
	patients, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		middlewares.HttpError(c, "Failed to search patients", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id, ok := parseID(c, "patient_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Patient not found"})
		return
	}
	patient, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		middlewares.HttpError(c, "Failed to fetch patient", http.StatusInternalServerError, err)
		return
	}
	if patient == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Patient not found"})
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var input models.PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middlewares.BindError(c, "Invalid patient data", err)
		return
	}
	if err := utils.ValidatePatientInput(&input); err != nil {
		middlewares.ValidationError(c, "Invalid patient data", err)
		return
	}
	patient, err := h.service.Create(c.Request.Context(), &input)
	if err != nil {
		middlewares.HttpError(c, "Failed to create patient", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, patient)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, ok := parseID(c, "patient_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Patient not found"})
		return
	}
	var update models.PatientUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		middlewares.BindError(c, "Invalid patient data", err)
		return
	}
	if err := utils.ValidatePatientUpdate(&update); err != nil {
		middlewares.ValidationError(c, "Invalid patient data", err)
		return
	}
	patient, err := h.service.Update(c.Request.Context(), id, &update)
	if err != nil {
		middlewares.HttpError(c, "Failed to update patient", http.StatusInternalServerError, err)
		return
	}
	if patient == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Patient not found"})
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, ok := parseID(c, "patient_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Patient not found"})
		return
	}
	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		middlewares.HttpError(c, "Failed to delete patient", http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Patient not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
