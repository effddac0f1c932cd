package controllers

import (
	"MediTrack/handlers"

	"github.com/gin-gonic/gin"
)

// SetupClinicRoutes registers the REST surface. Static segments
// (search, today, patient) are registered alongside the id wildcards;
// gin gives them priority.
func SetupClinicRoutes(router *gin.Engine, patientHandler *handlers.PatientHandler, consultationHandler *handlers.ConsultationHandler, dashboardHandler *handlers.DashboardHandler) {
	router.GET("/api/patients", patientHandler.GetAllPatients)
	router.GET("/api/patients/search", patientHandler.SearchPatients)
	router.GET("/api/patients/:patient_id", patientHandler.GetPatientByID)
	router.POST("/api/patients", patientHandler.CreatePatient)
	router.PUT("/api/patients/:patient_id", patientHandler.UpdatePatient)
	router.DELETE("/api/patients/:patient_id", patientHandler.DeletePatient)

	router.GET("/api/consultations", consultationHandler.GetAllConsultations)
	router.GET("/api/consultations/today", consultationHandler.GetTodayConsultations)
	router.GET("/api/consultations/patient/:patient_id", consultationHandler.GetConsultationsByPatient)
	router.GET("/api/consultations/:consultation_id", consultationHandler.GetConsultationByID)
	router.POST("/api/consultations", consultationHandler.CreateConsultation)
	router.PUT("/api/consultations/:consultation_id", consultationHandler.UpdateConsultation)
	router.DELETE("/api/consultations/:consultation_id", consultationHandler.DeleteConsultation)

	router.GET("/api/dashboard/stats", dashboardHandler.GetStats)
}
