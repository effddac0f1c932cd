package routes

import (
	"MediTrack/cache"
	"MediTrack/config"
	"MediTrack/controllers"
	"MediTrack/handlers"
	"MediTrack/middlewares"
	"MediTrack/repositories"
	"MediTrack/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server.
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	router.Use(middlewares.LoggingMiddleware())

	storage := repositories.NewDatabaseRepository(db, cache)

	patientHandler := handlers.NewPatientHandler(services.NewPatientService(storage))
	consultationHandler := handlers.NewConsultationHandler(services.NewConsultationService(storage))
	dashboardHandler := handlers.NewDashboardHandler(services.NewDashboardService(storage))

	controllers.SetupClinicRoutes(router, patientHandler, consultationHandler, dashboardHandler)
	controllers.SetupRootRoute(router)

	return router
}
