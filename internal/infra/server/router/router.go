// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/driverdash/backend/internal/integration/entrypoint/controller"
	"github.com/driverdash/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	tripController      *controller.TripController
	dashboardController *controller.DashboardController
	reportController    *controller.ReportController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	tripController *controller.TripController,
	dashboardController *controller.DashboardController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		tripController:      tripController,
		dashboardController: dashboardController,
		reportController:    reportController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			auth.POST("/refresh", r.authController.RefreshToken)
			auth.POST("/logout", r.authController.Logout)
			auth.POST("/forgot-password", r.authController.ForgotPassword)
			auth.POST("/reset-password", r.authController.ResetPassword)
		}

		trips := v1.Group("/trips")
		trips.Use(r.authMiddleware.Authenticate())
		{
			trips.GET("", r.tripController.List)
			trips.POST("", r.tripController.Create)
			trips.GET("/:id", r.tripController.Get)
			trips.PUT("/:id", r.tripController.Update)
			trips.DELETE("/:id", r.tripController.Delete)
		}

		dashboardGroup := v1.Group("/dashboard")
		dashboardGroup.Use(r.authMiddleware.Authenticate())
		{
			dashboardGroup.GET("/summary", r.dashboardController.GetSummary)
		}

		reports := v1.Group("/reports")
		reports.Use(r.authMiddleware.Authenticate())
		{
			reports.GET("/trips", r.reportController.ExportTrips)
		}
	}
}
