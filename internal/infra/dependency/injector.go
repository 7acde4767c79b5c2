// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/driverdash/backend/config"
	appadapter "github.com/driverdash/backend/internal/application/adapter"
	"github.com/driverdash/backend/internal/application/usecase/auth"
	"github.com/driverdash/backend/internal/application/usecase/dashboard"
	"github.com/driverdash/backend/internal/application/usecase/report"
	"github.com/driverdash/backend/internal/application/usecase/trip"
	"github.com/driverdash/backend/internal/infra/server/router"
	"github.com/driverdash/backend/internal/integration/adapters"
	"github.com/driverdash/backend/internal/integration/email"
	"github.com/driverdash/backend/internal/integration/entrypoint/controller"
	"github.com/driverdash/backend/internal/integration/entrypoint/middleware"
	"github.com/driverdash/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient and clock may be swapped out by the test harness; a nil clock
// falls back to the system clock.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, clock appadapter.Clock) *Injector {
	if clock == nil {
		clock = adapters.NewSystemClock()
	}

	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	tripRepo := persistence.NewTripRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)

	var summaryCache appadapter.SummaryCache
	if redisClient != nil {
		summaryCache = adapters.NewSummaryCache(redisClient)
	}

	var emailSender appadapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailSender, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)

	// Create trip use cases
	createTripUseCase := trip.NewCreateTripUseCase(tripRepo, summaryCache)
	listTripsUseCase := trip.NewListTripsUseCase(tripRepo)
	getTripUseCase := trip.NewGetTripUseCase(tripRepo)
	updateTripUseCase := trip.NewUpdateTripUseCase(tripRepo, summaryCache)
	deleteTripUseCase := trip.NewDeleteTripUseCase(tripRepo, summaryCache)

	// Create dashboard and report use cases
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(tripRepo, summaryCache, clock)
	exportTripsUseCase := report.NewExportTripsUseCase(tripRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	tripController := controller.NewTripController(
		createTripUseCase,
		listTripsUseCase,
		getTripUseCase,
		updateTripUseCase,
		deleteTripUseCase,
	)

	dashboardController := controller.NewDashboardController(getSummaryUseCase)
	reportController := controller.NewReportController(exportTripsUseCase)

	// Create middleware
	// Use higher rate limits for the test environment to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		tripController,
		dashboardController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
