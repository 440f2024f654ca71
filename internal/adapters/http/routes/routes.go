package routes

import (
	"time"

	"rupivo-partner/internal/adapters/http/handlers"
	"rupivo-partner/internal/adapters/http/middleware"
	"rupivo-partner/internal/config"
	"rupivo-partner/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Services groups the services the HTTP API exposes
type Services struct {
	Referrals *services.ReferralService
	Dashboard *services.DashboardService
	Earnings  *services.EarningsService
	Marketing *services.MarketingService
	Profile   *services.ProfileService
}

// Setup configures all routes for the application
func Setup(app *fiber.App, svc *Services, cfg *config.Config) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard)
	referralHandler := handlers.NewReferralHandler(svc.Referrals)
	earningsHandler := handlers.NewEarningsHandler(svc.Earnings)
	marketingHandler := handlers.NewMarketingHandler(svc.Marketing)
	profileHandler := handlers.NewProfileHandler(svc.Profile)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)
	apiV1.Get("/health", healthHandler.HealthCheck)

	// Session data changes on every write, never cache it
	dashboardRoutes := apiV1.Group("/dashboard", middleware.NoCacheHeaders())
	dashboardRoutes.Get("/", dashboardHandler.GetDashboard)

	referralRoutes := apiV1.Group("/referrals", middleware.NoCacheHeaders())
	setupReferralRoutes(referralRoutes, referralHandler)

	earningsRoutes := apiV1.Group("/earnings", middleware.NoCacheHeaders())
	earningsRoutes.Get("/", earningsHandler.GetEarnings)

	payoutRoutes := apiV1.Group("/payouts", middleware.NoCacheHeaders())
	payoutRoutes.Get("/", earningsHandler.ListPayouts)
	payoutRoutes.Get("/export", earningsHandler.ExportPayouts)

	marketingRoutes := apiV1.Group("/marketing")
	setupMarketingRoutes(marketingRoutes, marketingHandler)

	profileRoutes := apiV1.Group("/profile", middleware.PrivateCacheHeaders(5*time.Minute))
	setupProfileRoutes(profileRoutes, profileHandler)
}

// setupReferralRoutes configures referral tracking routes
func setupReferralRoutes(router fiber.Router, handler *handlers.ReferralHandler) {
	router.Get("/", handler.List)
	router.Get("/categories", handler.Categories)
	router.Get("/:id", handler.GetByID)
	router.Post("/", handler.Create)
	router.Post("/bulk", handler.BulkCreate)
}

// setupMarketingRoutes configures AI marketing tool routes
func setupMarketingRoutes(router fiber.Router, handler *handlers.MarketingHandler) {
	router.Get("/link", handler.GetLink)

	// Generation calls out to the AI provider (10 req/min/IP)
	router.Post("/message", middleware.GenerationRateLimiter(), handler.GenerateMessage)
	router.Post("/ideas", middleware.GenerationRateLimiter(), handler.GenerateIdeas)
}

// setupProfileRoutes configures profile and QR code routes
func setupProfileRoutes(router fiber.Router, handler *handlers.ProfileHandler) {
	router.Get("/", handler.GetProfile)
	router.Get("/qr", handler.GetQRCode)
	router.Get("/qr/image", handler.DownloadQRCode)
}
