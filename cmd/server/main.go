package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"rupivo-partner/internal/adapters/http/handlers"
	"rupivo-partner/internal/adapters/http/middleware"
	"rupivo-partner/internal/adapters/http/routes"
	"rupivo-partner/internal/adapters/persistence/repositories"
	"rupivo-partner/internal/config"
	"rupivo-partner/internal/core/services"
	"rupivo-partner/internal/pkg/gemini"
	"rupivo-partner/internal/pkg/qrcode"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	_ "rupivo-partner/docs" // Swagger docs
)

// @title Rupivo Partner API
// @version 1.0
// @description Referral partner portal API: dashboard, referral tracking, earnings and marketing tools
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email partners@rupivo.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host api.rupivo.com
// @BasePath /api/v1
// @schemes https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Amounts are rendered as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	// Seed the partner session
	seed := config.Seed()
	store := repositories.NewSessionStore(seed.Profile, seed.Referrals, seed.Payouts)

	// AI assistant (nil generator serves fallbacks only)
	var generator services.TextGenerator
	if cfg.GeminiEnabled() {
		generator = gemini.NewClient(cfg.Gemini.BaseURL, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
		log.Printf("✅ Gemini assistant enabled [MODEL: %s]", cfg.Gemini.Model)
	} else {
		log.Println("⚠️ GEMINI_API_KEY not set, marketing tools will use fallback content")
	}

	svc := &routes.Services{
		Referrals: services.NewReferralService(store.Referrals(), cfg.Timeline.OffsetDays, cfg.Portal.DefaultCommissionRate),
		Dashboard: services.NewDashboardService(store.Referrals(), store.Payouts()),
		Earnings:  services.NewEarningsService(store.Payouts()),
		Marketing: services.NewMarketingService(generator, store.Profile(), cfg.Portal.ApplyURL),
		Profile: services.NewProfileService(store.Profile(), cfg.Portal.InstallURL, cfg.Portal.QRServiceURL,
			qrcode.NewClient(cfg.Portal.QRTimeout)),
	}

	// Start Cron Service for the daily partner summary
	cronService := services.NewCronService(cfg.Cron.SummarySchedule, svc.Dashboard, svc.Earnings)
	if err := cronService.Start(); err != nil {
		log.Fatalf("❌ Failed to schedule daily summary: %v", err)
	}
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Rupivo Partner API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
		BodyLimit:    handlers.MaxBulkUploadSize + 1<<20,
		Immutable:    true,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, svc, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
