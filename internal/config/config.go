package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"rupivo-partner/internal/core/domain"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Gemini   GeminiConfig
	Portal   PortalConfig
	Timeline TimelineConfig
	Cron     CronConfig
}

// GeminiConfig holds the generative-AI client configuration
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// PortalConfig holds partner-facing links and commission defaults
type PortalConfig struct {
	ApplyURL              string
	InstallURL            string
	QRServiceURL          string
	QRTimeout             time.Duration
	DefaultCommissionRate decimal.Decimal
}

// TimelineConfig holds per-step display offsets in days
type TimelineConfig struct {
	OffsetDays []int
}

// CronConfig holds scheduled job configuration
type CronConfig struct {
	SummarySchedule string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	gemini, err := loadGeminiConfig()
	if err != nil {
		return nil, err
	}
	portal, err := loadPortalConfig()
	if err != nil {
		return nil, err
	}
	timeline, err := loadTimelineConfig()
	if err != nil {
		return nil, err
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		Gemini:   gemini,
		Portal:   portal,
		Timeline: timeline,
		Cron: CronConfig{
			SummarySchedule: getEnv("SUMMARY_CRON", "30 8 * * *"),
		},
	}

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

func loadGeminiConfig() (GeminiConfig, error) {
	timeout, err := getEnvSeconds("GEMINI_TIMEOUT_SECONDS", 20)
	if err != nil {
		return GeminiConfig{}, err
	}

	return GeminiConfig{
		APIKey:  getEnv("GEMINI_API_KEY", ""),
		Model:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		BaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		Timeout: timeout,
	}, nil
}

func loadPortalConfig() (PortalConfig, error) {
	rate, err := decimal.NewFromString(getEnv("DEFAULT_COMMISSION_RATE", "0.015"))
	if err != nil || !rate.IsPositive() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return PortalConfig{}, fmt.Errorf("invalid DEFAULT_COMMISSION_RATE: must be a fraction between 0 and 1")
	}
	qrTimeout, err := getEnvSeconds("QR_TIMEOUT_SECONDS", 10)
	if err != nil {
		return PortalConfig{}, err
	}

	return PortalConfig{
		ApplyURL:              getEnv("PORTAL_APPLY_URL", "https://rupivo.com/apply"),
		InstallURL:            getEnv("PORTAL_INSTALL_URL", "https://rupivo.com/install"),
		QRServiceURL:          getEnv("QR_SERVICE_URL", "https://api.qrserver.com/v1/create-qr-code/"),
		QRTimeout:             qrTimeout,
		DefaultCommissionRate: rate,
	}, nil
}

func loadTimelineConfig() (TimelineConfig, error) {
	raw := getEnv("TIMELINE_OFFSET_DAYS", "")
	if raw == "" {
		return TimelineConfig{OffsetDays: append([]int{}, domain.DefaultTimelineOffsets...)}, nil
	}

	parts := strings.Split(raw, ",")
	offsets := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return TimelineConfig{}, fmt.Errorf("invalid TIMELINE_OFFSET_DAYS: %q is not a number", p)
		}
		offsets = append(offsets, n)
	}
	if err := domain.ValidateTimelineOffsets(offsets); err != nil {
		return TimelineConfig{}, fmt.Errorf("invalid TIMELINE_OFFSET_DAYS: need %d non-decreasing values", len(domain.StatusSteps))
	}

	return TimelineConfig{OffsetDays: offsets}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvSeconds reads a positive number of seconds
func getEnvSeconds(key string, defaultSeconds int) (time.Duration, error) {
	secs, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultSeconds)))
	if err != nil || secs <= 0 {
		return 0, fmt.Errorf("invalid %s: must be a positive integer", key)
	}
	return time.Duration(secs) * time.Second, nil
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// GeminiEnabled reports whether an API key is configured
func (c *Config) GeminiEnabled() bool {
	return c.Gemini.APIKey != ""
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://partners.rupivo.com"
	}
	return origins
}
