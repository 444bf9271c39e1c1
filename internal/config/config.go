package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the calculator settings.
type Config struct {
	MaxPrincipal    float64
	MaxAnnualRate   float64
	MaxTermPeriods  int
	MaxOverpayment  float64
	CurrencySymbol  string
	OTELEndpoint    string
	OTELServiceName string
	LogLevel        string
	MetricsFile     string
}

// LoadConfig reads the configuration from the environment, after loading .env if present.
func LoadConfig() (*Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	cfg := &Config{
		MaxPrincipal:    getEnvFloat("MAX_PRINCIPAL", 1e9),
		MaxAnnualRate:   getEnvFloat("MAX_ANNUAL_RATE", 2.0),
		MaxTermPeriods:  getEnvInt("MAX_TERM_PERIODS", 600),
		MaxOverpayment:  getEnvFloat("MAX_OVERPAYMENT", 1e8),
		CurrencySymbol:  getEnvString("CURRENCY_SYMBOL", "£"),
		OTELEndpoint:    getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName: getEnvString("OTEL_SERVICE_NAME", "mortgage-overpayment-calculator"),
		LogLevel:        getEnvString("LOG_LEVEL", "INFO"),
		MetricsFile:     getEnvString("METRICS_FILE", ""),
	}

	return cfg, nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
