package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	Environment        string
	DatabaseURL        string
	CORSOrigin         string
	AccessTokenSecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenSecret string
	RefreshTokenExpiry time.Duration
}

// Load reads configuration from the environment. Token secrets and expiries
// are not validated here; the token issuer checks them on first use so a
// missing value fails the request that needs it rather than process startup.
func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:               getEnv("PORT", "8000"),
		Environment:        getEnv("APP_ENV", "development"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		CORSOrigin:         getEnv("CORS_ORIGIN", ""),
		AccessTokenSecret:  getEnv("ACCESS_TOKEN_SECRET", ""),
		AccessTokenExpiry:  getDuration("ACCESS_TOKEN_EXPIRY"),
		RefreshTokenSecret: getEnv("REFRESH_TOKEN_SECRET", ""),
		RefreshTokenExpiry: getDuration("REFRESH_TOKEN_EXPIRY"),
	}
}

// IsDevelopment reports whether the server runs in development mode, which
// attaches stack traces to 5xx responses.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration returns zero when the variable is unset or malformed; the zero
// value is treated as "not configured" downstream.
func getDuration(key string) time.Duration {
	if exp := os.Getenv(key); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			return parsed
		}
	}
	return 0
}
