package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv  string
	AppPort string

	// Which payment backend the factory should build, e.g. "stripe".
	ProcessorType string

	StripeSecretKey string

	// Public hostname of the storefront, used for redirect URLs and
	// the support-email domain.
	PublicHostname string

	// Base URL of the public asset storage, used for product images.
	PublicStorageURL string

	JWTSecret string
}

// Load reads configuration from the environment, loading .env when present.
// Credential validation for a specific processor happens in the payment
// factory; Load only enforces what every deployment needs.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		AppPort:          getEnv("APP_PORT", "8080"),
		ProcessorType:    getEnv("PAYMENT_PROCESSOR_TYPE", "stripe"),
		StripeSecretKey:  os.Getenv("STRIPE_SECRET_KEY"),
		PublicHostname:   os.Getenv("PUBLIC_HOSTNAME"),
		PublicStorageURL: os.Getenv("PUBLIC_STORAGE_URL"),
		JWTSecret:        os.Getenv("SECRET_KEY"),
	}

	if cfg.PublicHostname == "" {
		if cfg.AppEnv == "development" {
			cfg.PublicHostname = "http://localhost:3000"
		} else {
			return nil, fmt.Errorf("PUBLIC_HOSTNAME is required outside development")
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
