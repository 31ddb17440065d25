package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration.
// Populated from environment variables; .env is loaded by the binaries.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Backend  BackendConfig
	Esewa    EsewaConfig
	Checkout CheckoutConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

// BackendConfig points at the authoritative commerce backend.
// All order, payment and product state lives there; this service only
// forwards the caller's session cookie.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// EsewaConfig describes the redirect payment gateway callbacks.
type EsewaConfig struct {
	ProductCode string // merchant code echoed in callbacks (e.g. "EPAYTEST")
	SecretKey   string // HMAC-SHA256 secret; empty disables signature checks
	SuccessURL  string // where the gateway redirects after payment
	FailureURL  string // where the gateway redirects after cancel/decline
}

type CheckoutConfig struct {
	PendingTTL   time.Duration // age after which a pending checkout is abandoned
	CartCacheTTL time.Duration // redis read-cache TTL for cart line blobs
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Storefront API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "storefront"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		},
		Backend: BackendConfig{
			BaseURL: getEnv("BACKEND_URL", "http://localhost:9000"),
			Timeout: time.Duration(getEnvInt("BACKEND_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Esewa: EsewaConfig{
			ProductCode: getEnv("ESEWA_PRODUCT_CODE", "EPAYTEST"),
			SecretKey:   getEnv("ESEWA_SECRET_KEY", ""),
			SuccessURL:  getEnv("ESEWA_SUCCESS_URL", "http://localhost:3000/products/checkout/payment/success"),
			FailureURL:  getEnv("ESEWA_FAILURE_URL", "http://localhost:3000/products/checkout/payment/failed"),
		},
		Checkout: CheckoutConfig{
			PendingTTL:   time.Duration(getEnvInt("CHECKOUT_PENDING_TTL_HOURS", 24)) * time.Hour,
			CartCacheTTL: time.Duration(getEnvInt("CART_CACHE_TTL_SECONDS", 300)) * time.Second,
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that production deployments carry real secrets
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.Esewa.SecretKey == "" {
			fmt.Println("WARNING: eSewa secret not set - callback signatures will not be verified")
		}
	}

	if c.Checkout.PendingTTL <= 0 {
		return fmt.Errorf("CHECKOUT_PENDING_TTL_HOURS must be positive")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
