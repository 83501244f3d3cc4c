package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	defaultBaseURL        = "http://localhost:4000"
	defaultStorageDSN     = "signup.db"
	defaultWebAddr        = ":5173"
	defaultMockAPIAddr    = ":4000"
	defaultMockAPISecret  = "change-me-jwt-secret"
	defaultMockAPITTL     = "24h"
	defaultMockAPIStorage = "mockapi.db"
)

// ClientConfig configures the signup client front ends.
type ClientConfig struct {
	AppEnv     string
	BaseURL    string
	StorageDSN string
	WebAddr    string
}

// MockAPIConfig configures the development registration backend.
type MockAPIConfig struct {
	AppEnv     string
	Addr       string
	StorageDSN string
	JWTSecret  string
	TokenTTL   time.Duration
}

func LoadClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{
		AppEnv:     appEnv(),
		BaseURL:    strings.TrimRight(strings.TrimSpace(getEnv("API_BASE_URL", getEnv("VITE_BASE_URL", defaultBaseURL))), "/"),
		StorageDSN: strings.TrimSpace(getEnv("STORAGE_DSN", defaultStorageDSN)),
		WebAddr:    strings.TrimSpace(getEnv("WEB_ADDR", defaultWebAddr)),
	}

	if err := validateClientConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("signup client config: env=%s base_url=%s storage=%s", cfg.AppEnv, cfg.BaseURL, cfg.StorageDSN)

	return cfg, nil
}

func LoadMockAPIConfig() (*MockAPIConfig, error) {
	cfg := &MockAPIConfig{
		AppEnv:     appEnv(),
		Addr:       strings.TrimSpace(getEnv("MOCKAPI_ADDR", defaultMockAPIAddr)),
		StorageDSN: strings.TrimSpace(getEnv("MOCKAPI_STORAGE_DSN", defaultMockAPIStorage)),
		JWTSecret:  strings.TrimSpace(getEnv("MOCKAPI_JWT_SECRET", defaultMockAPISecret)),
	}

	var err error
	cfg.TokenTTL, err = parseDurationEnv("MOCKAPI_TOKEN_TTL", defaultMockAPITTL)
	if err != nil {
		return nil, err
	}

	if err := validateMockAPIConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateClientConfig(cfg *ClientConfig) error {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid API_BASE_URL %q: %w", cfg.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("API_BASE_URL must be an http(s) URL, got %q", cfg.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("API_BASE_URL must include a host, got %q", cfg.BaseURL)
	}
	if cfg.StorageDSN == "" {
		return fmt.Errorf("STORAGE_DSN must not be empty")
	}
	if cfg.WebAddr == "" {
		return fmt.Errorf("WEB_ADDR must not be empty")
	}
	if isProdLike(cfg.AppEnv) && u.Scheme != "https" {
		return fmt.Errorf("in prod/release API_BASE_URL must use https")
	}
	return nil
}

func validateMockAPIConfig(cfg *MockAPIConfig) error {
	if cfg.TokenTTL <= 0 {
		return fmt.Errorf("MOCKAPI_TOKEN_TTL must be > 0")
	}
	if cfg.Addr == "" {
		return fmt.Errorf("MOCKAPI_ADDR must not be empty")
	}
	if isProdLike(cfg.AppEnv) && isEmptyOrDefault(cfg.JWTSecret, defaultMockAPISecret) {
		return fmt.Errorf("in prod/release MOCKAPI_JWT_SECRET must be set and not default")
	}
	return nil
}

func appEnv() string {
	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = strings.TrimSpace(os.Getenv("ENV"))
	}
	if env == "" {
		env = "dev"
	}
	return strings.ToLower(env)
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
