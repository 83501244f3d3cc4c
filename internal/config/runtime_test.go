package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadClientConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("ENV", "")
	t.Setenv("API_BASE_URL", "")
	t.Setenv("VITE_BASE_URL", "")
	t.Setenv("STORAGE_DSN", "")
	t.Setenv("WEB_ADDR", "")

	cfg, err := LoadClientConfig()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "http://localhost:4000", cfg.BaseURL)
	assert.Equal(t, "signup.db", cfg.StorageDSN)
	assert.Equal(t, ":5173", cfg.WebAddr)
}

func TestLoadClientConfig_ViteFallbackAndTrailingSlash(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("VITE_BASE_URL", "http://api.local:8080/")

	cfg, err := LoadClientConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://api.local:8080", cfg.BaseURL)
}

func TestLoadClientConfig_RejectsRelativeBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "/users")

	_, err := LoadClientConfig()
	assert.Error(t, err)
}

func TestLoadClientConfig_ProdRequiresHTTPS(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("API_BASE_URL", "http://api.example.com")

	_, err := LoadClientConfig()
	assert.ErrorContains(t, err, "https")

	t.Setenv("API_BASE_URL", "https://api.example.com")
	cfg, err := LoadClientConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.BaseURL)
}

func TestLoadMockAPIConfig(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("MOCKAPI_TOKEN_TTL", "2h")

	cfg, err := LoadMockAPIConfig()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, ":4000", cfg.Addr)
}

func TestLoadMockAPIConfig_Invalid(t *testing.T) {
	t.Setenv("MOCKAPI_TOKEN_TTL", "soon")
	_, err := LoadMockAPIConfig()
	assert.ErrorContains(t, err, "MOCKAPI_TOKEN_TTL")

	t.Setenv("MOCKAPI_TOKEN_TTL", "1h")
	t.Setenv("APP_ENV", "release")
	t.Setenv("MOCKAPI_JWT_SECRET", "")
	_, err = LoadMockAPIConfig()
	assert.ErrorContains(t, err, "MOCKAPI_JWT_SECRET")
}
