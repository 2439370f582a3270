package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tests

func TestNewDefaultConfiguration(t *testing.T) {
	os.Clearenv()
	_ = os.Setenv("SERVER_ADDRESS", "some_server_address")
	_ = os.Setenv("BASE_URL", "some_base_url")
	_ = os.Setenv("DATABASE_DSN", "some_dsn")
	_ = os.Setenv("USER_KEY", "some_user_key")
	_ = os.Setenv("SLUG_SALT", "some_salt")
	_ = os.Setenv("SLUG_MIN_LENGTH", "7")
	_ = os.Setenv("ENABLE_HTTPS", "false")
	_ = os.Setenv("LOG_LEVEL", "debug")
	cfg, err := NewDefaultConfiguration()
	assert.NoError(t, err)
	expCfg := Config{
		ServerAddress: "some_server_address",
		BaseURL:       "some_base_url",
		EnableHTTPS:   false,
		DatabaseDSN:   "some_dsn",
		UserKey:       "some_user_key",
		SlugSalt:      "some_salt",
		SlugMinLength: 7,
		LogLevel:      "debug",
	}
	assert.Equal(t, &expCfg, cfg)
}

func TestNewDefaultConfigurationDefaults(t *testing.T) {
	os.Clearenv()
	cfg, err := NewDefaultConfiguration()
	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "", cfg.DatabaseDSN)
	assert.Equal(t, 5, cfg.SlugMinLength)
	assert.False(t, cfg.EnableHTTPS)
}

// Benchmarks

func BenchmarkNewDefaultConfiguration(b *testing.B) {
	os.Clearenv()
	_ = os.Setenv("SERVER_ADDRESS", "some_server_address")
	_ = os.Setenv("BASE_URL", "some_base_url")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = NewDefaultConfiguration()
	}
}
