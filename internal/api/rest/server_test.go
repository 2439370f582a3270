package rest

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/akarpov/linkcut/internal/config"
	"github.com/akarpov/linkcut/internal/storage/inmemory"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerAddress: ":8080",
		BaseURL:       "https://linkcut.example.com",
		UserKey:       "jds__63h3_7ds",
		SlugSalt:      "test salt",
		SlugMinLength: 5,
	}
}

// Tests

func TestInitServer(t *testing.T) {
	cfg := testConfig()
	srv, err := InitServer(context.Background(), cfg, zerolog.Nop(), inmemory.InitStorage(zerolog.Nop()))
	assert.NoError(t, err)
	assert.Equal(t, cfg.ServerAddress, srv.Addr)
	assert.Nil(t, srv.TLSConfig)
	assert.NotNil(t, srv.BaseContext)
}

func TestInitServerHTTPS(t *testing.T) {
	cfg := testConfig()
	cfg.EnableHTTPS = true
	srv, err := InitServer(context.Background(), cfg, zerolog.Nop(), inmemory.InitStorage(zerolog.Nop()))
	assert.NoError(t, err)
	assert.NotNil(t, srv.TLSConfig)
}

func TestAutocertManagerHostPolicy(t *testing.T) {
	manager, err := autocertManager(testConfig())
	assert.NoError(t, err)
	// issuance is allowed only for the configured public host
	assert.NoError(t, manager.HostPolicy(context.Background(), "linkcut.example.com"))
	assert.Error(t, manager.HostPolicy(context.Background(), "attacker.example.org"))
}

func TestAutocertManagerNoHost(t *testing.T) {
	cfg := testConfig()
	cfg.BaseURL = "/just/a/path"
	_, err := autocertManager(cfg)
	assert.Error(t, err)
}
