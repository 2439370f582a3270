// Package config provides types for handling configuration parameters.
package config

import (
	"flag"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config handles server-related constants and parameters.
type Config struct {
	ServerAddress string `env:"SERVER_ADDRESS" env-default:":8080"`
	BaseURL       string `env:"BASE_URL" env-default:"http://localhost:8080"`
	EnableHTTPS   bool   `env:"ENABLE_HTTPS" env-default:"false"`
	DatabaseDSN   string `env:"DATABASE_DSN"`
	UserKey       string `env:"USER_KEY" env-default:"jds__63h3_7ds"`
	SlugSalt      string `env:"SLUG_SALT" env-default:"short link salt"`
	SlugMinLength int    `env:"SLUG_MIN_LENGTH" env-default:"5"`
	LogLevel      string `env:"LOG_LEVEL" env-default:"info"`
}

// NewDefaultConfiguration sets up a configuration from environment variables.
func NewDefaultConfiguration() (*Config, error) {
	var cfg Config
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseFlags parses command line arguments overriding values taken from environment.
func (c *Config) ParseFlags() {
	flag.StringVar(&c.ServerAddress, "a", c.ServerAddress, "Server address")
	flag.StringVar(&c.BaseURL, "b", c.BaseURL, "Base URL used for building browsable short links")
	flag.StringVar(&c.DatabaseDSN, "d", c.DatabaseDSN, "PostgreSQL DSN, in-memory storage is used when empty")
	flag.BoolVar(&c.EnableHTTPS, "s", c.EnableHTTPS, "Enable HTTPS via ACME autocert")
	flag.Parse()
}
