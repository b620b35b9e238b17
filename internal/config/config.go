// Package config loads application settings from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the service.
type Config struct {
	AppName string `env:"APP_NAME,default=Blog API"`
	Debug   bool   `env:"DEBUG,default=false"`

	Host string `env:"HOST,default=0.0.0.0"`
	Port int    `env:"PORT,default=8000"`

	DatabaseURL    string        `env:"DATABASE_URL"`
	DBWaitInterval time.Duration `env:"DB_WAIT_INTERVAL,default=2s"`
	// Zero means wait forever.
	DBWaitTimeout time.Duration `env:"DB_WAIT_TIMEOUT,default=0s"`

	SecretKey                string `env:"SECRET_KEY"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES,default=30"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID,default="`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET,default="`
	FrontendLoginURL   string `env:"FRONTEND_LOGIN_URL,default=http://localhost:3000/login-success"`
}

// Load reads settings from a .env file (if present) and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.SecretKey == "" {
		return Config{}, fmt.Errorf("SECRET_KEY is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("PORT %d out of range", cfg.Port)
	}
	if cfg.DBWaitInterval <= 0 {
		return Config{}, fmt.Errorf("DB_WAIT_INTERVAL must be positive")
	}
	if cfg.AccessTokenExpireMinutes <= 0 {
		return Config{}, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}

	return cfg, nil
}

// Addr returns the host:port the HTTP server binds to.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// AccessTokenTTL returns the configured access token lifetime.
func (c Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}
