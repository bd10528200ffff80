package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds the configuration for the devlink service.
// Environment variables are parsed from the DEVLINK_ prefix, e.g.
// DEVLINK_HTTP_PORT, DEVLINK_JWT_SECRET.
type Config struct {
	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Store selection: postgres or memory
	StoreDriver string `envconfig:"STORE_DRIVER" default:"postgres"`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// Token signing. The secret has no default: a process without one
	// must not start.
	JWTSecret string        `envconfig:"JWT_SECRET"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"3600s"`

	// GitHub proxy
	GithubAPIURL string `envconfig:"GITHUB_API_URL" default:"https://api.github.com"`
	GithubToken  string `envconfig:"GITHUB_TOKEN" default:""`

	// Credential endpoint rate limiting (requests per minute per IP)
	AuthRatePerMinute int `envconfig:"AUTH_RATE_PER_MINUTE" default:"30"`
}

// Validate enforces invariants that envconfig defaults cannot express.
// A missing signing secret is a fatal configuration error, never a
// per-request failure.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("DEVLINK_JWT_SECRET is required")
	}
	switch c.StoreDriver {
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("DEVLINK_POSTGRES_DSN is required for the postgres store")
		}
	case "memory":
		// no settings
	default:
		return fmt.Errorf("unsupported STORE_DRIVER: %s", c.StoreDriver)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	return nil
}

// New creates a Config by parsing environment variables and validating.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("DEVLINK", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info().
		Int("http_port", cfg.HTTPPort).
		Str("store_driver", cfg.StoreDriver).
		Bool("postgres_dsn_present", cfg.PostgresDSN != "").
		Dur("token_ttl", cfg.TokenTTL).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting returns a valid config wired for the in-memory store.
func NewForTesting() *Config {
	return &Config{
		HTTPPort:          8080,
		StoreDriver:       "memory",
		JWTSecret:         "test-secret",
		TokenTTL:          time.Hour,
		GithubAPIURL:      "https://api.github.com",
		AuthRatePerMinute: 1000,
	}
}

// GetHTTPAddr returns the HTTP server address.
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
