package config

import (
	"fmt"
	"net/url"

	"github.com/kelseyhightower/envconfig"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the bistro service.
// Environment variables are automatically parsed from the BISTRO_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"5000"`

	// Mongo Configuration. MongoURI wins when set; otherwise the URI is
	// derived from the user/password pair against MongoHost.
	MongoURI      string `envconfig:"MONGO_URI" default:""`
	MongoUser     string `envconfig:"DB_USER" default:""`
	MongoPassword string `envconfig:"DB_PASSWORD" default:""`
	MongoHost     string `envconfig:"DB_HOST" default:"localhost:27017"`
	MongoDatabase string `envconfig:"DB_NAME" default:"bistroDb"`

	// Auth Configuration
	JWTSecret   string `envconfig:"ACCESS_TOKEN_SECRET" default:""`
	JWTTTLHours int    `envconfig:"ACCESS_TOKEN_TTL_HOURS" default:"1"`

	// Payment provider
	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY" default:""`

	// CORS allow-list; empty means no cross-origin access.
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173"`
}

// New creates a new Config by parsing environment variables.
// Environment variables should be prefixed with BISTRO_
// Example: BISTRO_HTTP_PORT, BISTRO_ACCESS_TOKEN_SECRET
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("BISTRO", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate enforces the options the service cannot start without.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("BISTRO_ACCESS_TOKEN_SECRET is required")
	}
	if c.JWTTTLHours <= 0 {
		return fmt.Errorf("BISTRO_ACCESS_TOKEN_TTL_HOURS must be positive")
	}
	if c.MongoURI == "" && c.MongoUser == "" {
		return fmt.Errorf("either BISTRO_MONGO_URI or BISTRO_DB_USER/BISTRO_DB_PASSWORD is required")
	}
	return nil
}

// ResolveMongoURI returns the connection string, deriving it from the
// credential pair when no explicit URI is configured.
func (c *Config) ResolveMongoURI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	return fmt.Sprintf("mongodb://%s:%s@%s",
		url.QueryEscape(c.MongoUser), url.QueryEscape(c.MongoPassword), c.MongoHost)
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	return &Config{
		Environment:   EnvTesting,
		HTTPPort:      5000,
		MongoHost:     "localhost:27017",
		MongoDatabase: "bistroTestDb",
		JWTSecret:     "test-secret",
		JWTTTLHours:   1,
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
