package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: Staff authentication configuration
//   - database.go: Database and Redis configuration
//   - http.go: HTTP server configuration
//   - messaging.go: Messaging backend configuration
//   - email.go: Outbound SMTP configuration
type AppConfig struct {
	// IsDev controls development mode behavior (relaxed cookies, etc.)
	// Set DEV=true or APP_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// SoftSessionKey signs the portal soft-session cookies.
	// Required in production.
	SoftSessionKey string `env:"SOFT_SESSION_KEY"`

	// WorkspaceName names the workspace this deployment serves. It is
	// created on first start if missing.
	WorkspaceName string `env:"WORKSPACE_NAME" envDefault:"Workdesk"`

	// Staff authentication configuration
	Auth AuthConfig

	// Database configuration
	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Messaging backend configuration
	Messaging MessagingConfig `envPrefix:"MESSAGING_"`

	// Outbound email configuration
	Email EmailConfig `envPrefix:"SMTP_"`

	// Observability configuration
	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Messaging.Sanitize()
	c.Observability.Sanitize()
	c.detectDevMode()
}

// detectDevMode checks both DEV and APP_ENV environment variables.
// This is called by Sanitize() to ensure IsDev is set correctly.
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		appEnv := strings.ToLower(os.Getenv("APP_ENV"))
		c.IsDev = appEnv == "development" || appEnv == "dev"
	}
}
