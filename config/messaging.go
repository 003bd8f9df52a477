package config

import "time"

// MessagingConfig contains configuration for the external messaging backend
// that hosts portal chat channels. When APIKey is empty the chat surface is
// disabled and chat-bootstrap requests return 503.
type MessagingConfig struct {
	// BaseURL is the messaging backend REST endpoint.
	BaseURL string `env:"BASE_URL" envDefault:"https://chat.stream-io-api.com"`

	// APIKey identifies the application to the backend; it is also handed
	// to browsers so they can connect directly.
	APIKey string `env:"API_KEY"`

	// APISecret signs server-to-server requests and per-user access tokens.
	APISecret string `env:"API_SECRET"`

	// ChannelType is the backend channel type portal channels are created under.
	ChannelType string `env:"CHANNEL_TYPE" envDefault:"messaging"`

	// Timeout bounds every call to the backend.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Enabled reports whether a messaging backend is configured.
func (m MessagingConfig) Enabled() bool {
	return m.APIKey != "" && m.APISecret != ""
}

// Sanitize applies guardrails to messaging configuration values.
func (m *MessagingConfig) Sanitize() {
	if m.Timeout <= 0 {
		m.Timeout = 10 * time.Second
	}
	if m.ChannelType == "" {
		m.ChannelType = "messaging"
	}
}
