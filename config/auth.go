package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the staff authentication mode for the application.
type AuthMode string

const (
	// AuthModeOAuth uses OAuth/OIDC for staff authentication.
	AuthModeOAuth AuthMode = "oauth"
	// AuthModeMock uses mock/dev authentication (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "oauth", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: oauth, mock)", v)
	}
}

// OAuthConfig contains OAuth/OIDC configuration for staff sign-in.
type OAuthConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"workdesk"`
	ClientSecret string `env:"CLIENT_SECRET" envDefault:"workdesk"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/auth/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email groups"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
	LogoutURL    string `env:"LOGOUT_URL"`
}

// DevAuthConfig controls mock/dev authentication identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	UserID      string `env:"USER_ID"      envDefault:"dev-user"`
	Email       string `env:"EMAIL"        envDefault:"dev@example.com"`
	WorkspaceID string `env:"WORKSPACE_ID" envDefault:"dev-workspace"`
	Admin       bool   `env:"ADMIN"        envDefault:"true"`
}

// AuthConfig groups all staff-authentication configuration.
type AuthConfig struct {
	// Mode determines which authentication provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"oauth"`

	// OAuth configuration (used when Mode=oauth).
	OAuth OAuthConfig `envPrefix:"OAUTH_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`

	// AdminGroup is the IdP group granting workspace admin rights.
	AdminGroup string `env:"ADMIN_GROUP" envDefault:"workdesk-admins"`

	// StaffGroup is the IdP group granting regular staff access.
	StaffGroup string `env:"STAFF_GROUP" envDefault:"workdesk-staff"`

	// MagicLinkTTL is the lifetime of RFP magic-link tokens.
	MagicLinkTTL time.Duration `env:"MAGIC_LINK_TTL" envDefault:"1h"`

	// SoftSessionTTL is the lifetime of portal soft-session cookies.
	SoftSessionTTL time.Duration `env:"SOFT_SESSION_TTL" envDefault:"168h"`
}
