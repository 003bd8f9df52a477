package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/stackfall/workdesk/config"
	"github.com/stackfall/workdesk/internal/adapters/devauth"
	"github.com/stackfall/workdesk/internal/adapters/oidc"
	"github.com/stackfall/workdesk/internal/ports"
)

// BuildAuthProvider constructs the staff auth provider for the configured
// mode. Mock mode is rejected outside development so a misconfigured
// production deployment cannot silently run with an open door.
//
//nolint:ireturn // the caller only needs the port.
func BuildAuthProvider(cfg *config.AppConfig, logger *slog.Logger) (ports.AuthProvider, error) {
	switch cfg.Auth.Mode {
	case config.AuthModeMock:
		if !cfg.IsDev {
			return nil, fmt.Errorf("auth mode %q is only allowed in development", cfg.Auth.Mode)
		}
		if logger != nil {
			logger.Warn("using mock auth provider", "user", cfg.Auth.DevAuth.Email)
		}
		groups := []string{cfg.Auth.StaffGroup}
		if cfg.Auth.DevAuth.Admin {
			groups = append(groups, cfg.Auth.AdminGroup)
		}
		return devauth.NewProvider(devauth.Config{
			UserID: cfg.Auth.DevAuth.UserID,
			Email:  cfg.Auth.DevAuth.Email,
			Groups: groups,
		})
	case config.AuthModeOAuth:
		provider, err := oidc.NewProvider(oidc.ProviderConfig{
			ClientID:     cfg.Auth.OAuth.ClientID,
			ClientSecret: cfg.Auth.OAuth.ClientSecret,
			RedirectURL:  cfg.Auth.OAuth.RedirectURL,
			Scope:        cfg.Auth.OAuth.Scope,
			DiscoveryURL: cfg.Auth.OAuth.DiscoveryURL,
			LogoutURL:    cfg.Auth.OAuth.LogoutURL,
		})
		if err != nil {
			return nil, fmt.Errorf("build oidc provider: %w", err)
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Auth.Mode)
	}
}
