package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/stackfall/workdesk/config"
	"github.com/stackfall/workdesk/internal/adapters/memstore"
	redisadapter "github.com/stackfall/workdesk/internal/adapters/redis"
	"github.com/stackfall/workdesk/internal/adapters/smtp"
	"github.com/stackfall/workdesk/internal/adapters/streamchat"
	"github.com/stackfall/workdesk/internal/observability/statsd"
	"github.com/stackfall/workdesk/internal/ports"
)

// BuildChatBackend constructs the messaging-backend client, or nil when no
// backend is configured. A nil backend leaves the portal fully functional
// except for chat bootstrap, which reports unavailable.
func BuildChatBackend(cfg *config.AppConfig, logger *slog.Logger) (ports.ChatBackend, error) {
	if !cfg.Messaging.Enabled() {
		if logger != nil {
			logger.Warn("messaging backend not configured, portal chat disabled")
		}
		return nil, nil
	}

	client, err := streamchat.NewClient(streamchat.Config{
		BaseURL:     cfg.Messaging.BaseURL,
		APIKey:      cfg.Messaging.APIKey,
		APISecret:   cfg.Messaging.APISecret,
		ChannelType: cfg.Messaging.ChannelType,
		Timeout:     cfg.Messaging.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("build messaging client: %w", err)
	}
	return client, nil
}

// BuildMagicLinkStore selects the magic-link token store. Memory is the
// default; redis shares tokens across replicas.
func BuildMagicLinkStore(cfg *config.AppConfig, rdb redis.UniversalClient) (ports.MagicLinkStore, error) {
	switch cfg.Redis.MagicLinkStore {
	case "", "memory":
		return memstore.NewMagicLinkStore(), nil
	case "redis":
		if rdb == nil {
			return nil, fmt.Errorf("magic link store %q requires a redis connection", cfg.Redis.MagicLinkStore)
		}
		return redisadapter.NewMagicLinkStore(rdb), nil
	default:
		return nil, fmt.Errorf("unknown magic link store %q", cfg.Redis.MagicLinkStore)
	}
}

// BuildMailer constructs the outbound mailer. It always returns a usable
// mailer; an unconfigured relay simply skips sends.
func BuildMailer(cfg *config.AppConfig, logger *slog.Logger) ports.Mailer {
	if !cfg.Email.Enabled() && logger != nil {
		logger.Warn("smtp relay not configured, invite emails disabled")
	}
	return smtp.NewMailer(cfg.Email)
}

// BuildMetrics constructs the statsd client. Emission is disabled when no
// collector address is configured.
func BuildMetrics(cfg *config.AppConfig, logger *slog.Logger) (*statsd.Client, error) {
	client, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.Observability.StatsdAddr != "",
		Address: cfg.Observability.StatsdAddr,
		Prefix:  cfg.Observability.StatsdPrefix,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build statsd client: %w", err)
	}
	return client, nil
}
