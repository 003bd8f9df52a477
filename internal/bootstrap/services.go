package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/stackfall/workdesk/config"
	"github.com/stackfall/workdesk/internal/adapters/authroles"
	redisadapter "github.com/stackfall/workdesk/internal/adapters/redis"
	"github.com/stackfall/workdesk/internal/data"
	"github.com/stackfall/workdesk/internal/domain/party"
	httpx "github.com/stackfall/workdesk/internal/http"
	"github.com/stackfall/workdesk/internal/observability/statsd"
	"github.com/stackfall/workdesk/internal/service"
)

// App holds the wired application: configuration, infrastructure handles,
// and the HTTP router.
type App struct {
	Config  *config.AppConfig
	Logger  *slog.Logger
	DB      *sql.DB
	Redis   redis.UniversalClient
	Metrics *statsd.Client
	Router  http.Handler

	// WorkspaceID is the workspace this deployment serves.
	WorkspaceID string
}

// NewApp connects infrastructure and wires every service and handler.
func NewApp(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (*App, error) {
	db, err := ConnectDB(DatabaseConfig{DBConfig: cfg.Postgres, Logger: logger})
	if err != nil {
		return nil, err
	}

	if cfg.Postgres.RunMigrationsOnStart {
		if err := RunMigrations(ctx, db, logger); err != nil {
			return nil, err
		}
	}

	rdb, err := ConnectRedis(DatabaseConfig{RedisConfig: cfg.Redis, Logger: logger})
	if err != nil {
		return nil, err
	}

	metrics, err := BuildMetrics(cfg, logger)
	if err != nil {
		return nil, err
	}

	// Repositories
	workspaceRepo := data.NewWorkspaceRepo(db)
	userRepo := data.NewUserRepo(db)
	issueRepo := data.NewIssueRepo(db)
	rfpRepo := data.NewRFPRepo(db)
	customerRepo := data.NewCustomerRepo(db)
	vendorRepo := data.NewVendorRepo(db)
	invoiceRepo := data.NewInvoiceRepo(db)
	sinkRepo := data.NewWebhookSinkRepo(db)

	workspaceID, err := ensureWorkspace(ctx, workspaceRepo, cfg.WorkspaceName, logger)
	if err != nil {
		return nil, err
	}

	// Adapters
	provider, err := BuildAuthProvider(cfg, logger)
	if err != nil {
		return nil, err
	}
	backend, err := BuildChatBackend(cfg, logger)
	if err != nil {
		return nil, err
	}
	tokens, err := BuildMagicLinkStore(cfg, rdb)
	if err != nil {
		return nil, err
	}
	mailer := BuildMailer(cfg, logger)
	sessions := redisadapter.NewSessionStore(rdb)

	codec, err := buildSoftSessionCodec(cfg, logger)
	if err != nil {
		return nil, err
	}

	// Services
	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Provider:    provider,
		Sessions:    sessions,
		Roles:       authroles.StaticRoleMapper{AdminGroup: cfg.Auth.AdminGroup, StaffGroup: cfg.Auth.StaffGroup},
		Users:       userRepo,
		WorkspaceID: workspaceID,
	})
	webhookSvc := service.NewWebhookService(service.WebhookServiceOptions{
		Sinks:   sinkRepo,
		Logger:  logger,
		Metrics: metrics,
	})
	publishSvc := service.NewPublishService(service.PublishServiceOptions{
		Issues:       issueRepo,
		RFPs:         rfpRepo,
		Tokens:       tokens,
		Mailer:       mailer,
		Events:       webhookSvc,
		BaseURL:      cfg.HTTP.BaseURL,
		MagicLinkTTL: cfg.Auth.MagicLinkTTL,
		Logger:       logger,
	})
	accessSvc := service.NewAccessService(service.AccessServiceOptions{
		Issues:     issueRepo,
		RFPs:       rfpRepo,
		Users:      userRepo,
		Tokens:     tokens,
		Codec:      codec,
		Events:     webhookSvc,
		SessionTTL: cfg.Auth.SoftSessionTTL,
		Logger:     logger,
		Metrics:    metrics,
	})
	chatSvc := service.NewChatService(service.ChatServiceOptions{
		Backend:     backend,
		Users:       userRepo,
		ChannelType: cfg.Messaging.ChannelType,
		Logger:      logger,
		Metrics:     metrics,
	})

	issueSvc := service.NewIssueService(service.IssueServiceOptions{Issues: issueRepo})
	rfpSvc := service.NewRFPService(service.RFPServiceOptions{RFPs: rfpRepo})
	customerSvc := service.NewCustomerService(service.CustomerServiceOptions{Customers: customerRepo})
	vendorSvc := service.NewVendorService(service.VendorServiceOptions{Vendors: vendorRepo})
	invoiceSvc := service.NewInvoiceService(service.InvoiceServiceOptions{
		Invoices:  invoiceRepo,
		Customers: customerRepo,
	})

	router := httpx.NewRouter(httpx.RouterServices{
		Auth:      authSvc,
		Issues:    &httpx.IssueHandlers{Svc: issueSvc, Publish: publishSvc},
		RFPs:      &httpx.RFPHandlers{Svc: rfpSvc, Publish: publishSvc},
		Customers: &httpx.CustomerHandlers{Svc: customerSvc},
		Vendors:   &httpx.VendorHandlers{Svc: vendorSvc},
		Invoices:  &httpx.InvoiceHandlers{Svc: invoiceSvc},
		Webhooks:  &httpx.WebhookHandlers{Svc: webhookSvc},
		Portal: &httpx.PortalHandlers{
			Access: accessSvc,
			Chat:   chatSvc,
			Logger: logger,
		},
		DB:           db,
		CookieDomain: cfg.HTTP.CookieDomain,
		Logger:       logger,
	})

	return &App{
		Config:      cfg,
		Logger:      logger,
		DB:          db,
		Redis:       rdb,
		Metrics:     metrics,
		Router:      router,
		WorkspaceID: workspaceID,
	}, nil
}

// Close releases infrastructure handles.
func (a *App) Close() {
	if a.Metrics != nil {
		_ = a.Metrics.Close()
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

// ensureWorkspace finds the named workspace, creating it on first start.
func ensureWorkspace(
	ctx context.Context,
	repo *data.WorkspaceRepo,
	name string,
	logger *slog.Logger,
) (string, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list workspaces: %w", err)
	}
	for _, ws := range existing {
		if ws.Name == name {
			return ws.ID, nil
		}
	}

	ws, err := repo.Create(ctx, name)
	if err != nil {
		return "", fmt.Errorf("create workspace %q: %w", name, err)
	}
	if logger != nil {
		logger.InfoContext(ctx, "created workspace", "workspace_id", ws.ID, "name", name)
	}
	return ws.ID, nil
}

// buildSoftSessionCodec derives the cookie signing codec. Development mode
// falls back to an ephemeral key, which invalidates portal cookies on
// restart.
func buildSoftSessionCodec(cfg *config.AppConfig, logger *slog.Logger) (party.Codec, error) {
	key := cfg.SoftSessionKey
	if key == "" {
		if !cfg.IsDev {
			return party.Codec{}, fmt.Errorf("soft session key is required")
		}
		key = party.NewToken(32)
		if logger != nil {
			logger.Warn("using ephemeral soft session key")
		}
	}
	return party.NewCodec([]byte(key)), nil
}
