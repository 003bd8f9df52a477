package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/stackfall/workdesk/internal/core"
	"github.com/stackfall/workdesk/internal/domain/party"
	apperrors "github.com/stackfall/workdesk/internal/errors"
	"github.com/stackfall/workdesk/internal/observability/metrics"
	"github.com/stackfall/workdesk/internal/observability/statsd"
	"github.com/stackfall/workdesk/internal/ports"
)

// maxImageRefLen caps avatar references forwarded to the chat directory.
// Inline data: URIs routinely blow past this; real hosted URLs never do.
const maxImageRefLen = 2048

// ChatBootstrap is everything a browser needs to connect to the resource's
// channel and talk to the messaging backend directly.
type ChatBootstrap struct {
	APIKey      string `json:"api_key"`
	Token       string `json:"token"`
	ChannelID   string `json:"channel_id"`
	ChannelType string `json:"channel_type"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// ChatServiceOptions groups dependencies for ChatService.
type ChatServiceOptions struct {
	Backend     ports.ChatBackend
	Users       core.UserRepository
	ChannelType string
	Logger      *slog.Logger
	Metrics     statsd.Sink
}

// ChatService federates viewer identities into the messaging backend and
// provisions per-resource channels. All backend calls are idempotent:
// user upsert by definition, channel creation through create-or-get, and
// membership through an add-only reconciliation.
type ChatService struct {
	backend     ports.ChatBackend
	users       core.UserRepository
	channelType string
	logger      *slog.Logger
	metrics     statsd.Sink
}

// NewChatService constructs a new ChatService. A nil backend is valid and
// makes every bootstrap fail with a backend-unavailable error.
func NewChatService(opts ChatServiceOptions) *ChatService {
	channelType := opts.ChannelType
	if channelType == "" {
		channelType = "messaging"
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatService{
		backend:     opts.Backend,
		users:       opts.Users,
		channelType: channelType,
		logger:      logger.With("component", "chat"),
		metrics:     opts.Metrics,
	}
}

// Bootstrap provisions the resource's channel for the viewer and mints
// their access token. Anonymous viewers are always denied.
func (s *ChatService) Bootstrap(
	ctx context.Context,
	res *PortalResource,
	viewer party.Viewer,
) (*ChatBootstrap, error) {
	start := time.Now()
	out, err := s.bootstrap(ctx, res, viewer)

	result := metrics.ResultGranted
	if err != nil {
		result = metrics.ResultError
		if apperrors.IsCredentialInvalid(err) {
			result = metrics.ResultDenied
		}
	}
	metrics.EmitChatBootstrap(s.metrics, metrics.ChatMetric{
		ResourceKind: string(res.Kind),
		ViewerKind:   viewer.Kind.String(),
		Result:       result,
		Duration:     time.Since(start),
		Err:          err,
	})
	return out, err
}

func (s *ChatService) bootstrap(
	ctx context.Context,
	res *PortalResource,
	viewer party.Viewer,
) (*ChatBootstrap, error) {
	switch viewer.Kind {
	case party.ViewerInternal, party.ViewerExternal:
	case party.ViewerAnonymous:
		return nil, apperrors.CredentialInvalid()
	default:
		return nil, apperrors.Internalf("unhandled viewer kind %d", viewer.Kind)
	}

	if s.backend == nil {
		return nil, apperrors.BackendUnavailable("messaging backend is not configured")
	}

	chatUser := ports.ChatUser{
		ID:   viewer.StableID,
		Name: viewer.DisplayName,
	}
	if err := s.backend.UpsertUser(ctx, chatUser); err != nil {
		return nil, s.backendErr(ctx, res, "upsert user", err)
	}

	required := []string{viewer.StableID}
	if staffID := s.federateStaff(ctx, res, viewer); staffID != "" {
		required = append(required, staffID)
	}

	channelID := res.Kind.ChannelID(res.ID)
	if err := s.backend.CreateOrGetChannel(ctx, ports.ChannelDescriptor{
		Type:        s.channelType,
		ID:          channelID,
		CreatedByID: viewer.StableID,
	}); err != nil {
		return nil, s.backendErr(ctx, res, "ensure channel", err)
	}

	if err := s.ensureMembers(ctx, channelID, required); err != nil {
		return nil, s.backendErr(ctx, res, "reconcile members", err)
	}

	token, err := s.backend.MintUserToken(viewer.StableID)
	if err != nil {
		return nil, s.backendErr(ctx, res, "mint user token", err)
	}

	return &ChatBootstrap{
		APIKey:      s.backend.APIKey(),
		Token:       token,
		ChannelID:   channelID,
		ChannelType: s.channelType,
		UserID:      viewer.StableID,
		DisplayName: viewer.DisplayName,
	}, nil
}

// federateStaff mirrors the resource's assigned staff member into the chat
// directory so they land in the channel alongside the external party. A
// failure here only drops the staff member from this provisioning round;
// the viewer's own bootstrap proceeds.
func (s *ChatService) federateStaff(ctx context.Context, res *PortalResource, viewer party.Viewer) string {
	if res.StaffID == nil || *res.StaffID == "" || *res.StaffID == viewer.StableID {
		return ""
	}

	user, err := s.users.GetByID(ctx, *res.StaffID)
	if err != nil {
		s.logger.WarnContext(ctx, "staff lookup failed during chat provisioning",
			"user_id", *res.StaffID, "err", err)
		return ""
	}

	chatUser := ports.ChatUser{
		ID:    user.ID,
		Name:  user.DisplayName,
		Image: normalizeImageRef(user.AvatarURL),
	}
	if err := s.backend.UpsertUser(ctx, chatUser); err != nil {
		s.logger.WarnContext(ctx, "staff federation failed",
			"user_id", user.ID, "err", err)
		return ""
	}
	return user.ID
}

// ensureMembers adds the required members missing from the channel. The
// membership query is filtered to the required set, and existing members
// outside that set are never touched.
func (s *ChatService) ensureMembers(ctx context.Context, channelID string, required []string) error {
	existing, err := s.backend.ChannelMembers(ctx, channelID, required)
	if err != nil {
		return fmt.Errorf("query members: %w", err)
	}

	present := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		present[id] = struct{}{}
	}

	missing := make([]string, 0, len(required))
	for _, id := range required {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	if err := s.backend.AddChannelMembers(ctx, channelID, missing); err != nil {
		return fmt.Errorf("add members: %w", err)
	}
	return nil
}

func (s *ChatService) backendErr(ctx context.Context, res *PortalResource, op string, err error) error {
	s.logger.ErrorContext(ctx, "messaging backend call failed",
		"op", op, "resource_kind", res.Kind, "resource_id", res.ID, "err", err)
	if errors.Is(err, ports.ErrBackendUnavailable) {
		return apperrors.Wrap(err, apperrors.ErrCodeBackendUnavailable, "messaging backend unavailable")
	}
	return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "%s", op)
}

// normalizeImageRef drops avatar references that would bloat the chat
// directory record: inline data: URIs and anything implausibly long.
func normalizeImageRef(ref *string) string {
	if ref == nil {
		return ""
	}
	v := strings.TrimSpace(*ref)
	if v == "" || len(v) > maxImageRefLen {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(v), "data:") {
		return ""
	}
	return v
}
