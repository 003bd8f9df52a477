package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/stackfall/workdesk/internal/core"
	"github.com/stackfall/workdesk/internal/domain/model"
	"github.com/stackfall/workdesk/internal/domain/party"
	apperrors "github.com/stackfall/workdesk/internal/errors"
	"github.com/stackfall/workdesk/internal/ports"
)

// EventDispatcher delivers workspace events to registered webhook sinks.
type EventDispatcher interface {
	Dispatch(ctx context.Context, workspaceID string, event model.WebhookEvent, data map[string]any)
}

// PublishServiceOptions groups dependencies for PublishService.
type PublishServiceOptions struct {
	Issues       core.IssueRepository
	RFPs         core.RFPRepository
	Tokens       ports.MagicLinkStore
	Mailer       ports.Mailer
	Events       EventDispatcher
	BaseURL      string
	MagicLinkTTL time.Duration
	Logger       *slog.Logger
}

// PublishService controls portal exposure of issues and RFPs: minting and
// clearing credentials, and delivering them out of band. Re-publishing
// regenerates slug and passcode, which invalidates previously shared links.
type PublishService struct {
	issues  core.IssueRepository
	rfps    core.RFPRepository
	tokens  ports.MagicLinkStore
	mailer  ports.Mailer
	events  EventDispatcher
	baseURL string
	ttl     time.Duration
	logger  *slog.Logger
}

// NewPublishService constructs a new PublishService.
func NewPublishService(opts PublishServiceOptions) *PublishService {
	ttl := opts.MagicLinkTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &PublishService{
		issues:  opts.Issues,
		rfps:    opts.RFPs,
		tokens:  opts.Tokens,
		mailer:  opts.Mailer,
		events:  opts.Events,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		ttl:     ttl,
		logger:  logger.With("component", "publish"),
	}
}

// PublishIssue mints fresh portal credentials for an issue.
func (s *PublishService) PublishIssue(ctx context.Context, workspaceID, id string) (*model.Issue, error) {
	slug := party.NewSlug()
	passcode := party.NewPasscode()
	now := time.Now().UTC()

	issue, err := s.issues.SetPublishState(ctx, workspaceID, id, &slug, &passcode, &now)
	if err != nil {
		return nil, err
	}

	s.dispatch(ctx, workspaceID, model.WebhookEventIssuePublished, map[string]any{
		"issue_id":  issue.ID,
		"chat_slug": slug,
		"title":     issue.Title,
	})
	return issue, nil
}

// UnpublishIssue clears an issue's portal credentials. Shared links and
// passcodes stop working immediately; the chat channel and its history are
// left alone.
func (s *PublishService) UnpublishIssue(ctx context.Context, workspaceID, id string) (*model.Issue, error) {
	return s.issues.SetPublishState(ctx, workspaceID, id, nil, nil, nil)
}

// PublishRFP mints fresh portal credentials for an RFP.
func (s *PublishService) PublishRFP(ctx context.Context, workspaceID, id string) (*model.RFP, error) {
	slug := party.NewSlug()
	passcode := party.NewPasscode()
	now := time.Now().UTC()

	rfp, err := s.rfps.SetPublishState(ctx, workspaceID, id, &slug, &passcode, &now)
	if err != nil {
		return nil, err
	}

	s.dispatch(ctx, workspaceID, model.WebhookEventRFPPublished, map[string]any{
		"rfp_id":    rfp.ID,
		"chat_slug": slug,
		"title":     rfp.Title,
	})
	return rfp, nil
}

// UnpublishRFP clears an RFP's portal credentials.
func (s *PublishService) UnpublishRFP(ctx context.Context, workspaceID, id string) (*model.RFP, error) {
	return s.rfps.SetPublishState(ctx, workspaceID, id, nil, nil, nil)
}

// InviteCustomer emails the issue's slug link and passcode to a customer
// contact. The issue must already be published. Delivery is best-effort:
// a send failure is logged, not returned, since the credentials already
// exist and can be re-sent.
func (s *PublishService) InviteCustomer(ctx context.Context, workspaceID, issueID, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return "", apperrors.ValidationField("email", "a valid email is required")
	}

	issue, err := s.issues.GetByID(ctx, workspaceID, issueID)
	if err != nil {
		return "", err
	}
	if !issue.IsPublished() {
		return "", apperrors.Validation("issue is not published")
	}

	link := s.portalURL(party.KindIssue, *issue.ChatSlug)
	s.sendInvite(ctx, ports.PortalInvite{
		ToEmail:  email,
		Subject:  fmt.Sprintf("You are invited to discuss: %s", issue.Title),
		Link:     link,
		Passcode: *issue.ChatPasscode,
	})
	return link, nil
}

// InviteVendor issues a single-use magic-link token bound to the RFP and
// the vendor's email, and emails the resulting link. The returned link is
// also handed back so staff can deliver it through another channel.
func (s *PublishService) InviteVendor(ctx context.Context, workspaceID, rfpID, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return "", apperrors.ValidationField("email", "a valid email is required")
	}

	rfp, err := s.rfps.GetByID(ctx, workspaceID, rfpID)
	if err != nil {
		return "", err
	}
	if !rfp.IsPublished() {
		return "", apperrors.Validation("rfp is not published")
	}

	token, err := s.tokens.Issue(ctx, rfp.ID, email, s.ttl)
	if err != nil {
		return "", fmt.Errorf("issue magic link token: %w", err)
	}

	link := s.portalURL(party.KindRFP, *rfp.ChatSlug) +
		"?token=" + url.QueryEscape(token) +
		"&email=" + url.QueryEscape(email)
	s.sendInvite(ctx, ports.PortalInvite{
		ToEmail: email,
		Subject: fmt.Sprintf("Invitation to respond: %s", rfp.Title),
		Link:    link,
	})
	return link, nil
}

func (s *PublishService) portalURL(kind party.ResourceKind, slug string) string {
	return fmt.Sprintf("%s/portal/%ss/%s", s.baseURL, kind, slug)
}

func (s *PublishService) sendInvite(ctx context.Context, inv ports.PortalInvite) {
	if s.mailer == nil {
		return
	}
	if err := s.mailer.SendPortalInvite(ctx, inv); err != nil {
		s.logger.WarnContext(ctx, "portal invite delivery failed",
			"to", inv.ToEmail, "err", err)
	}
}

func (s *PublishService) dispatch(
	ctx context.Context,
	workspaceID string,
	event model.WebhookEvent,
	data map[string]any,
) {
	if s.events == nil {
		return
	}
	s.events.Dispatch(ctx, workspaceID, event, data)
}
