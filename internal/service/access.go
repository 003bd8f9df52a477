package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/stackfall/workdesk/internal/core"
	domainauth "github.com/stackfall/workdesk/internal/domain/auth"
	"github.com/stackfall/workdesk/internal/domain/model"
	"github.com/stackfall/workdesk/internal/domain/party"
	apperrors "github.com/stackfall/workdesk/internal/errors"
	"github.com/stackfall/workdesk/internal/observability/metrics"
	"github.com/stackfall/workdesk/internal/observability/statsd"
	"github.com/stackfall/workdesk/internal/ports"
)

// PortalResource is the published resource a portal request targets,
// loaded by slug before any credential check.
type PortalResource struct {
	Kind        party.ResourceKind
	ID          string
	WorkspaceID string
	Title       string
	Passcode    string
	// StaffID is the assigned staff participant (issue assignee or RFP
	// owner), if any. The chat provisioner adds them to the channel.
	StaffID *string
}

// VerifiedSession is the outcome of a successful credential check: the
// cookie to set and the claims it carries.
type VerifiedSession struct {
	CookieName  string
	CookieValue string
	MaxAge      time.Duration
	Session     party.SoftSession
}

// AccessServiceOptions groups dependencies for AccessService.
type AccessServiceOptions struct {
	Issues     core.IssueRepository
	RFPs       core.RFPRepository
	Users      core.UserRepository
	Tokens     ports.MagicLinkStore
	Codec      party.Codec
	Events     EventDispatcher
	SessionTTL time.Duration
	Logger     *slog.Logger
	Metrics    statsd.Sink
}

// AccessService owns portal credential verification and viewer resolution.
// Verification mints signed soft-session cookies; resolution classifies a
// request as internal staff, authenticated external party, or anonymous.
type AccessService struct {
	issues     core.IssueRepository
	rfps       core.RFPRepository
	users      core.UserRepository
	tokens     ports.MagicLinkStore
	codec      party.Codec
	events     EventDispatcher
	sessionTTL time.Duration
	logger     *slog.Logger
	metrics    statsd.Sink
}

// NewAccessService constructs a new AccessService.
func NewAccessService(opts AccessServiceOptions) *AccessService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AccessService{
		issues:     opts.Issues,
		rfps:       opts.RFPs,
		users:      opts.Users,
		tokens:     opts.Tokens,
		codec:      opts.Codec,
		events:     opts.Events,
		sessionTTL: ttl,
		logger:     logger.With("component", "access"),
		metrics:    opts.Metrics,
	}
}

// ResourceBySlug loads the published resource a portal slug points at.
// Unknown slugs and unpublished resources are indistinguishable to the
// caller: both come back not found.
func (s *AccessService) ResourceBySlug(
	ctx context.Context,
	kind party.ResourceKind,
	slug string,
) (*PortalResource, error) {
	switch kind {
	case party.KindIssue:
		issue, err := s.issues.GetByChatSlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if !issue.IsPublished() {
			return nil, apperrors.NotFound("resource not found")
		}
		return &PortalResource{
			Kind:        party.KindIssue,
			ID:          issue.ID,
			WorkspaceID: issue.WorkspaceID,
			Title:       issue.Title,
			Passcode:    *issue.ChatPasscode,
			StaffID:     issue.AssigneeID,
		}, nil
	case party.KindRFP:
		rfp, err := s.rfps.GetByChatSlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if !rfp.IsPublished() {
			return nil, apperrors.NotFound("resource not found")
		}
		return &PortalResource{
			Kind:        party.KindRFP,
			ID:          rfp.ID,
			WorkspaceID: rfp.WorkspaceID,
			Title:       rfp.Title,
			Passcode:    *rfp.ChatPasscode,
			StaffID:     rfp.OwnerID,
		}, nil
	default:
		return nil, apperrors.Validation(fmt.Sprintf("unknown resource kind %q", kind))
	}
}

// VerifyIssueAccess checks a passcode against a published issue and mints
// a soft-session cookie on success. Every failure mode, wrong passcode or
// unknown slug alike, reports the same invalid-credentials outcome so the
// endpoint cannot be used to probe which slugs exist.
func (s *AccessService) VerifyIssueAccess(
	ctx context.Context,
	slug, passcode, displayName string,
) (*VerifiedSession, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, apperrors.ValidationField("name", "display name is required")
	}

	res, err := s.ResourceBySlug(ctx, party.KindIssue, slug)
	if err != nil {
		s.emitAccess(party.KindIssue, "passcode", metrics.ResultDenied, nil)
		return nil, apperrors.CredentialInvalid()
	}
	if passcode == "" || res.Passcode != passcode {
		s.emitAccess(party.KindIssue, "passcode", metrics.ResultDenied, nil)
		s.logger.InfoContext(ctx, "portal access denied",
			"resource_kind", party.KindIssue, "resource_id", res.ID)
		return nil, apperrors.CredentialInvalid()
	}

	// No email is collected on the passcode path; a random fallback id in
	// the cookie keeps the visitor's chat identity stable for its lifetime.
	session := party.SoftSession{
		Name:       displayName,
		FallbackID: party.RandomStableID(),
	}
	return s.grant(ctx, res, session, "passcode")
}

// VerifyRFPAccess consumes a magic-link token for a published RFP and mints
// a soft-session cookie on success. The token is destroyed whether or not
// verification succeeds.
func (s *AccessService) VerifyRFPAccess(
	ctx context.Context,
	slug, token, email, displayName string,
) (*VerifiedSession, error) {
	email = strings.TrimSpace(email)
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = email
	}
	if displayName == "" {
		return nil, apperrors.ValidationField("name", "display name is required")
	}

	res, err := s.ResourceBySlug(ctx, party.KindRFP, slug)
	if err != nil {
		s.emitAccess(party.KindRFP, "magic_link", metrics.ResultDenied, nil)
		return nil, apperrors.CredentialInvalid()
	}

	ok, err := s.tokens.Consume(ctx, token, res.ID, email)
	if err != nil {
		s.emitAccess(party.KindRFP, "magic_link", metrics.ResultError, err)
		return nil, fmt.Errorf("consume magic link token: %w", err)
	}
	if !ok {
		s.emitAccess(party.KindRFP, "magic_link", metrics.ResultDenied, nil)
		s.logger.InfoContext(ctx, "portal access denied",
			"resource_kind", party.KindRFP, "resource_id", res.ID)
		return nil, apperrors.CredentialInvalid()
	}

	session := party.SoftSession{
		Name:  displayName,
		Email: strings.ToLower(email),
	}
	return s.grant(ctx, res, session, "magic_link")
}

// ResolveViewer classifies the requester of a portal resource. The soft
// session wins over a staff session so staff can preview the portal as an
// external party; a malformed or missing cookie quietly degrades toward
// anonymous, never toward an error.
func (s *AccessService) ResolveViewer(
	ctx context.Context,
	res *PortalResource,
	cookieValue string,
	staff *domainauth.Session,
) party.Viewer {
	if cookieValue != "" {
		session, ok := s.codec.Decode(cookieValue)
		switch {
		case ok && session.Scope == res.Kind.Namespace(res.ID):
			return party.Viewer{
				Kind:        party.ViewerExternal,
				StableID:    session.StableID(res.Kind.Namespace(res.ID)),
				DisplayName: session.Name,
				Email:       session.Email,
			}
		case ok:
			// A genuine signature scoped elsewhere: someone replayed a
			// cookie minted for a different resource under this one's name.
			s.logger.WarnContext(ctx, "soft session cookie scoped to another resource",
				"resource_kind", res.Kind, "resource_id", res.ID, "scope", session.Scope)
		default:
			s.logger.DebugContext(ctx, "malformed soft session cookie",
				"resource_kind", res.Kind, "resource_id", res.ID)
		}
	}

	if staff != nil && staff.WorkspaceID == res.WorkspaceID {
		if user, err := s.users.GetByID(ctx, staff.UserID); err == nil {
			return party.Viewer{
				Kind:        party.ViewerInternal,
				StableID:    user.ID,
				DisplayName: user.DisplayName,
				Email:       user.Email,
			}
		}
	}

	return party.Viewer{Kind: party.ViewerAnonymous}
}

func (s *AccessService) grant(
	ctx context.Context,
	res *PortalResource,
	session party.SoftSession,
	method string,
) (*VerifiedSession, error) {
	session.Scope = res.Kind.Namespace(res.ID)
	value, err := s.codec.Encode(session)
	if err != nil {
		return nil, fmt.Errorf("encode soft session: %w", err)
	}

	s.emitAccess(res.Kind, method, metrics.ResultGranted, nil)
	s.logger.InfoContext(ctx, "portal access granted",
		"resource_kind", res.Kind, "resource_id", res.ID, "method", method)
	if s.events != nil {
		s.events.Dispatch(ctx, res.WorkspaceID, model.WebhookEventAccessGranted, map[string]any{
			"resource_kind": string(res.Kind),
			"resource_id":   res.ID,
			"stable_id":     session.StableID(res.Kind.Namespace(res.ID)),
			"method":        method,
		})
	}

	return &VerifiedSession{
		CookieName:  res.Kind.CookieName(res.ID),
		CookieValue: value,
		MaxAge:      s.sessionTTL,
		Session:     session,
	}, nil
}

func (s *AccessService) emitAccess(kind party.ResourceKind, method, result string, err error) {
	metrics.EmitPortalAccess(s.metrics, metrics.AccessMetric{
		ResourceKind: string(kind),
		Method:       method,
		Result:       result,
		Err:          err,
	})
}
