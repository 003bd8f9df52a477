//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

// WebhookEvent names an event class webhook sinks can subscribe to.
type WebhookEvent string

const (
	WebhookEventIssuePublished WebhookEvent = "issue.published"
	WebhookEventRFPPublished   WebhookEvent = "rfp.published"
	WebhookEventAccessGranted  WebhookEvent = "portal.access_granted"
)

// Valid reports whether the webhook event is supported.
func (e WebhookEvent) Valid() bool {
	switch e {
	case WebhookEventIssuePublished, WebhookEventRFPPublished, WebhookEventAccessGranted:
		return true
	default:
		return false
	}
}

// WebhookSink is a staff-registered HTTP endpoint notified of workspace
// events. Selector is an optional JMESPath expression applied to the event
// payload; when it evaluates to nothing, the delivery is skipped.
type WebhookSink struct {
	ID          string       `json:"id"                 db:"id"`
	WorkspaceID string       `json:"workspace_id"       db:"workspace_id"`
	Name        string       `json:"name"               db:"name"`
	URL         string       `json:"url"                db:"url"`
	Event       WebhookEvent `json:"event"              db:"event"`
	Selector    *string      `json:"selector,omitempty" db:"selector"`
	Enabled     bool         `json:"enabled"            db:"enabled"`
	CreatedAt   time.Time    `json:"created_at"         db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"         db:"updated_at"`
}

// CreateWebhookSinkRequest represents parameters to create a WebhookSink.
type CreateWebhookSinkRequest struct {
	Name     string       `json:"name"`
	URL      string       `json:"url"`
	Event    WebhookEvent `json:"event"`
	Selector *string      `json:"selector,omitempty"`
	Enabled  *bool        `json:"enabled,omitempty"`
}

// Validate validates CreateWebhookSinkRequest. Selector syntax is checked
// by the service layer, which owns the JMESPath evaluator.
func (r *CreateWebhookSinkRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required and cannot be empty")
	}
	u, err := url.Parse(strings.TrimSpace(r.URL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("url must be an absolute http(s) URL")
	}
	if !r.Event.Valid() {
		return errors.New("event must be one of: issue.published, rfp.published, portal.access_granted")
	}
	return nil
}
