//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxIssueTitleLen = 255

// IssueStatus tracks an issue through its lifecycle.
type IssueStatus string

const (
	IssueStatusOpen     IssueStatus = "open"
	IssueStatusPending  IssueStatus = "pending"
	IssueStatusResolved IssueStatus = "resolved"
)

// Valid reports whether the issue status is supported.
func (s IssueStatus) Valid() bool {
	switch s {
	case IssueStatusOpen, IssueStatusPending, IssueStatusResolved:
		return true
	default:
		return false
	}
}

// Issue is a support thread a customer contact can be invited into.
// ChatSlug/ChatPasscode are set while the issue is published to the portal
// and cleared on unpublish; re-publishing regenerates both, invalidating
// previously shared links.
type Issue struct {
	ID           string      `json:"id"                      db:"id"`
	WorkspaceID  string      `json:"workspace_id"            db:"workspace_id"`
	CustomerID   *string     `json:"customer_id,omitempty"   db:"customer_id"`
	AssigneeID   *string     `json:"assignee_id,omitempty"   db:"assignee_id"`
	Title        string      `json:"title"                   db:"title"`
	Body         string      `json:"body"                    db:"body"`
	Status       IssueStatus `json:"status"                  db:"status"`
	ChatSlug     *string     `json:"chat_slug,omitempty"     db:"chat_slug"`
	ChatPasscode *string     `json:"-"                       db:"chat_passcode"`
	PublishedAt  *time.Time  `json:"published_at,omitempty"  db:"published_at"`
	CreatedAt    time.Time   `json:"created_at"              db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"              db:"updated_at"`
}

// IsPublished reports whether the issue is reachable from the portal.
func (i Issue) IsPublished() bool {
	return i.ChatSlug != nil && i.ChatPasscode != nil
}

// CreateIssueRequest represents parameters to create an Issue.
type CreateIssueRequest struct {
	CustomerID *string     `json:"customer_id,omitempty"`
	AssigneeID *string     `json:"assignee_id,omitempty"`
	Title      string      `json:"title"`
	Body       string      `json:"body"`
	Status     IssueStatus `json:"status,omitempty"`
}

// UpdateIssueRequest represents parameters to update an Issue.
type UpdateIssueRequest struct {
	CustomerID *string      `json:"customer_id,omitempty"`
	AssigneeID *string      `json:"assignee_id,omitempty"`
	Title      *string      `json:"title,omitempty"`
	Body       *string      `json:"body,omitempty"`
	Status     *IssueStatus `json:"status,omitempty"`
}

// Validate validates CreateIssueRequest.
func (r *CreateIssueRequest) Validate() error {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return errors.New("title is required and cannot be empty")
	}
	if utf8.RuneCountInString(title) > maxIssueTitleLen {
		return errors.New("title cannot exceed 255 characters")
	}
	if r.Status == "" {
		r.Status = IssueStatusOpen
	}
	if !r.Status.Valid() {
		return errors.New("status must be one of: open, pending, resolved")
	}
	return nil
}

// Validate validates UpdateIssueRequest.
func (r *UpdateIssueRequest) Validate() error {
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if title == "" {
			return errors.New("title cannot be empty")
		}
		if utf8.RuneCountInString(title) > maxIssueTitleLen {
			return errors.New("title cannot exceed 255 characters")
		}
	}
	if r.Status != nil && !r.Status.Valid() {
		return errors.New("status must be one of: open, pending, resolved")
	}
	return nil
}
