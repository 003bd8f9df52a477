//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxRFPTitleLen = 255

// RFPStatus tracks a request-for-proposal through its lifecycle.
type RFPStatus string

const (
	RFPStatusDraft   RFPStatus = "draft"
	RFPStatusOpen    RFPStatus = "open"
	RFPStatusAwarded RFPStatus = "awarded"
	RFPStatusClosed  RFPStatus = "closed"
)

// Valid reports whether the RFP status is supported.
func (s RFPStatus) Valid() bool {
	switch s {
	case RFPStatusDraft, RFPStatusOpen, RFPStatusAwarded, RFPStatusClosed:
		return true
	default:
		return false
	}
}

// RFP is a request-for-proposal vendors are invited to respond to.
// Vendors reach it through a magic link scoped to the RFP and their email;
// ChatSlug locates the portal page, ChatPasscode is kept for parity with
// issues but vendor verification goes through magic-link tokens.
type RFP struct {
	ID           string     `json:"id"                     db:"id"`
	WorkspaceID  string     `json:"workspace_id"           db:"workspace_id"`
	OwnerID      *string    `json:"owner_id,omitempty"     db:"owner_id"`
	Title        string     `json:"title"                  db:"title"`
	Description  string     `json:"description"            db:"description"`
	Status       RFPStatus  `json:"status"                 db:"status"`
	ChatSlug     *string    `json:"chat_slug,omitempty"    db:"chat_slug"`
	ChatPasscode *string    `json:"-"                      db:"chat_passcode"`
	PublishedAt  *time.Time `json:"published_at,omitempty" db:"published_at"`
	CreatedAt    time.Time  `json:"created_at"             db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"             db:"updated_at"`
}

// IsPublished reports whether the RFP is reachable from the portal.
func (r RFP) IsPublished() bool {
	return r.ChatSlug != nil && r.ChatPasscode != nil
}

// CreateRFPRequest represents parameters to create an RFP.
type CreateRFPRequest struct {
	OwnerID     *string   `json:"owner_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      RFPStatus `json:"status,omitempty"`
}

// UpdateRFPRequest represents parameters to update an RFP.
type UpdateRFPRequest struct {
	OwnerID     *string    `json:"owner_id,omitempty"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *RFPStatus `json:"status,omitempty"`
}

// Validate validates CreateRFPRequest.
func (r *CreateRFPRequest) Validate() error {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return errors.New("title is required and cannot be empty")
	}
	if utf8.RuneCountInString(title) > maxRFPTitleLen {
		return errors.New("title cannot exceed 255 characters")
	}
	if r.Status == "" {
		r.Status = RFPStatusDraft
	}
	if !r.Status.Valid() {
		return errors.New("status must be one of: draft, open, awarded, closed")
	}
	return nil
}

// Validate validates UpdateRFPRequest.
func (r *UpdateRFPRequest) Validate() error {
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if title == "" {
			return errors.New("title cannot be empty")
		}
		if utf8.RuneCountInString(title) > maxRFPTitleLen {
			return errors.New("title cannot exceed 255 characters")
		}
	}
	if r.Status != nil && !r.Status.Valid() {
		return errors.New("status must be one of: draft, open, awarded, closed")
	}
	return nil
}
