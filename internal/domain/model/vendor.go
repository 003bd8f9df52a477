//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxVendorNameLen = 255

// Vendor is an outside company staff solicit proposals from.
type Vendor struct {
	ID           string    `json:"id"            db:"id"`
	WorkspaceID  string    `json:"workspace_id"  db:"workspace_id"`
	Name         string    `json:"name"          db:"name"`
	ContactEmail string    `json:"contact_email" db:"contact_email"`
	Notes        string    `json:"notes"         db:"notes"`
	CreatedAt    time.Time `json:"created_at"    db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"    db:"updated_at"`
}

// CreateVendorRequest represents parameters to create a Vendor.
type CreateVendorRequest struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
	Notes        string `json:"notes,omitempty"`
}

// UpdateVendorRequest represents parameters to update a Vendor.
type UpdateVendorRequest struct {
	Name         *string `json:"name,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// Validate validates CreateVendorRequest.
func (r *CreateVendorRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxVendorNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	if email := strings.TrimSpace(r.ContactEmail); email != "" && !strings.Contains(email, "@") {
		return errors.New("contact_email must be a valid email address")
	}
	return nil
}

// Validate validates UpdateVendorRequest.
func (r *UpdateVendorRequest) Validate() error {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			return errors.New("name cannot be empty")
		}
		if utf8.RuneCountInString(name) > maxVendorNameLen {
			return errors.New("name cannot exceed 255 characters")
		}
	}
	if r.ContactEmail != nil {
		if email := strings.TrimSpace(*r.ContactEmail); email != "" && !strings.Contains(email, "@") {
			return errors.New("contact_email must be a valid email address")
		}
	}
	return nil
}
