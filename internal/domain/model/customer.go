//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxCustomerNameLen = 255

// Customer is a client organization or contact issues are filed for.
type Customer struct {
	ID          string    `json:"id"           db:"id"`
	WorkspaceID string    `json:"workspace_id" db:"workspace_id"`
	Name        string    `json:"name"         db:"name"`
	Email       string    `json:"email"        db:"email"`
	Company     string    `json:"company"      db:"company"`
	CreatedAt   time.Time `json:"created_at"   db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"   db:"updated_at"`
}

// CreateCustomerRequest represents parameters to create a Customer.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Company string `json:"company,omitempty"`
}

// UpdateCustomerRequest represents parameters to update a Customer.
type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Company *string `json:"company,omitempty"`
}

// Validate validates CreateCustomerRequest.
func (r *CreateCustomerRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxCustomerNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	if email := strings.TrimSpace(r.Email); email != "" && !strings.Contains(email, "@") {
		return errors.New("email must be a valid email address")
	}
	return nil
}

// Validate validates UpdateCustomerRequest.
func (r *UpdateCustomerRequest) Validate() error {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			return errors.New("name cannot be empty")
		}
		if utf8.RuneCountInString(name) > maxCustomerNameLen {
			return errors.New("name cannot exceed 255 characters")
		}
	}
	if r.Email != nil {
		if email := strings.TrimSpace(*r.Email); email != "" && !strings.Contains(email, "@") {
			return errors.New("email must be a valid email address")
		}
	}
	return nil
}
