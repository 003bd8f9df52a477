//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// InvoiceStatus tracks an invoice through its lifecycle.
type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "draft"
	InvoiceStatusSent  InvoiceStatus = "sent"
	InvoiceStatusPaid  InvoiceStatus = "paid"
	InvoiceStatusVoid  InvoiceStatus = "void"
)

// Valid reports whether the invoice status is supported.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusVoid:
		return true
	default:
		return false
	}
}

// Invoice is a customer-facing bill. Payment-processor state lives outside
// this system; only the ledger row is kept here.
type Invoice struct {
	ID          string        `json:"id"                 db:"id"`
	WorkspaceID string        `json:"workspace_id"       db:"workspace_id"`
	CustomerID  string        `json:"customer_id"        db:"customer_id"`
	Number      string        `json:"number"             db:"number"`
	AmountCents int64         `json:"amount_cents"       db:"amount_cents"`
	Currency    string        `json:"currency"           db:"currency"`
	Status      InvoiceStatus `json:"status"             db:"status"`
	DueDate     *time.Time    `json:"due_date,omitempty" db:"due_date"`
	CreatedAt   time.Time     `json:"created_at"         db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"         db:"updated_at"`
}

// CreateInvoiceRequest represents parameters to create an Invoice.
type CreateInvoiceRequest struct {
	CustomerID  string        `json:"customer_id"`
	Number      string        `json:"number"`
	AmountCents int64         `json:"amount_cents"`
	Currency    string        `json:"currency,omitempty"`
	Status      InvoiceStatus `json:"status,omitempty"`
	DueDate     *time.Time    `json:"due_date,omitempty"`
}

// UpdateInvoiceRequest represents parameters to update an Invoice.
type UpdateInvoiceRequest struct {
	Number      *string        `json:"number,omitempty"`
	AmountCents *int64         `json:"amount_cents,omitempty"`
	Currency    *string        `json:"currency,omitempty"`
	Status      *InvoiceStatus `json:"status,omitempty"`
	DueDate     *time.Time     `json:"due_date,omitempty"`
}

// Validate validates CreateInvoiceRequest.
func (r *CreateInvoiceRequest) Validate() error {
	if strings.TrimSpace(r.CustomerID) == "" {
		return errors.New("customer_id is required")
	}
	if strings.TrimSpace(r.Number) == "" {
		return errors.New("number is required and cannot be empty")
	}
	if r.AmountCents < 0 {
		return errors.New("amount_cents cannot be negative")
	}
	if r.Currency == "" {
		r.Currency = "USD"
	}
	if len(r.Currency) != 3 {
		return errors.New("currency must be a 3-letter code")
	}
	r.Currency = strings.ToUpper(r.Currency)
	if r.Status == "" {
		r.Status = InvoiceStatusDraft
	}
	if !r.Status.Valid() {
		return errors.New("status must be one of: draft, sent, paid, void")
	}
	return nil
}

// Validate validates UpdateInvoiceRequest.
func (r *UpdateInvoiceRequest) Validate() error {
	if r.Number != nil && strings.TrimSpace(*r.Number) == "" {
		return errors.New("number cannot be empty")
	}
	if r.AmountCents != nil && *r.AmountCents < 0 {
		return errors.New("amount_cents cannot be negative")
	}
	if r.Currency != nil {
		if len(*r.Currency) != 3 {
			return errors.New("currency must be a 3-letter code")
		}
		upper := strings.ToUpper(*r.Currency)
		r.Currency = &upper
	}
	if r.Status != nil && !r.Status.Valid() {
		return errors.New("status must be one of: draft, sent, paid, void")
	}
	return nil
}
