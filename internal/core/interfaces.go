// Package core defines the repository contracts the service layer depends
// on. Implementations live in internal/data; tests substitute fakes.
package core

import (
	"context"
	"time"

	"github.com/stackfall/workdesk/internal/data"
	"github.com/stackfall/workdesk/internal/domain/model"
)

// WorkspaceRepository provides access to workspaces.
type WorkspaceRepository interface {
	Create(ctx context.Context, name string) (*model.Workspace, error)
	GetByID(ctx context.Context, id string) (*model.Workspace, error)
	List(ctx context.Context) ([]*model.Workspace, error)
}

// UserRepository provides access to staff accounts.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, workspaceID, email string) (*model.User, error)
	List(ctx context.Context, workspaceID string) ([]*model.User, error)
	UpsertByEmail(ctx context.Context, workspaceID, email, displayName, role string) (*model.User, error)
}

// IssueRepository provides access to issues.
type IssueRepository interface {
	Create(ctx context.Context, workspaceID string, req *model.CreateIssueRequest) (*model.Issue, error)
	GetByID(ctx context.Context, workspaceID, id string) (*model.Issue, error)
	GetByChatSlug(ctx context.Context, slug string) (*model.Issue, error)
	List(ctx context.Context, workspaceID string, opts data.IssuesListOptions) ([]*model.Issue, error)
	Update(ctx context.Context, workspaceID, id string, req model.UpdateIssueRequest) (*model.Issue, error)
	SetPublishState(ctx context.Context, workspaceID, id string, slug, passcode *string, publishedAt *time.Time) (*model.Issue, error)
	Delete(ctx context.Context, workspaceID, id string) (bool, error)
}

// RFPRepository provides access to requests-for-proposal.
type RFPRepository interface {
	Create(ctx context.Context, workspaceID string, req *model.CreateRFPRequest) (*model.RFP, error)
	GetByID(ctx context.Context, workspaceID, id string) (*model.RFP, error)
	GetByChatSlug(ctx context.Context, slug string) (*model.RFP, error)
	List(ctx context.Context, workspaceID string, opts data.RFPsListOptions) ([]*model.RFP, error)
	Update(ctx context.Context, workspaceID, id string, req model.UpdateRFPRequest) (*model.RFP, error)
	SetPublishState(ctx context.Context, workspaceID, id string, slug, passcode *string, publishedAt *time.Time) (*model.RFP, error)
	Delete(ctx context.Context, workspaceID, id string) (bool, error)
}

// CustomerRepository provides access to customers.
type CustomerRepository interface {
	Create(ctx context.Context, workspaceID string, req *model.CreateCustomerRequest) (*model.Customer, error)
	GetByID(ctx context.Context, workspaceID, id string) (*model.Customer, error)
	List(ctx context.Context, workspaceID string, limit, offset int) ([]*model.Customer, error)
	Update(ctx context.Context, workspaceID, id string, req model.UpdateCustomerRequest) (*model.Customer, error)
	Delete(ctx context.Context, workspaceID, id string) (bool, error)
}

// VendorRepository provides access to vendors.
type VendorRepository interface {
	Create(ctx context.Context, workspaceID string, req *model.CreateVendorRequest) (*model.Vendor, error)
	GetByID(ctx context.Context, workspaceID, id string) (*model.Vendor, error)
	List(ctx context.Context, workspaceID string, limit, offset int) ([]*model.Vendor, error)
	Update(ctx context.Context, workspaceID, id string, req model.UpdateVendorRequest) (*model.Vendor, error)
	Delete(ctx context.Context, workspaceID, id string) (bool, error)
}

// InvoiceRepository provides access to invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, workspaceID string, req *model.CreateInvoiceRequest) (*model.Invoice, error)
	GetByID(ctx context.Context, workspaceID, id string) (*model.Invoice, error)
	List(ctx context.Context, workspaceID string, opts data.InvoicesListOptions) ([]*model.Invoice, error)
	Update(ctx context.Context, workspaceID, id string, req model.UpdateInvoiceRequest) (*model.Invoice, error)
	Delete(ctx context.Context, workspaceID, id string) (bool, error)
}

// WebhookSinkRepository provides access to webhook sinks.
type WebhookSinkRepository interface {
	Create(ctx context.Context, workspaceID string, req *model.CreateWebhookSinkRequest) (*model.WebhookSink, error)
	GetByID(ctx context.Context, workspaceID, id string) (*model.WebhookSink, error)
	List(ctx context.Context, workspaceID string) ([]*model.WebhookSink, error)
	ListByEvent(ctx context.Context, workspaceID string, event model.WebhookEvent) ([]*model.WebhookSink, error)
	SetEnabled(ctx context.Context, workspaceID, id string, enabled bool) (*model.WebhookSink, error)
	Delete(ctx context.Context, workspaceID, id string) (bool, error)
}
