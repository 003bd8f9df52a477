package service

import (
	"context"

	"github.com/stackfall/workdesk/internal/core"
	"github.com/stackfall/workdesk/internal/data"
	"github.com/stackfall/workdesk/internal/domain/model"
)

// InvoiceServiceOptions groups dependencies for InvoiceService.
type InvoiceServiceOptions struct {
	Invoices  core.InvoiceRepository
	Customers core.CustomerRepository
}

// InvoiceService encapsulates invoice CRUD. Payment-processor state lives
// outside this system.
type InvoiceService struct {
	invoices  core.InvoiceRepository
	customers core.CustomerRepository
}

// NewInvoiceService constructs a new InvoiceService.
func NewInvoiceService(opts InvoiceServiceOptions) *InvoiceService {
	return &InvoiceService{invoices: opts.Invoices, customers: opts.Customers}
}

// Create creates an invoice after confirming the customer exists in the
// workspace, so a cross-workspace customer id fails loudly instead of
// leaning on the foreign key alone.
func (s *InvoiceService) Create(ctx context.Context, workspaceID string, req *model.CreateInvoiceRequest) (*model.Invoice, error) {
	if req != nil && req.CustomerID != "" {
		if _, err := s.customers.GetByID(ctx, workspaceID, req.CustomerID); err != nil {
			return nil, err
		}
	}
	return s.invoices.Create(ctx, workspaceID, req)
}

// Get retrieves an invoice.
func (s *InvoiceService) Get(ctx context.Context, workspaceID, id string) (*model.Invoice, error) {
	return s.invoices.GetByID(ctx, workspaceID, id)
}

// List retrieves invoices with optional filters.
func (s *InvoiceService) List(ctx context.Context, workspaceID string, opts data.InvoicesListOptions) ([]*model.Invoice, error) {
	return s.invoices.List(ctx, workspaceID, opts)
}

// Update updates an invoice.
func (s *InvoiceService) Update(ctx context.Context, workspaceID, id string, req model.UpdateInvoiceRequest) (*model.Invoice, error) {
	return s.invoices.Update(ctx, workspaceID, id, req)
}

// Delete deletes an invoice.
func (s *InvoiceService) Delete(ctx context.Context, workspaceID, id string) (bool, error) {
	return s.invoices.Delete(ctx, workspaceID, id)
}
