package service

import (
	"context"

	"github.com/stackfall/workdesk/internal/core"
	"github.com/stackfall/workdesk/internal/domain/model"
)

// CustomerServiceOptions groups dependencies for CustomerService.
type CustomerServiceOptions struct {
	Customers core.CustomerRepository
}

// CustomerService encapsulates customer CRUD.
type CustomerService struct {
	customers core.CustomerRepository
}

// NewCustomerService constructs a new CustomerService.
func NewCustomerService(opts CustomerServiceOptions) *CustomerService {
	return &CustomerService{customers: opts.Customers}
}

// Create creates a customer.
func (s *CustomerService) Create(ctx context.Context, workspaceID string, req *model.CreateCustomerRequest) (*model.Customer, error) {
	return s.customers.Create(ctx, workspaceID, req)
}

// Get retrieves a customer.
func (s *CustomerService) Get(ctx context.Context, workspaceID, id string) (*model.Customer, error) {
	return s.customers.GetByID(ctx, workspaceID, id)
}

// List retrieves customers with pagination.
func (s *CustomerService) List(ctx context.Context, workspaceID string, limit, offset int) ([]*model.Customer, error) {
	return s.customers.List(ctx, workspaceID, limit, offset)
}

// Update updates a customer.
func (s *CustomerService) Update(ctx context.Context, workspaceID, id string, req model.UpdateCustomerRequest) (*model.Customer, error) {
	return s.customers.Update(ctx, workspaceID, id, req)
}

// Delete deletes a customer.
func (s *CustomerService) Delete(ctx context.Context, workspaceID, id string) (bool, error) {
	return s.customers.Delete(ctx, workspaceID, id)
}
