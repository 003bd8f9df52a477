package service

import (
	"context"

	"github.com/stackfall/workdesk/internal/core"
	"github.com/stackfall/workdesk/internal/domain/model"
)

// VendorServiceOptions groups dependencies for VendorService.
type VendorServiceOptions struct {
	Vendors core.VendorRepository
}

// VendorService encapsulates vendor CRUD.
type VendorService struct {
	vendors core.VendorRepository
}

// NewVendorService constructs a new VendorService.
func NewVendorService(opts VendorServiceOptions) *VendorService {
	return &VendorService{vendors: opts.Vendors}
}

// Create creates a vendor.
func (s *VendorService) Create(ctx context.Context, workspaceID string, req *model.CreateVendorRequest) (*model.Vendor, error) {
	return s.vendors.Create(ctx, workspaceID, req)
}

// Get retrieves a vendor.
func (s *VendorService) Get(ctx context.Context, workspaceID, id string) (*model.Vendor, error) {
	return s.vendors.GetByID(ctx, workspaceID, id)
}

// List retrieves vendors with pagination.
func (s *VendorService) List(ctx context.Context, workspaceID string, limit, offset int) ([]*model.Vendor, error) {
	return s.vendors.List(ctx, workspaceID, limit, offset)
}

// Update updates a vendor.
func (s *VendorService) Update(ctx context.Context, workspaceID, id string, req model.UpdateVendorRequest) (*model.Vendor, error) {
	return s.vendors.Update(ctx, workspaceID, id, req)
}

// Delete deletes a vendor.
func (s *VendorService) Delete(ctx context.Context, workspaceID, id string) (bool, error) {
	return s.vendors.Delete(ctx, workspaceID, id)
}
