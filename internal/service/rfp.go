package service

import (
	"context"

	"github.com/stackfall/workdesk/internal/core"
	"github.com/stackfall/workdesk/internal/data"
	"github.com/stackfall/workdesk/internal/domain/model"
)

// RFPServiceOptions groups dependencies for RFPService.
type RFPServiceOptions struct {
	RFPs core.RFPRepository
}

// RFPService encapsulates RFP CRUD.
type RFPService struct {
	rfps core.RFPRepository
}

// NewRFPService constructs a new RFPService.
func NewRFPService(opts RFPServiceOptions) *RFPService {
	return &RFPService{rfps: opts.RFPs}
}

// Create creates an RFP.
func (s *RFPService) Create(ctx context.Context, workspaceID string, req *model.CreateRFPRequest) (*model.RFP, error) {
	return s.rfps.Create(ctx, workspaceID, req)
}

// Get retrieves an RFP.
func (s *RFPService) Get(ctx context.Context, workspaceID, id string) (*model.RFP, error) {
	return s.rfps.GetByID(ctx, workspaceID, id)
}

// List retrieves RFPs with optional filters.
func (s *RFPService) List(ctx context.Context, workspaceID string, opts data.RFPsListOptions) ([]*model.RFP, error) {
	return s.rfps.List(ctx, workspaceID, opts)
}

// Update updates an RFP.
func (s *RFPService) Update(ctx context.Context, workspaceID, id string, req model.UpdateRFPRequest) (*model.RFP, error) {
	return s.rfps.Update(ctx, workspaceID, id, req)
}

// Delete deletes an RFP.
func (s *RFPService) Delete(ctx context.Context, workspaceID, id string) (bool, error) {
	return s.rfps.Delete(ctx, workspaceID, id)
}
