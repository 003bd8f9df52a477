package service

import (
	"context"

	"github.com/stackfall/workdesk/internal/core"
	"github.com/stackfall/workdesk/internal/data"
	"github.com/stackfall/workdesk/internal/domain/model"
)

// IssueServiceOptions groups dependencies for IssueService.
type IssueServiceOptions struct {
	Issues core.IssueRepository
}

// IssueService encapsulates issue CRUD. Portal exposure is handled by
// PublishService, not here.
type IssueService struct {
	issues core.IssueRepository
}

// NewIssueService constructs a new IssueService.
func NewIssueService(opts IssueServiceOptions) *IssueService {
	return &IssueService{issues: opts.Issues}
}

// Create creates an issue.
func (s *IssueService) Create(ctx context.Context, workspaceID string, req *model.CreateIssueRequest) (*model.Issue, error) {
	return s.issues.Create(ctx, workspaceID, req)
}

// Get retrieves an issue.
func (s *IssueService) Get(ctx context.Context, workspaceID, id string) (*model.Issue, error) {
	return s.issues.GetByID(ctx, workspaceID, id)
}

// List retrieves issues with optional filters.
func (s *IssueService) List(ctx context.Context, workspaceID string, opts data.IssuesListOptions) ([]*model.Issue, error) {
	return s.issues.List(ctx, workspaceID, opts)
}

// Update updates an issue.
func (s *IssueService) Update(ctx context.Context, workspaceID, id string, req model.UpdateIssueRequest) (*model.Issue, error) {
	return s.issues.Update(ctx, workspaceID, id, req)
}

// Delete deletes an issue.
func (s *IssueService) Delete(ctx context.Context, workspaceID, id string) (bool, error) {
	return s.issues.Delete(ctx, workspaceID, id)
}
