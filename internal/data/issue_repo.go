package data

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/stackfall/workdesk/internal/data/pgxutil"
	"github.com/stackfall/workdesk/internal/domain/model"
	apperrors "github.com/stackfall/workdesk/internal/errors"
)

const issueColumns = "id, workspace_id, customer_id, assignee_id, title, body, status, " +
	"chat_slug, chat_passcode, published_at, created_at, updated_at"

// IssuesListOptions filters and paginates issue listings.
type IssuesListOptions struct {
	Status *model.IssueStatus
	Limit  int
	Offset int
}

// IssueRepo provides database operations for issues.
type IssueRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewIssueRepo creates a new IssueRepo with real time provider.
func NewIssueRepo(db *sql.DB) *IssueRepo {
	return &IssueRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewIssueRepoWithTimeProvider creates a new IssueRepo with a custom time provider (useful for tests).
func NewIssueRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *IssueRepo {
	return &IssueRepo{DB: db, timeProvider: tp}
}

// Create inserts a new issue.
func (r *IssueRepo) Create(
	ctx context.Context,
	workspaceID string,
	req *model.CreateIssueRequest,
) (*model.Issue, error) {
	if req == nil {
		return nil, apperrors.Validation("create issue request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	now := r.timeProvider.Now().UTC()
	var out model.Issue
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO issues (
				id, workspace_id, customer_id, assignee_id, title, body, status, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
			RETURNING `+issueColumns,
			uuid.NewString(),
			workspaceID,
			req.CustomerID,
			req.AssigneeID,
			strings.TrimSpace(req.Title),
			req.Body,
			req.Status,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Issue])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves an issue by ID within a workspace.
func (r *IssueRepo) GetByID(ctx context.Context, workspaceID, id string) (*model.Issue, error) {
	return r.getOne(ctx,
		`SELECT `+issueColumns+` FROM issues WHERE workspace_id = $1 AND id = $2`,
		workspaceID, id)
}

// GetByChatSlug retrieves a published issue by its portal slug. The slug is
// globally unique, so no workspace scoping applies; unpublished issues have
// a NULL slug and can never match.
func (r *IssueRepo) GetByChatSlug(ctx context.Context, slug string) (*model.Issue, error) {
	return r.getOne(ctx, `SELECT `+issueColumns+` FROM issues WHERE chat_slug = $1`, slug)
}

// List retrieves issues for a workspace with optional filters.
func (r *IssueRepo) List(
	ctx context.Context,
	workspaceID string,
	opts IssuesListOptions,
) ([]*model.Issue, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	query := `SELECT ` + issueColumns + ` FROM issues WHERE workspace_id = $1`
	args := []any{workspaceID}
	if opts.Status != nil {
		args = append(args, *opts.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	var rowsOut []model.Issue
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Issue])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.Issue, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates mutable fields of an issue.
func (r *IssueRepo) Update(
	ctx context.Context,
	workspaceID, id string,
	req model.UpdateIssueRequest,
) (*model.Issue, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	setClause, args := r.buildUpdateClause(req)
	if setClause == "" {
		return r.GetByID(ctx, workspaceID, id)
	}
	args = append(args, workspaceID, id)
	query := "UPDATE issues SET " + setClause +
		" WHERE workspace_id = $" + strconv.Itoa(len(args)-1) +
		" AND id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + issueColumns

	return r.getOne(ctx, query, args...)
}

// SetPublishState writes the portal credentials of an issue in one
// statement. Publishing sets slug, passcode, and published_at together;
// unpublishing clears all three.
func (r *IssueRepo) SetPublishState(
	ctx context.Context,
	workspaceID, id string,
	slug, passcode *string,
	publishedAt *time.Time,
) (*model.Issue, error) {
	return r.getOne(ctx, `
		UPDATE issues
		SET chat_slug = $1, chat_passcode = $2, published_at = $3, updated_at = $4
		WHERE workspace_id = $5 AND id = $6
		RETURNING `+issueColumns,
		slug, passcode, publishedAt, r.timeProvider.Now().UTC(), workspaceID, id)
}

// Delete deletes an issue by ID.
func (r *IssueRepo) Delete(ctx context.Context, workspaceID, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx,
			`DELETE FROM issues WHERE workspace_id = $1 AND id = $2`, workspaceID, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, apperrors.MapDBError(err)
	}
	return rows > 0, nil
}

func (r *IssueRepo) buildUpdateClause(req model.UpdateIssueRequest) (string, []any) {
	setParts := make([]string, 0, 6)
	args := make([]any, 0, 8)
	nextIdx := func() int { return len(args) + 1 }

	if req.CustomerID != nil {
		setParts = append(setParts, fmt.Sprintf("customer_id = $%d", nextIdx()))
		args = append(args, req.CustomerID)
	}
	if req.AssigneeID != nil {
		setParts = append(setParts, fmt.Sprintf("assignee_id = $%d", nextIdx()))
		args = append(args, req.AssigneeID)
	}
	if req.Title != nil {
		setParts = append(setParts, fmt.Sprintf("title = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Title))
	}
	if req.Body != nil {
		setParts = append(setParts, fmt.Sprintf("body = $%d", nextIdx()))
		args = append(args, *req.Body)
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", nextIdx()))
		args = append(args, *req.Status)
	}

	if len(setParts) == 0 {
		return "", nil
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())
	return strings.Join(setParts, ", "), args
}

func (r *IssueRepo) getOne(ctx context.Context, query string, args ...any) (*model.Issue, error) {
	var out model.Issue
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Issue])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
