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

const rfpColumns = "id, workspace_id, owner_id, title, description, status, " +
	"chat_slug, chat_passcode, published_at, created_at, updated_at"

// RFPsListOptions filters and paginates RFP listings.
type RFPsListOptions struct {
	Status *model.RFPStatus
	Limit  int
	Offset int
}

// RFPRepo provides database operations for requests-for-proposal.
type RFPRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewRFPRepo creates a new RFPRepo with real time provider.
func NewRFPRepo(db *sql.DB) *RFPRepo {
	return &RFPRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewRFPRepoWithTimeProvider creates a new RFPRepo with a custom time provider (useful for tests).
func NewRFPRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *RFPRepo {
	return &RFPRepo{DB: db, timeProvider: tp}
}

// Create inserts a new RFP.
func (r *RFPRepo) Create(
	ctx context.Context,
	workspaceID string,
	req *model.CreateRFPRequest,
) (*model.RFP, error) {
	if req == nil {
		return nil, apperrors.Validation("create rfp request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	now := r.timeProvider.Now().UTC()
	var out model.RFP
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO rfps (
				id, workspace_id, owner_id, title, description, status, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
			RETURNING `+rfpColumns,
			uuid.NewString(),
			workspaceID,
			req.OwnerID,
			strings.TrimSpace(req.Title),
			req.Description,
			req.Status,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.RFP])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves an RFP by ID within a workspace.
func (r *RFPRepo) GetByID(ctx context.Context, workspaceID, id string) (*model.RFP, error) {
	return r.getOne(ctx,
		`SELECT `+rfpColumns+` FROM rfps WHERE workspace_id = $1 AND id = $2`,
		workspaceID, id)
}

// GetByChatSlug retrieves a published RFP by its portal slug.
func (r *RFPRepo) GetByChatSlug(ctx context.Context, slug string) (*model.RFP, error) {
	return r.getOne(ctx, `SELECT `+rfpColumns+` FROM rfps WHERE chat_slug = $1`, slug)
}

// List retrieves RFPs for a workspace with optional filters.
func (r *RFPRepo) List(
	ctx context.Context,
	workspaceID string,
	opts RFPsListOptions,
) ([]*model.RFP, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	query := `SELECT ` + rfpColumns + ` FROM rfps WHERE workspace_id = $1`
	args := []any{workspaceID}
	if opts.Status != nil {
		args = append(args, *opts.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	var rowsOut []model.RFP
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.RFP])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.RFP, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates mutable fields of an RFP.
func (r *RFPRepo) Update(
	ctx context.Context,
	workspaceID, id string,
	req model.UpdateRFPRequest,
) (*model.RFP, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	setClause, args := r.buildUpdateClause(req)
	if setClause == "" {
		return r.GetByID(ctx, workspaceID, id)
	}
	args = append(args, workspaceID, id)
	query := "UPDATE rfps SET " + setClause +
		" WHERE workspace_id = $" + strconv.Itoa(len(args)-1) +
		" AND id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + rfpColumns

	return r.getOne(ctx, query, args...)
}

// SetPublishState writes the portal credentials of an RFP in one statement.
func (r *RFPRepo) SetPublishState(
	ctx context.Context,
	workspaceID, id string,
	slug, passcode *string,
	publishedAt *time.Time,
) (*model.RFP, error) {
	return r.getOne(ctx, `
		UPDATE rfps
		SET chat_slug = $1, chat_passcode = $2, published_at = $3, updated_at = $4
		WHERE workspace_id = $5 AND id = $6
		RETURNING `+rfpColumns,
		slug, passcode, publishedAt, r.timeProvider.Now().UTC(), workspaceID, id)
}

// Delete deletes an RFP by ID.
func (r *RFPRepo) Delete(ctx context.Context, workspaceID, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx,
			`DELETE FROM rfps WHERE workspace_id = $1 AND id = $2`, workspaceID, id)
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

func (r *RFPRepo) buildUpdateClause(req model.UpdateRFPRequest) (string, []any) {
	setParts := make([]string, 0, 5)
	args := make([]any, 0, 6)
	nextIdx := func() int { return len(args) + 1 }

	if req.OwnerID != nil {
		setParts = append(setParts, fmt.Sprintf("owner_id = $%d", nextIdx()))
		args = append(args, req.OwnerID)
	}
	if req.Title != nil {
		setParts = append(setParts, fmt.Sprintf("title = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Title))
	}
	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", nextIdx()))
		args = append(args, *req.Description)
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

func (r *RFPRepo) getOne(ctx context.Context, query string, args ...any) (*model.RFP, error) {
	var out model.RFP
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.RFP])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
