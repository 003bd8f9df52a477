package data

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/stackfall/workdesk/internal/data/pgxutil"
	"github.com/stackfall/workdesk/internal/domain/model"
	apperrors "github.com/stackfall/workdesk/internal/errors"
)

const workspaceColumns = "id, name, created_at"

// WorkspaceRepo provides database operations for workspaces.
type WorkspaceRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewWorkspaceRepo creates a new WorkspaceRepo with real time provider.
func NewWorkspaceRepo(db *sql.DB) *WorkspaceRepo {
	return &WorkspaceRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// Create inserts a new workspace.
func (r *WorkspaceRepo) Create(ctx context.Context, name string) (*model.Workspace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ValidationField("name", "name is required")
	}

	var out model.Workspace
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO workspaces (id, name, created_at)
			VALUES ($1, $2, $3)
			RETURNING `+workspaceColumns,
			uuid.NewString(),
			name,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Workspace])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a workspace by ID.
func (r *WorkspaceRepo) GetByID(ctx context.Context, id string) (*model.Workspace, error) {
	var out model.Workspace
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+workspaceColumns+` FROM workspaces WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Workspace])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List retrieves all workspaces ordered by creation time.
func (r *WorkspaceRepo) List(ctx context.Context) ([]*model.Workspace, error) {
	var rowsOut []model.Workspace
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+workspaceColumns+` FROM workspaces ORDER BY created_at`)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Workspace])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.Workspace, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
