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

const webhookSinkColumns = "id, workspace_id, name, url, event, selector, enabled, created_at, updated_at"

// WebhookSinkRepo provides database operations for webhook sinks.
type WebhookSinkRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewWebhookSinkRepo creates a new WebhookSinkRepo with real time provider.
func NewWebhookSinkRepo(db *sql.DB) *WebhookSinkRepo {
	return &WebhookSinkRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// Create inserts a new webhook sink.
func (r *WebhookSinkRepo) Create(
	ctx context.Context,
	workspaceID string,
	req *model.CreateWebhookSinkRequest,
) (*model.WebhookSink, error) {
	if req == nil {
		return nil, apperrors.Validation("create webhook sink request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	now := r.timeProvider.Now().UTC()
	var out model.WebhookSink
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO webhook_sinks (id, workspace_id, name, url, event, selector, enabled, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
			RETURNING `+webhookSinkColumns,
			uuid.NewString(),
			workspaceID,
			strings.TrimSpace(req.Name),
			strings.TrimSpace(req.URL),
			req.Event,
			req.Selector,
			enabled,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.WebhookSink])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a webhook sink by ID within a workspace.
func (r *WebhookSinkRepo) GetByID(ctx context.Context, workspaceID, id string) (*model.WebhookSink, error) {
	return r.getOne(ctx,
		`SELECT `+webhookSinkColumns+` FROM webhook_sinks WHERE workspace_id = $1 AND id = $2`,
		workspaceID, id)
}

// List retrieves all webhook sinks of a workspace.
func (r *WebhookSinkRepo) List(ctx context.Context, workspaceID string) ([]*model.WebhookSink, error) {
	return r.list(ctx,
		`SELECT `+webhookSinkColumns+` FROM webhook_sinks WHERE workspace_id = $1 ORDER BY name`,
		workspaceID)
}

// ListByEvent retrieves the enabled sinks subscribed to an event.
func (r *WebhookSinkRepo) ListByEvent(
	ctx context.Context,
	workspaceID string,
	event model.WebhookEvent,
) ([]*model.WebhookSink, error) {
	return r.list(ctx,
		`SELECT `+webhookSinkColumns+` FROM webhook_sinks
		WHERE workspace_id = $1 AND event = $2 AND enabled ORDER BY name`,
		workspaceID, event)
}

// SetEnabled toggles a sink without touching its definition.
func (r *WebhookSinkRepo) SetEnabled(
	ctx context.Context,
	workspaceID, id string,
	enabled bool,
) (*model.WebhookSink, error) {
	return r.getOne(ctx, `
		UPDATE webhook_sinks SET enabled = $1, updated_at = $2
		WHERE workspace_id = $3 AND id = $4
		RETURNING `+webhookSinkColumns,
		enabled, r.timeProvider.Now().UTC(), workspaceID, id)
}

// Delete deletes a webhook sink by ID.
func (r *WebhookSinkRepo) Delete(ctx context.Context, workspaceID, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx,
			`DELETE FROM webhook_sinks WHERE workspace_id = $1 AND id = $2`, workspaceID, id)
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

func (r *WebhookSinkRepo) list(ctx context.Context, query string, args ...any) ([]*model.WebhookSink, error) {
	var rowsOut []model.WebhookSink
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.WebhookSink])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.WebhookSink, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

func (r *WebhookSinkRepo) getOne(ctx context.Context, query string, args ...any) (*model.WebhookSink, error) {
	var out model.WebhookSink
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.WebhookSink])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
