package data

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/stackfall/workdesk/internal/data/pgxutil"
	"github.com/stackfall/workdesk/internal/domain/model"
	apperrors "github.com/stackfall/workdesk/internal/errors"
)

const vendorColumns = "id, workspace_id, name, contact_email, notes, created_at, updated_at"

// VendorRepo provides database operations for vendors.
type VendorRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewVendorRepo creates a new VendorRepo with real time provider.
func NewVendorRepo(db *sql.DB) *VendorRepo {
	return &VendorRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// Create inserts a new vendor.
func (r *VendorRepo) Create(
	ctx context.Context,
	workspaceID string,
	req *model.CreateVendorRequest,
) (*model.Vendor, error) {
	if req == nil {
		return nil, apperrors.Validation("create vendor request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	now := r.timeProvider.Now().UTC()
	var out model.Vendor
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO vendors (id, workspace_id, name, contact_email, notes, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $6)
			RETURNING `+vendorColumns,
			uuid.NewString(),
			workspaceID,
			strings.TrimSpace(req.Name),
			normalizeEmail(req.ContactEmail),
			req.Notes,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Vendor])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a vendor by ID within a workspace.
func (r *VendorRepo) GetByID(ctx context.Context, workspaceID, id string) (*model.Vendor, error) {
	return r.getOne(ctx,
		`SELECT `+vendorColumns+` FROM vendors WHERE workspace_id = $1 AND id = $2`,
		workspaceID, id)
}

// List retrieves vendors for a workspace with pagination.
func (r *VendorRepo) List(
	ctx context.Context,
	workspaceID string,
	limit, offset int,
) ([]*model.Vendor, error) {
	if limit <= 0 {
		limit = 50
	}
	offset = max(offset, 0)

	var rowsOut []model.Vendor
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+vendorColumns+` FROM vendors
			WHERE workspace_id = $1 ORDER BY name LIMIT $2 OFFSET $3`,
			workspaceID, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Vendor])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.Vendor, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates mutable fields of a vendor.
func (r *VendorRepo) Update(
	ctx context.Context,
	workspaceID, id string,
	req model.UpdateVendorRequest,
) (*model.Vendor, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	setParts := make([]string, 0, 4)
	args := make([]any, 0, 6)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.ContactEmail != nil {
		setParts = append(setParts, fmt.Sprintf("contact_email = $%d", nextIdx()))
		args = append(args, normalizeEmail(*req.ContactEmail))
	}
	if req.Notes != nil {
		setParts = append(setParts, fmt.Sprintf("notes = $%d", nextIdx()))
		args = append(args, *req.Notes)
	}
	if len(setParts) == 0 {
		return r.GetByID(ctx, workspaceID, id)
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	args = append(args, workspaceID, id)
	query := "UPDATE vendors SET " + strings.Join(setParts, ", ") +
		" WHERE workspace_id = $" + strconv.Itoa(len(args)-1) +
		" AND id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + vendorColumns

	return r.getOne(ctx, query, args...)
}

// Delete deletes a vendor by ID.
func (r *VendorRepo) Delete(ctx context.Context, workspaceID, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx,
			`DELETE FROM vendors WHERE workspace_id = $1 AND id = $2`, workspaceID, id)
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

func (r *VendorRepo) getOne(ctx context.Context, query string, args ...any) (*model.Vendor, error) {
	var out model.Vendor
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Vendor])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
