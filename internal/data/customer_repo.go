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

const customerColumns = "id, workspace_id, name, email, company, created_at, updated_at"

// CustomerRepo provides database operations for customers.
type CustomerRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewCustomerRepo creates a new CustomerRepo with real time provider.
func NewCustomerRepo(db *sql.DB) *CustomerRepo {
	return &CustomerRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// Create inserts a new customer.
func (r *CustomerRepo) Create(
	ctx context.Context,
	workspaceID string,
	req *model.CreateCustomerRequest,
) (*model.Customer, error) {
	if req == nil {
		return nil, apperrors.Validation("create customer request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	now := r.timeProvider.Now().UTC()
	var out model.Customer
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO customers (id, workspace_id, name, email, company, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $6)
			RETURNING `+customerColumns,
			uuid.NewString(),
			workspaceID,
			strings.TrimSpace(req.Name),
			normalizeEmail(req.Email),
			strings.TrimSpace(req.Company),
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Customer])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a customer by ID within a workspace.
func (r *CustomerRepo) GetByID(ctx context.Context, workspaceID, id string) (*model.Customer, error) {
	return r.getOne(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE workspace_id = $1 AND id = $2`,
		workspaceID, id)
}

// List retrieves customers for a workspace with pagination.
func (r *CustomerRepo) List(
	ctx context.Context,
	workspaceID string,
	limit, offset int,
) ([]*model.Customer, error) {
	if limit <= 0 {
		limit = 50
	}
	offset = max(offset, 0)

	var rowsOut []model.Customer
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+customerColumns+` FROM customers
			WHERE workspace_id = $1 ORDER BY name LIMIT $2 OFFSET $3`,
			workspaceID, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Customer])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.Customer, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates mutable fields of a customer.
func (r *CustomerRepo) Update(
	ctx context.Context,
	workspaceID, id string,
	req model.UpdateCustomerRequest,
) (*model.Customer, error) {
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
	if req.Email != nil {
		setParts = append(setParts, fmt.Sprintf("email = $%d", nextIdx()))
		args = append(args, normalizeEmail(*req.Email))
	}
	if req.Company != nil {
		setParts = append(setParts, fmt.Sprintf("company = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Company))
	}
	if len(setParts) == 0 {
		return r.GetByID(ctx, workspaceID, id)
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	args = append(args, workspaceID, id)
	query := "UPDATE customers SET " + strings.Join(setParts, ", ") +
		" WHERE workspace_id = $" + strconv.Itoa(len(args)-1) +
		" AND id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + customerColumns

	return r.getOne(ctx, query, args...)
}

// Delete deletes a customer by ID.
func (r *CustomerRepo) Delete(ctx context.Context, workspaceID, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx,
			`DELETE FROM customers WHERE workspace_id = $1 AND id = $2`, workspaceID, id)
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

func (r *CustomerRepo) getOne(ctx context.Context, query string, args ...any) (*model.Customer, error) {
	var out model.Customer
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Customer])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
