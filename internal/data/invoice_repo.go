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

const invoiceColumns = "id, workspace_id, customer_id, number, amount_cents, currency, " +
	"status, due_date, created_at, updated_at"

// InvoicesListOptions filters and paginates invoice listings.
type InvoicesListOptions struct {
	CustomerID *string
	Status     *model.InvoiceStatus
	Limit      int
	Offset     int
}

// InvoiceRepo provides database operations for invoices.
type InvoiceRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewInvoiceRepo creates a new InvoiceRepo with real time provider.
func NewInvoiceRepo(db *sql.DB) *InvoiceRepo {
	return &InvoiceRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// Create inserts a new invoice. The customer scope check and the insert run
// in one transaction: the FK alone would accept a customer from another
// workspace, and the row must not land if the check fails.
func (r *InvoiceRepo) Create(
	ctx context.Context,
	workspaceID string,
	req *model.CreateInvoiceRequest,
) (*model.Invoice, error) {
	if req == nil {
		return nil, apperrors.Validation("create invoice request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	now := r.timeProvider.Now().UTC()
	var out model.Invoice
	if err := pgxutil.WithPgxTx(ctx, r.DB, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM customers WHERE workspace_id = $1 AND id = $2)`,
			workspaceID, req.CustomerID,
		).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return apperrors.ValidationField("customer_id", "customer not found in workspace")
		}

		rows, err := tx.Query(ctx, `
			INSERT INTO invoices (
				id, workspace_id, customer_id, number, amount_cents, currency, status, due_date, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
			RETURNING `+invoiceColumns,
			uuid.NewString(),
			workspaceID,
			req.CustomerID,
			strings.TrimSpace(req.Number),
			req.AmountCents,
			req.Currency,
			req.Status,
			req.DueDate,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Invoice])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves an invoice by ID within a workspace.
func (r *InvoiceRepo) GetByID(ctx context.Context, workspaceID, id string) (*model.Invoice, error) {
	return r.getOne(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE workspace_id = $1 AND id = $2`,
		workspaceID, id)
}

// List retrieves invoices for a workspace with optional filters.
func (r *InvoiceRepo) List(
	ctx context.Context,
	workspaceID string,
	opts InvoicesListOptions,
) ([]*model.Invoice, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE workspace_id = $1`
	args := []any{workspaceID}
	if opts.CustomerID != nil {
		args = append(args, *opts.CustomerID)
		query += fmt.Sprintf(" AND customer_id = $%d", len(args))
	}
	if opts.Status != nil {
		args = append(args, *opts.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	var rowsOut []model.Invoice
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Invoice])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.Invoice, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates mutable fields of an invoice.
func (r *InvoiceRepo) Update(
	ctx context.Context,
	workspaceID, id string,
	req model.UpdateInvoiceRequest,
) (*model.Invoice, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	setParts := make([]string, 0, 6)
	args := make([]any, 0, 8)
	nextIdx := func() int { return len(args) + 1 }

	if req.Number != nil {
		setParts = append(setParts, fmt.Sprintf("number = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Number))
	}
	if req.AmountCents != nil {
		setParts = append(setParts, fmt.Sprintf("amount_cents = $%d", nextIdx()))
		args = append(args, *req.AmountCents)
	}
	if req.Currency != nil {
		setParts = append(setParts, fmt.Sprintf("currency = $%d", nextIdx()))
		args = append(args, *req.Currency)
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", nextIdx()))
		args = append(args, *req.Status)
	}
	if req.DueDate != nil {
		setParts = append(setParts, fmt.Sprintf("due_date = $%d", nextIdx()))
		args = append(args, *req.DueDate)
	}
	if len(setParts) == 0 {
		return r.GetByID(ctx, workspaceID, id)
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	args = append(args, workspaceID, id)
	query := "UPDATE invoices SET " + strings.Join(setParts, ", ") +
		" WHERE workspace_id = $" + strconv.Itoa(len(args)-1) +
		" AND id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + invoiceColumns

	return r.getOne(ctx, query, args...)
}

// Delete deletes an invoice by ID.
func (r *InvoiceRepo) Delete(ctx context.Context, workspaceID, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx,
			`DELETE FROM invoices WHERE workspace_id = $1 AND id = $2`, workspaceID, id)
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

func (r *InvoiceRepo) getOne(ctx context.Context, query string, args ...any) (*model.Invoice, error) {
	var out model.Invoice
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Invoice])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
