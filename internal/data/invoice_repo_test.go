package data

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackfall/workdesk/internal/domain/model"
	apperrors "github.com/stackfall/workdesk/internal/errors"
	"github.com/stackfall/workdesk/internal/testutil"
)

func TestInvoiceRepo_Create(t *testing.T) {
	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()

		frozen := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
		clock := NewFixedTimeProvider(frozen)

		repo := NewInvoiceRepo(db)
		repo.timeProvider = clock

		workspaces := NewWorkspaceRepo(db)
		customers := NewCustomerRepo(db)

		ws, err := workspaces.Create(ctx, "invoice-create-ws")
		require.NoError(t, err)
		otherWS, err := workspaces.Create(ctx, "invoice-create-other-ws")
		require.NoError(t, err)

		customer, err := customers.Create(ctx, ws.ID, &model.CreateCustomerRequest{
			Name:  "Acme Plumbing",
			Email: "billing@acme-plumbing.example",
		})
		require.NoError(t, err)

		t.Run("inserts with pinned timestamps", func(t *testing.T) {
			inv, err := repo.Create(ctx, ws.ID, &model.CreateInvoiceRequest{
				CustomerID:  customer.ID,
				Number:      "INV-1001",
				AmountCents: 125000,
			})
			require.NoError(t, err)
			require.NotNil(t, inv)

			assert.NotEmpty(t, inv.ID)
			assert.Equal(t, ws.ID, inv.WorkspaceID)
			assert.Equal(t, customer.ID, inv.CustomerID)
			assert.Equal(t, "INV-1001", inv.Number)
			assert.Equal(t, int64(125000), inv.AmountCents)
			assert.Equal(t, "USD", inv.Currency)
			assert.Equal(t, model.InvoiceStatusDraft, inv.Status)
			assert.True(t, inv.CreatedAt.Equal(frozen), "created_at %v, want %v", inv.CreatedAt, frozen)
			assert.True(t, inv.UpdatedAt.Equal(frozen), "updated_at %v, want %v", inv.UpdatedAt, frozen)
		})

		t.Run("rejects customer from another workspace and leaves no row", func(t *testing.T) {
			inv, err := repo.Create(ctx, otherWS.ID, &model.CreateInvoiceRequest{
				CustomerID:  customer.ID,
				Number:      "INV-2001",
				AmountCents: 5000,
			})
			require.Error(t, err)
			assert.Nil(t, inv)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, "customer_id", apperrors.GetField(err))

			listed, err := repo.List(ctx, otherWS.ID, InvoicesListOptions{})
			require.NoError(t, err)
			assert.Empty(t, listed)
		})

		t.Run("rejects unknown customer", func(t *testing.T) {
			inv, err := repo.Create(ctx, ws.ID, &model.CreateInvoiceRequest{
				CustomerID:  "550e8400-e29b-41d4-a716-446655440000",
				Number:      "INV-3001",
				AmountCents: 900,
			})
			require.Error(t, err)
			assert.Nil(t, inv)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, "customer_id", apperrors.GetField(err))
		})

		t.Run("duplicate number in one workspace conflicts", func(t *testing.T) {
			_, err := repo.Create(ctx, ws.ID, &model.CreateInvoiceRequest{
				CustomerID:  customer.ID,
				Number:      "INV-1001",
				AmountCents: 4200,
			})
			require.Error(t, err)
			assert.True(t, apperrors.IsConflict(err))
		})
	})
}

func TestInvoiceRepo_Update(t *testing.T) {
	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()

		frozen := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
		clock := NewFixedTimeProvider(frozen)

		repo := NewInvoiceRepo(db)
		repo.timeProvider = clock

		workspaces := NewWorkspaceRepo(db)
		customers := NewCustomerRepo(db)

		ws, err := workspaces.Create(ctx, "invoice-update-ws")
		require.NoError(t, err)
		customer, err := customers.Create(ctx, ws.ID, &model.CreateCustomerRequest{Name: "Globex"})
		require.NoError(t, err)

		inv, err := repo.Create(ctx, ws.ID, &model.CreateInvoiceRequest{
			CustomerID:  customer.ID,
			Number:      "INV-5001",
			AmountCents: 3000,
		})
		require.NoError(t, err)

		clock.AddTime(45 * time.Minute)
		later := frozen.Add(45 * time.Minute)

		status := model.InvoiceStatusSent
		updated, err := repo.Update(ctx, ws.ID, inv.ID, model.UpdateInvoiceRequest{Status: &status})
		require.NoError(t, err)

		assert.Equal(t, model.InvoiceStatusSent, updated.Status)
		assert.True(t, updated.CreatedAt.Equal(frozen), "created_at must not move on update")
		assert.True(t, updated.UpdatedAt.Equal(later), "updated_at %v, want %v", updated.UpdatedAt, later)
	})
}
