package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/stackfall/workdesk/internal/domain/auth"
	"github.com/stackfall/workdesk/internal/testutil"
)

func TestSessionStore_SaveGetDelete(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	sess := domainauth.Session{
		ID:          "sess-1",
		UserID:      "user-1",
		WorkspaceID: "ws-1",
		FirstName:   "Avery",
		LastName:    "Lane",
		Email:       "avery@example.com",
		Role:        domainauth.RoleStaff,
		ExpiresAt:   time.Now().Add(time.Hour),
	}

	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, got.UserID)
	assert.Equal(t, sess.Email, got.Email)
	assert.Equal(t, sess.Role, got.Role)

	require.NoError(t, store.Delete(ctx, "sess-1"))

	_, err = store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_SaveValidation(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	err := store.Save(ctx, domainauth.Session{ExpiresAt: time.Now().Add(time.Hour)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session ID cannot be empty")

	err = store.Save(ctx, domainauth.Session{ID: "sess-2", ExpiresAt: time.Now().Add(-time.Minute)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestSessionStore_GetMissing(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	_, err := store.Get(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Get(ctx, "never-saved")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMagicLinkStore_IssueConsume(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewMagicLinkStore(client)
	ctx := context.Background()

	token, err := store.Issue(ctx, "res-1", "Vendor@Example.com", time.Hour)
	require.NoError(t, err)
	require.Len(t, token, 32)

	// Case-insensitive subject match.
	ok, err := store.Consume(ctx, token, "res-1", "vendor@example.com")
	require.NoError(t, err)
	require.True(t, ok)

	// GETDEL destroyed the entry; replay fails.
	ok, err = store.Consume(ctx, token, "res-1", "vendor@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMagicLinkStore_WrongBinding(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewMagicLinkStore(client)
	ctx := context.Background()

	token, err := store.Issue(ctx, "res-1", "vendor@example.com", time.Hour)
	require.NoError(t, err)

	ok, err := store.Consume(ctx, token, "res-2", "vendor@example.com")
	require.NoError(t, err)
	require.False(t, ok)

	// The failed attempt already destroyed the token.
	ok, err = store.Consume(ctx, token, "res-1", "vendor@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMagicLinkStore_UnknownToken(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewMagicLinkStore(client)

	ok, err := store.Consume(context.Background(), "deadbeef", "res-1", "vendor@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}
