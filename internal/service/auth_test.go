package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/stackfall/workdesk/internal/domain/auth"
	"github.com/stackfall/workdesk/internal/domain/model"
	"github.com/stackfall/workdesk/internal/mocks"
	mockauth "github.com/stackfall/workdesk/internal/mocks/auth"
)

func newAuthFixture(t *testing.T) (*AuthService, *mockauth.MockAuthProvider, *mockauth.MemorySessionStore, *mocks.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	provider := mockauth.NewMockAuthProvider()
	sessions := mockauth.NewMemorySessionStore()
	users := mocks.NewMockUserRepository(ctrl)

	svc := NewAuthService(AuthServiceOptions{
		Provider:    provider,
		Sessions:    sessions,
		Roles:       mockauth.StaticRoleMapper{AdminGroup: "workdesk-admins", StaffGroup: "workdesk-staff"},
		Users:       users,
		WorkspaceID: testWorkspaceID,
	})
	return svc, provider, sessions, users
}

func TestAuthService_BeginLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("returns provider URL with state and nonce", func(t *testing.T) {
		svc, _, _, _ := newAuthFixture(t)

		res, err := svc.BeginLogin(ctx, "https://workdesk.example/auth/callback")
		require.NoError(t, err)
		assert.Equal(t, "https://mock-idp/auth", res.AuthURL)
		assert.NotEmpty(t, res.State)
		assert.NotEmpty(t, res.Nonce)
	})

	t.Run("empty redirect URL fails", func(t *testing.T) {
		svc, _, _, _ := newAuthFixture(t)

		_, err := svc.BeginLogin(ctx, "")
		assert.EqualError(t, err, "redirect URL is required")
	})
}

func TestAuthService_CompleteLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("maps groups, upserts the account, and persists the session", func(t *testing.T) {
		svc, _, sessions, users := newAuthFixture(t)
		users.EXPECT().
			UpsertByEmail(ctx, testWorkspaceID, "mock.user@example.com", "Mock User", "staff").
			Return(&model.User{ID: "user-1", WorkspaceID: testWorkspaceID, Email: "mock.user@example.com"}, nil)

		res, err := svc.CompleteLogin(ctx, CompleteLoginInput{Code: "code", State: "st", Nonce: "nc"})
		require.NoError(t, err)

		sess := res.Session
		assert.Equal(t, "user-1", sess.UserID)
		assert.Equal(t, testWorkspaceID, sess.WorkspaceID)
		assert.Equal(t, domainauth.RoleStaff, sess.Role)
		assert.NotEmpty(t, sess.ID)

		stored, err := sessions.Get(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, sess.UserID, stored.UserID)
	})

	t.Run("admin group outranks staff membership", func(t *testing.T) {
		svc, provider, _, users := newAuthFixture(t)
		provider.DefaultUser.Groups = []string{"workdesk-staff", "workdesk-admins"}
		users.EXPECT().
			UpsertByEmail(ctx, testWorkspaceID, "mock.user@example.com", "Mock User", "admin").
			Return(&model.User{ID: "user-1", WorkspaceID: testWorkspaceID, Email: "mock.user@example.com"}, nil)

		res, err := svc.CompleteLogin(ctx, CompleteLoginInput{Code: "code", State: "st", Nonce: "nc"})
		require.NoError(t, err)
		assert.Equal(t, domainauth.RoleAdmin, res.Session.Role)
	})

	t.Run("missing parameters fail before the provider call", func(t *testing.T) {
		svc, _, _, _ := newAuthFixture(t)

		for _, in := range []CompleteLoginInput{
			{State: "st", Nonce: "nc"},
			{Code: "code", Nonce: "nc"},
			{Code: "code", State: "st"},
		} {
			_, err := svc.CompleteLogin(ctx, in)
			assert.Error(t, err)
		}
	})
}

func TestAuthService_GetSession(t *testing.T) {
	ctx := context.Background()

	t.Run("valid session round-trips", func(t *testing.T) {
		svc, _, sessions, _ := newAuthFixture(t)
		require.NoError(t, sessions.Save(ctx, domainauth.Session{
			ID:        "sess-1",
			UserID:    "user-1",
			ExpiresAt: time.Now().Add(time.Hour),
		}))

		sess, err := svc.GetSession(ctx, "sess-1")
		require.NoError(t, err)
		assert.Equal(t, "user-1", sess.UserID)
	})

	t.Run("expired session is deleted and rejected", func(t *testing.T) {
		svc, _, sessions, _ := newAuthFixture(t)
		require.NoError(t, sessions.Save(ctx, domainauth.Session{
			ID:        "sess-old",
			UserID:    "user-1",
			ExpiresAt: time.Now().Add(-time.Minute),
		}))

		_, err := svc.GetSession(ctx, "sess-old")
		require.Error(t, err)

		_, err = sessions.Get(ctx, "sess-old")
		assert.ErrorIs(t, err, mockauth.ErrNotFound)
	})

	t.Run("unknown session fails", func(t *testing.T) {
		svc, _, _, _ := newAuthFixture(t)
		_, err := svc.GetSession(ctx, "nope")
		assert.Error(t, err)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	svc, _, sessions, _ := newAuthFixture(t)
	require.NoError(t, sessions.Save(ctx, domainauth.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, svc.Logout(ctx, "sess-1"))
	_, err := sessions.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, mockauth.ErrNotFound)

	// An absent id is a no-op, not an error.
	assert.NoError(t, svc.Logout(ctx, ""))
}
