package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/stackfall/workdesk/internal/domain/auth"
	"github.com/stackfall/workdesk/internal/service"
)

// stubAuthService implements AuthServiceInterface over a fixed session set.
type stubAuthService struct {
	sessions map[string]*domainauth.Session
}

func (s *stubAuthService) BeginLogin(context.Context, string) (*service.BeginLoginResult, error) {
	return nil, nil
}

func (s *stubAuthService) CompleteLogin(context.Context, service.CompleteLoginInput) (*service.CompleteLoginResult, error) {
	return nil, nil
}

func (s *stubAuthService) GetSession(_ context.Context, sessionID string) (*domainauth.Session, error) {
	if sess, ok := s.sessions[sessionID]; ok {
		return sess, nil
	}
	return nil, http.ErrNoCookie
}

func (s *stubAuthService) Logout(context.Context, string) error { return nil }

func staffAuthService(role domainauth.Role) *stubAuthService {
	return &stubAuthService{sessions: map[string]*domainauth.Session{
		"valid-session": {
			ID:          "valid-session",
			UserID:      "user-1",
			WorkspaceID: "ws-1",
			Role:        role,
			ExpiresAt:   time.Now().Add(time.Hour),
		},
	}}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequireAuth(t *testing.T) {
	authSvc := staffAuthService(domainauth.RoleStaff)

	var captured *domainauth.Session
	handler := RequireAuth(authSvc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = GetUserSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("no cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/issues", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "authentication_required")
	})

	t.Run("unknown session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/issues", nil)
		req.AddCookie(&http.Cookie{Name: "session_id", Value: "nope"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid session reaches handler with context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/issues", nil)
		req.AddCookie(&http.Cookie{Name: "session_id", Value: "valid-session"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, captured)
		assert.Equal(t, "user-1", captured.UserID)
	})
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("staff denied admin route", func(t *testing.T) {
		handler := RequireRole(staffAuthService(domainauth.RoleStaff), domainauth.RoleAdmin)(next)
		req := httptest.NewRequest(http.MethodGet, "/api/webhooks", nil)
		req.AddCookie(&http.Cookie{Name: "session_id", Value: "valid-session"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "insufficient_permissions")
	})

	t.Run("admin allowed admin route", func(t *testing.T) {
		handler := RequireRole(staffAuthService(domainauth.RoleAdmin), domainauth.RoleAdmin)(next)
		req := httptest.NewRequest(http.MethodGet, "/api/webhooks", nil)
		req.AddCookie(&http.Cookie{Name: "session_id", Value: "valid-session"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin passes staff route", func(t *testing.T) {
		handler := RequireRole(staffAuthService(domainauth.RoleAdmin), domainauth.RoleStaff)(next)
		req := httptest.NewRequest(http.MethodGet, "/api/issues", nil)
		req.AddCookie(&http.Cookie{Name: "session_id", Value: "valid-session"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("guest denied staff route", func(t *testing.T) {
		handler := RequireRole(staffAuthService(domainauth.RoleGuest), domainauth.RoleStaff)(next)
		req := httptest.NewRequest(http.MethodGet, "/api/issues", nil)
		req.AddCookie(&http.Cookie{Name: "session_id", Value: "valid-session"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("anonymous gets 401 not 403", func(t *testing.T) {
		handler := RequireRole(staffAuthService(domainauth.RoleAdmin), domainauth.RoleAdmin)(next)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/webhooks", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	authSvc := staffAuthService(domainauth.RoleStaff)

	var captured *domainauth.Session
	var present bool
	handler := OptionalAuth(authSvc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, present = GetUserSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("without session the request proceeds anonymously", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/portal/issues/x/auth-check", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, present)
		assert.Nil(t, captured)
	})

	t.Run("with session the context carries it", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/portal/issues/x/auth-check", nil)
		req.AddCookie(&http.Cookie{Name: "session_id", Value: "valid-session"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, present)
		require.NotNil(t, captured)
		assert.Equal(t, "user-1", captured.UserID)
	})
}

func TestRecover(t *testing.T) {
	logger := discardLogger()
	handler := Recover(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
