package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csrfHandler() http.Handler {
	return CSRFProtection(CSRFConfig{})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

// issueCSRFToken performs the initial safe request and returns the minted token.
func issueCSRFToken(t *testing.T, handler http.Handler) string {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/issues", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == DefaultCSRFCookieName {
			require.NotEmpty(t, c.Value)
			return c.Value
		}
	}
	t.Fatal("CSRF cookie not set")
	return ""
}

func TestCSRFProtection_SafeMethodsExempt(t *testing.T) {
	handler := csrfHandler()

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(method, "/api/issues", nil))
		assert.Equal(t, http.StatusOK, rec.Code, method)
	}
}

func TestCSRFProtection_StateChangingWithoutHeaderFails(t *testing.T) {
	handler := csrfHandler()
	token := issueCSRFToken(t, handler)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		req := httptest.NewRequest(method, "/api/issues", nil)
		req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: token})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code, method)
		assert.Contains(t, rec.Body.String(), "csrf_validation_failed")
	}
}

func TestCSRFProtection_HeaderMustMatchCookie(t *testing.T) {
	handler := csrfHandler()
	token := issueCSRFToken(t, handler)

	t.Run("matching header passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/issues", nil)
		req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: token})
		req.Header.Set(DefaultCSRFHeaderName, token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("mismatched header fails", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/issues", nil)
		req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: token})
		req.Header.Set(DefaultCSRFHeaderName, "attacker-guess")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("header without cookie fails", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/issues", nil)
		req.Header.Set(DefaultCSRFHeaderName, token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestCSRFProtection_ExistingCookieNotReissued(t *testing.T) {
	handler := csrfHandler()
	token := issueCSRFToken(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/api/issues", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Result().Cookies(), "token must stay stable across requests")
}
