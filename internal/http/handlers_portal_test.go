package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stackfall/workdesk/internal/domain/model"
	"github.com/stackfall/workdesk/internal/domain/party"
	apperrors "github.com/stackfall/workdesk/internal/errors"
	"github.com/stackfall/workdesk/internal/mocks"
	"github.com/stackfall/workdesk/internal/ports"
	"github.com/stackfall/workdesk/internal/service"
)

const (
	portalSlug     = "a1b2c3d4e5f60718"
	portalIssueID  = "issue-42"
	portalPasscode = "K7QX2M"
)

type portalFixture struct {
	issues *mocks.MockIssueRepository
	rfps   *mocks.MockRFPRepository
	users  *mocks.MockUserRepository
	tokens *mocks.MockMagicLinkStore
	mux    *http.ServeMux
}

// newPortalFixture wires real access and chat services over mocked
// repositories and backend, registered on a mux with the production
// route patterns.
func newPortalFixture(t *testing.T, backend ports.ChatBackend) portalFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := portalFixture{
		issues: mocks.NewMockIssueRepository(ctrl),
		rfps:   mocks.NewMockRFPRepository(ctrl),
		users:  mocks.NewMockUserRepository(ctrl),
		tokens: mocks.NewMockMagicLinkStore(ctrl),
	}

	access := service.NewAccessService(service.AccessServiceOptions{
		Issues:     f.issues,
		RFPs:       f.rfps,
		Users:      f.users,
		Tokens:     f.tokens,
		Codec:      party.NewCodec([]byte("portal-test-key")),
		SessionTTL: time.Hour,
		Logger:     discardLogger(),
	})
	chat := service.NewChatService(service.ChatServiceOptions{
		Backend: backend,
		Users:   f.users,
		Logger:  discardLogger(),
	})
	h := &PortalHandlers{Access: access, Chat: chat, Logger: discardLogger()}

	f.mux = http.NewServeMux()
	f.mux.HandleFunc("POST /portal/issues/{slug}/verify", h.VerifyIssue)
	f.mux.HandleFunc("GET /portal/issues/{slug}/auth-check", h.AuthCheckIssue)
	f.mux.HandleFunc("POST /portal/issues/{slug}/chat", h.ChatIssue)
	f.mux.HandleFunc("POST /portal/rfps/{slug}/verify", h.VerifyRFP)
	f.mux.HandleFunc("GET /portal/rfps/{slug}/auth-check", h.AuthCheckRFP)
	f.mux.HandleFunc("POST /portal/rfps/{slug}/chat", h.ChatRFP)
	return f
}

func portalIssue() *model.Issue {
	slug := portalSlug
	passcode := portalPasscode
	published := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &model.Issue{
		ID:           portalIssueID,
		WorkspaceID:  "ws-1",
		Title:        "Checkout page intermittently times out",
		Status:       model.IssueStatusOpen,
		ChatSlug:     &slug,
		ChatPasscode: &passcode,
		PublishedAt:  &published,
	}
}

// findPortalCookie pulls the per-resource soft-session cookie off a
// recorded response.
func findPortalCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestPortalHandlers_VerifyIssue(t *testing.T) {
	t.Run("correct passcode sets the soft-session cookie", func(t *testing.T) {
		f := newPortalFixture(t, nil)
		f.issues.EXPECT().GetByChatSlug(gomock.Any(), portalSlug).Return(portalIssue(), nil)

		body := `{"passcode":"` + portalPasscode + `","name":"Dana"}`
		req := httptest.NewRequest(http.MethodPost, "/portal/issues/"+portalSlug+"/verify", strings.NewReader(body))
		rec := httptest.NewRecorder()
		f.mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"verified"`)

		cookie := findPortalCookie(t, rec, party.KindIssue.CookieName(portalIssueID))
		require.NotNil(t, cookie, "verification must mint the per-resource cookie")
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, "/", cookie.Path)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
		assert.Equal(t, int(time.Hour.Seconds()), cookie.MaxAge)
		assert.NotEmpty(t, cookie.Value)
	})

	t.Run("wrong passcode is 401 invalid_credentials", func(t *testing.T) {
		f := newPortalFixture(t, nil)
		f.issues.EXPECT().GetByChatSlug(gomock.Any(), portalSlug).Return(portalIssue(), nil)

		body := `{"passcode":"WRONG0","name":"Dana"}`
		req := httptest.NewRequest(http.MethodPost, "/portal/issues/"+portalSlug+"/verify", strings.NewReader(body))
		rec := httptest.NewRecorder()
		f.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid_credentials")
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("missing name is 400", func(t *testing.T) {
		f := newPortalFixture(t, nil)

		body := `{"passcode":"` + portalPasscode + `"}`
		req := httptest.NewRequest(http.MethodPost, "/portal/issues/"+portalSlug+"/verify", strings.NewReader(body))
		rec := httptest.NewRecorder()
		f.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body is 400 invalid_json", func(t *testing.T) {
		f := newPortalFixture(t, nil)

		req := httptest.NewRequest(http.MethodPost, "/portal/issues/"+portalSlug+"/verify", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		f.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid_json")
	})

	t.Run("unknown slug is indistinguishable from a bad passcode", func(t *testing.T) {
		f := newPortalFixture(t, nil)
		f.issues.EXPECT().GetByChatSlug(gomock.Any(), "feedfacecafebeef").Return(nil, apperrors.NotFound("issue not found"))

		body := `{"passcode":"` + portalPasscode + `","name":"Dana"}`
		req := httptest.NewRequest(http.MethodPost, "/portal/issues/feedfacecafebeef/verify", strings.NewReader(body))
		rec := httptest.NewRecorder()
		f.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid_credentials")
	})
}

func TestPortalHandlers_VerifyRFP(t *testing.T) {
	t.Run("valid magic link token sets the cookie", func(t *testing.T) {
		f := newPortalFixture(t, nil)
		rfp := portalRFP()
		f.rfps.EXPECT().GetByChatSlug(gomock.Any(), portalSlug).Return(rfp, nil)
		f.tokens.EXPECT().
			Consume(gomock.Any(), "tok-1", rfp.ID, "vendor@hartwell-fittings.example").
			Return(true, nil)

		body := `{"token":"tok-1","email":"vendor@hartwell-fittings.example"}`
		req := httptest.NewRequest(http.MethodPost, "/portal/rfps/"+portalSlug+"/verify", strings.NewReader(body))
		rec := httptest.NewRecorder()
		f.mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		cookie := findPortalCookie(t, rec, party.KindRFP.CookieName(rfp.ID))
		require.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)
	})

	t.Run("burned token is 401", func(t *testing.T) {
		f := newPortalFixture(t, nil)
		rfp := portalRFP()
		f.rfps.EXPECT().GetByChatSlug(gomock.Any(), portalSlug).Return(rfp, nil)
		f.tokens.EXPECT().
			Consume(gomock.Any(), "tok-1", rfp.ID, "vendor@hartwell-fittings.example").
			Return(false, nil)

		body := `{"token":"tok-1","email":"vendor@hartwell-fittings.example"}`
		req := httptest.NewRequest(http.MethodPost, "/portal/rfps/"+portalSlug+"/verify", strings.NewReader(body))
		rec := httptest.NewRecorder()
		f.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid_credentials")
	})
}

func TestPortalHandlers_AuthCheck(t *testing.T) {
	t.Run("no cookie reports anonymous with title", func(t *testing.T) {
		f := newPortalFixture(t, nil)
		f.issues.EXPECT().GetByChatSlug(gomock.Any(), portalSlug).Return(portalIssue(), nil)

		req := httptest.NewRequest(http.MethodGet, "/portal/issues/"+portalSlug+"/auth-check", nil)
		rec := httptest.NewRecorder()
		f.mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var out map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, false, out["authenticated"])
		assert.Equal(t, "Checkout page intermittently times out", out["title"])
		assert.NotContains(t, out, "display_name")
	})

	t.Run("verified cookie reports the external viewer", func(t *testing.T) {
		f := newPortalFixture(t, nil)
		f.issues.EXPECT().GetByChatSlug(gomock.Any(), portalSlug).Return(portalIssue(), nil).Times(2)

		cookie := verifyPortalIssue(t, f)

		req := httptest.NewRequest(http.MethodGet, "/portal/issues/"+portalSlug+"/auth-check", nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		f.mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var out map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, true, out["authenticated"])
		assert.Equal(t, "Dana", out["display_name"])
		assert.Equal(t, "external", out["viewer_kind"])
	})

	t.Run("tampered cookie degrades to anonymous", func(t *testing.T) {
		f := newPortalFixture(t, nil)
		f.issues.EXPECT().GetByChatSlug(gomock.Any(), portalSlug).Return(portalIssue(), nil)

		req := httptest.NewRequest(http.MethodGet, "/portal/issues/"+portalSlug+"/auth-check", nil)
		req.AddCookie(&http.Cookie{
			Name:  party.KindIssue.CookieName(portalIssueID),
			Value: "not-a-signed-session",
		})
		rec := httptest.NewRecorder()
		f.mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var out map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, false, out["authenticated"])
	})
}

func TestPortalHandlers_Chat(t *testing.T) {
	t.Run("anonymous requester is 401", func(t *testing.T) {
		f := newPortalFixture(t, nil)
		f.issues.EXPECT().GetByChatSlug(gomock.Any(), portalSlug).Return(portalIssue(), nil)

		req := httptest.NewRequest(http.MethodPost, "/portal/issues/"+portalSlug+"/chat", nil)
		rec := httptest.NewRecorder()
		f.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("no backend configured is 503", func(t *testing.T) {
		f := newPortalFixture(t, nil)
		f.issues.EXPECT().GetByChatSlug(gomock.Any(), portalSlug).Return(portalIssue(), nil).Times(2)

		cookie := verifyPortalIssue(t, f)

		req := httptest.NewRequest(http.MethodPost, "/portal/issues/"+portalSlug+"/chat", nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		f.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("verified viewer gets the bootstrap payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		backend := mocks.NewMockChatBackend(ctrl)
		f := newPortalFixture(t, backend)
		f.issues.EXPECT().GetByChatSlug(gomock.Any(), portalSlug).Return(portalIssue(), nil).Times(2)

		cookie := verifyPortalIssue(t, f)

		channelID := party.KindIssue.ChannelID(portalIssueID)
		var viewerID string
		backend.EXPECT().
			UpsertUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u ports.ChatUser) error {
				viewerID = u.ID
				assert.Equal(t, "Dana", u.Name)
				return nil
			})
		backend.EXPECT().
			CreateOrGetChannel(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ch ports.ChannelDescriptor) error {
				assert.Equal(t, channelID, ch.ID)
				assert.Equal(t, "messaging", ch.Type)
				return nil
			})
		backend.EXPECT().
			ChannelMembers(gomock.Any(), channelID, gomock.Any()).
			Return(nil, nil)
		backend.EXPECT().
			AddChannelMembers(gomock.Any(), channelID, gomock.Any()).
			Return(nil)
		backend.EXPECT().MintUserToken(gomock.Any()).Return("chat-jwt", nil)
		backend.EXPECT().APIKey().Return("app-key")

		req := httptest.NewRequest(http.MethodPost, "/portal/issues/"+portalSlug+"/chat", nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		f.mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var out service.ChatBootstrap
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, "app-key", out.APIKey)
		assert.Equal(t, "chat-jwt", out.Token)
		assert.Equal(t, channelID, out.ChannelID)
		assert.Equal(t, "messaging", out.ChannelType)
		assert.Equal(t, viewerID, out.UserID)
		assert.Equal(t, "Dana", out.DisplayName)
	})
}

// verifyPortalIssue runs the verify flow and returns the minted cookie so
// follow-up requests exercise the real decode path.
func verifyPortalIssue(t *testing.T, f portalFixture) *http.Cookie {
	t.Helper()
	body := `{"passcode":"` + portalPasscode + `","name":"Dana"}`
	req := httptest.NewRequest(http.MethodPost, "/portal/issues/"+portalSlug+"/verify", strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := findPortalCookie(t, rec, party.KindIssue.CookieName(portalIssueID))
	require.NotNil(t, cookie)
	return cookie
}

func portalRFP() *model.RFP {
	slug := portalSlug
	passcode := portalPasscode
	published := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &model.RFP{
		ID:           "rfp-42",
		WorkspaceID:  "ws-1",
		Title:        "Warehouse shelving refit",
		Status:       model.RFPStatusOpen,
		ChatSlug:     &slug,
		ChatPasscode: &passcode,
		PublishedAt:  &published,
	}
}
