package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stackfall/workdesk/internal/data"
	domainauth "github.com/stackfall/workdesk/internal/domain/auth"
	"github.com/stackfall/workdesk/internal/domain/model"
	apperrors "github.com/stackfall/workdesk/internal/errors"
	"github.com/stackfall/workdesk/internal/mocks"
	"github.com/stackfall/workdesk/internal/service"
)

type issueHandlerFixture struct {
	issues *mocks.MockIssueRepository
	tokens *mocks.MockMagicLinkStore
	mux    *http.ServeMux
}

// newIssueHandlerFixture registers the issue routes behind a stub staff
// session so handlers see the same context middleware provides.
func newIssueHandlerFixture(t *testing.T) issueHandlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	issues := mocks.NewMockIssueRepository(ctrl)
	tokens := mocks.NewMockMagicLinkStore(ctrl)

	h := &IssueHandlers{
		Svc: service.NewIssueService(service.IssueServiceOptions{Issues: issues}),
		Publish: service.NewPublishService(service.PublishServiceOptions{
			Issues:       issues,
			Tokens:       tokens,
			BaseURL:      "https://workdesk.example",
			MagicLinkTTL: time.Hour,
			Logger:       discardLogger(),
		}),
	}

	withSession := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			sess := &domainauth.Session{
				ID:          "sess-1",
				UserID:      "user-1",
				WorkspaceID: "ws-1",
				Role:        domainauth.RoleStaff,
				ExpiresAt:   time.Now().Add(time.Hour),
			}
			next(w, r.WithContext(SetSessionInContext(r.Context(), sess)))
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/issues", withSession(h.Create))
	mux.HandleFunc("GET /api/issues", withSession(h.List))
	mux.HandleFunc("GET /api/issues/{id}", withSession(h.GetByID))
	mux.HandleFunc("PUT /api/issues/{id}", withSession(h.Update))
	mux.HandleFunc("DELETE /api/issues/{id}", withSession(h.Delete))
	mux.HandleFunc("POST /api/issues/{id}/publish", withSession(h.PublishIssue))
	mux.HandleFunc("POST /api/issues/{id}/invite", withSession(h.Invite))
	return issueHandlerFixture{issues: issues, tokens: tokens, mux: mux}
}

func TestIssueHandlers_Create(t *testing.T) {
	f := newIssueHandlerFixture(t)
	f.issues.EXPECT().
		Create(gomock.Any(), "ws-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, workspaceID string, req *model.CreateIssueRequest) (*model.Issue, error) {
			require.Equal(t, "Checkout page intermittently times out", req.Title)
			return &model.Issue{
				ID:          "issue-1",
				WorkspaceID: workspaceID,
				Title:       req.Title,
				Body:        req.Body,
				Status:      model.IssueStatusOpen,
			}, nil
		})

	body := `{"title":"Checkout page intermittently times out","body":"Started after the 4.2 deploy."}`
	req := httptest.NewRequest(http.MethodPost, "/api/issues", strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var out model.Issue
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "issue-1", out.ID)
	assert.Equal(t, model.IssueStatusOpen, out.Status)
}

func TestIssueHandlers_Create_RejectsUnknownFields(t *testing.T) {
	f := newIssueHandlerFixture(t)

	body := `{"title":"x","bogus":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/issues", strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_json")
}

func TestIssueHandlers_List(t *testing.T) {
	t.Run("status filter is forwarded", func(t *testing.T) {
		f := newIssueHandlerFixture(t)
		f.issues.EXPECT().
			List(gomock.Any(), "ws-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, opts data.IssuesListOptions) ([]*model.Issue, error) {
				require.NotNil(t, opts.Status)
				assert.Equal(t, model.IssueStatusOpen, *opts.Status)
				assert.Equal(t, 10, opts.Limit)
				assert.Equal(t, 20, opts.Offset)
				return []*model.Issue{{ID: "issue-1", WorkspaceID: "ws-1", Title: "a"}}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/api/issues?status=open&limit=10&offset=20", nil)
		rec := httptest.NewRecorder()
		f.mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var out struct {
			Issues []*model.Issue `json:"issues"`
			Limit  int            `json:"limit"`
			Offset int            `json:"offset"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Len(t, out.Issues, 1)
		assert.Equal(t, 10, out.Limit)
		assert.Equal(t, 20, out.Offset)
	})

	t.Run("invalid status is 400", func(t *testing.T) {
		f := newIssueHandlerFixture(t)

		req := httptest.NewRequest(http.MethodGet, "/api/issues?status=bogus", nil)
		rec := httptest.NewRecorder()
		f.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid_status")
	})
}

func TestIssueHandlers_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newIssueHandlerFixture(t)
		f.issues.EXPECT().
			GetByID(gomock.Any(), "ws-1", "issue-1").
			Return(&model.Issue{ID: "issue-1", WorkspaceID: "ws-1", Title: "a"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/issues/issue-1", nil)
		rec := httptest.NewRecorder()
		f.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing maps to 404", func(t *testing.T) {
		f := newIssueHandlerFixture(t)
		f.issues.EXPECT().
			GetByID(gomock.Any(), "ws-1", "nope").
			Return(nil, apperrors.NotFound("issue not found"))

		req := httptest.NewRequest(http.MethodGet, "/api/issues/nope", nil)
		rec := httptest.NewRecorder()
		f.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestIssueHandlers_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		f := newIssueHandlerFixture(t)
		f.issues.EXPECT().Delete(gomock.Any(), "ws-1", "issue-1").Return(true, nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/issues/issue-1", nil)
		rec := httptest.NewRecorder()
		f.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("absent row is 404", func(t *testing.T) {
		f := newIssueHandlerFixture(t)
		f.issues.EXPECT().Delete(gomock.Any(), "ws-1", "nope").Return(false, nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/issues/nope", nil)
		rec := httptest.NewRecorder()
		f.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestIssueHandlers_Publish(t *testing.T) {
	f := newIssueHandlerFixture(t)
	f.issues.EXPECT().
		SetPublishState(gomock.Any(), "ws-1", "issue-1", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, workspaceID, id string, slug, passcode *string, publishedAt *time.Time) (*model.Issue, error) {
			return &model.Issue{
				ID:           id,
				WorkspaceID:  workspaceID,
				Title:        "a",
				Status:       model.IssueStatusOpen,
				ChatSlug:     slug,
				ChatPasscode: passcode,
				PublishedAt:  publishedAt,
			}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/issues/issue-1/publish", nil)
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Issue    model.Issue `json:"issue"`
		Passcode string      `json:"passcode"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	// The model hides the passcode from all other responses, so the publish
	// payload is the one place staff can read it.
	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{6}$`), out.Passcode)
	require.NotNil(t, out.Issue.ChatSlug)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}$`), *out.Issue.ChatSlug)
	assert.Nil(t, out.Issue.ChatPasscode, "passcode must not appear on the issue body")
}

func TestIssueHandlers_Invite(t *testing.T) {
	f := newIssueHandlerFixture(t)
	issue := portalIssue()
	f.issues.EXPECT().GetByID(gomock.Any(), "ws-1", portalIssueID).Return(issue, nil)

	body := `{"email":"dana@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/issues/"+portalIssueID+"/invite", strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "https://workdesk.example/portal/issues/"+portalSlug, out["link"])
}
