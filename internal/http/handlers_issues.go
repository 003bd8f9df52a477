// Package httpx provides the JSON API surface for the workdesk CRM.
package httpx

import (
	"errors"
	"net/http"

	"github.com/stackfall/workdesk/internal/data"
	"github.com/stackfall/workdesk/internal/domain/model"
	"github.com/stackfall/workdesk/internal/service"
)

const maxListLimit = 100

// IssueHandlers provides HTTP handlers for issue operations.
type IssueHandlers struct {
	Svc     *service.IssueService
	Publish *service.PublishService
}

// Create handles POST /api/issues.
func (h *IssueHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	var req model.CreateIssueRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	issue, err := h.Svc.Create(r.Context(), session.WorkspaceID, &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, issue)
}

// List handles GET /api/issues.
func (h *IssueHandlers) List(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	limit, offset := ParseLimitOffset(r, 50, maxListLimit)

	opts := data.IssuesListOptions{Limit: limit, Offset: offset}
	if v := r.URL.Query().Get("status"); v != "" {
		status := model.IssueStatus(v)
		if !status.Valid() {
			WriteError(w, ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: "invalid_status",
				Err:     errors.New("status must be one of: open, pending, resolved"),
			})
			return
		}
		opts.Status = &status
	}

	issues, err := h.Svc.List(r.Context(), session.WorkspaceID, opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"issues": issues,
		"limit":  limit,
		"offset": offset,
	})
}

// GetByID handles GET /api/issues/{id}.
func (h *IssueHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	issue, err := h.Svc.Get(r.Context(), session.WorkspaceID, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, issue)
}

// Update handles PUT /api/issues/{id}.
func (h *IssueHandlers) Update(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	var req model.UpdateIssueRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	issue, err := h.Svc.Update(r.Context(), session.WorkspaceID, r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, issue)
}

// Delete handles DELETE /api/issues/{id}.
func (h *IssueHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	ok, err := h.Svc.Delete(r.Context(), session.WorkspaceID, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "not_found",
			Err:     errors.New("issue not found"),
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PublishIssue handles POST /api/issues/{id}/publish. The response includes
// the freshly minted slug and, once, the passcode so staff can hand it out.
func (h *IssueHandlers) PublishIssue(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	issue, err := h.Publish.PublishIssue(r.Context(), session.WorkspaceID, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"issue":    issue,
		"passcode": issue.ChatPasscode,
	})
}

// UnpublishIssue handles POST /api/issues/{id}/unpublish.
func (h *IssueHandlers) UnpublishIssue(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	issue, err := h.Publish.UnpublishIssue(r.Context(), session.WorkspaceID, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, issue)
}

// inviteRequest is the body for invite endpoints.
type inviteRequest struct {
	Email string `json:"email"`
}

// Invite handles POST /api/issues/{id}/invite.
func (h *IssueHandlers) Invite(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	var req inviteRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	link, err := h.Publish.InviteCustomer(r.Context(), session.WorkspaceID, r.PathValue("id"), req.Email)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"link": link})
}
