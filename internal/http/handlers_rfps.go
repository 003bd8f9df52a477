package httpx

import (
	"errors"
	"net/http"

	"github.com/stackfall/workdesk/internal/data"
	"github.com/stackfall/workdesk/internal/domain/model"
	"github.com/stackfall/workdesk/internal/service"
)

// RFPHandlers provides HTTP handlers for RFP operations.
type RFPHandlers struct {
	Svc     *service.RFPService
	Publish *service.PublishService
}

// Create handles POST /api/rfps.
func (h *RFPHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	var req model.CreateRFPRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	rfp, err := h.Svc.Create(r.Context(), session.WorkspaceID, &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, rfp)
}

// List handles GET /api/rfps.
func (h *RFPHandlers) List(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	limit, offset := ParseLimitOffset(r, 50, maxListLimit)

	opts := data.RFPsListOptions{Limit: limit, Offset: offset}
	if v := r.URL.Query().Get("status"); v != "" {
		status := model.RFPStatus(v)
		if !status.Valid() {
			WriteError(w, ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: "invalid_status",
				Err:     errors.New("status must be one of: draft, open, awarded, closed"),
			})
			return
		}
		opts.Status = &status
	}

	rfps, err := h.Svc.List(r.Context(), session.WorkspaceID, opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"rfps":   rfps,
		"limit":  limit,
		"offset": offset,
	})
}

// GetByID handles GET /api/rfps/{id}.
func (h *RFPHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	rfp, err := h.Svc.Get(r.Context(), session.WorkspaceID, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, rfp)
}

// Update handles PUT /api/rfps/{id}.
func (h *RFPHandlers) Update(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	var req model.UpdateRFPRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	rfp, err := h.Svc.Update(r.Context(), session.WorkspaceID, r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, rfp)
}

// Delete handles DELETE /api/rfps/{id}.
func (h *RFPHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
			Err:     errors.New("rfp not found"),
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PublishRFP handles POST /api/rfps/{id}/publish.
func (h *RFPHandlers) PublishRFP(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	rfp, err := h.Publish.PublishRFP(r.Context(), session.WorkspaceID, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, rfp)
}

// UnpublishRFP handles POST /api/rfps/{id}/unpublish.
func (h *RFPHandlers) UnpublishRFP(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	rfp, err := h.Publish.UnpublishRFP(r.Context(), session.WorkspaceID, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, rfp)
}

// Invite handles POST /api/rfps/{id}/invite. Vendors receive a single-use
// magic link rather than a shared passcode.
func (h *RFPHandlers) Invite(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	var req inviteRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	link, err := h.Publish.InviteVendor(r.Context(), session.WorkspaceID, r.PathValue("id"), req.Email)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"link": link})
}
