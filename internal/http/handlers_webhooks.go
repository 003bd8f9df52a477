package httpx

import (
	"errors"
	"net/http"

	"github.com/stackfall/workdesk/internal/domain/model"
	"github.com/stackfall/workdesk/internal/service"
)

// WebhookHandlers provides HTTP handlers for webhook sink management.
type WebhookHandlers struct {
	Svc *service.WebhookService
}

// Create handles POST /api/webhooks.
func (h *WebhookHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	var req model.CreateWebhookSinkRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	sink, err := h.Svc.Create(r.Context(), session.WorkspaceID, &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, sink)
}

// List handles GET /api/webhooks.
func (h *WebhookHandlers) List(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	sinks, err := h.Svc.List(r.Context(), session.WorkspaceID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"webhooks": sinks})
}

// GetByID handles GET /api/webhooks/{id}.
func (h *WebhookHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	sink, err := h.Svc.Get(r.Context(), session.WorkspaceID, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, sink)
}

// setEnabledRequest is the body for PATCH /api/webhooks/{id}.
type setEnabledRequest struct {
	Enabled *bool `json:"enabled"`
}

// SetEnabled handles PATCH /api/webhooks/{id}.
func (h *WebhookHandlers) SetEnabled(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	var req setEnabledRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Enabled == nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "validation_error",
			Err:     errors.New("enabled is required"),
		})
		return
	}

	sink, err := h.Svc.SetEnabled(r.Context(), session.WorkspaceID, r.PathValue("id"), *req.Enabled)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, sink)
}

// Delete handles DELETE /api/webhooks/{id}.
func (h *WebhookHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
			Err:     errors.New("webhook sink not found"),
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
