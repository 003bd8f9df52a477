package httpx

import (
	"errors"
	"net/http"

	"github.com/stackfall/workdesk/internal/domain/model"
	"github.com/stackfall/workdesk/internal/service"
)

// VendorHandlers provides HTTP handlers for vendor operations.
type VendorHandlers struct {
	Svc *service.VendorService
}

// Create handles POST /api/vendors.
func (h *VendorHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	var req model.CreateVendorRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	vendor, err := h.Svc.Create(r.Context(), session.WorkspaceID, &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, vendor)
}

// List handles GET /api/vendors.
func (h *VendorHandlers) List(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	limit, offset := ParseLimitOffset(r, 50, maxListLimit)

	vendors, err := h.Svc.List(r.Context(), session.WorkspaceID, limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"vendors": vendors,
		"limit":   limit,
		"offset":  offset,
	})
}

// GetByID handles GET /api/vendors/{id}.
func (h *VendorHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	vendor, err := h.Svc.Get(r.Context(), session.WorkspaceID, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, vendor)
}

// Update handles PUT /api/vendors/{id}.
func (h *VendorHandlers) Update(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	var req model.UpdateVendorRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	vendor, err := h.Svc.Update(r.Context(), session.WorkspaceID, r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, vendor)
}

// Delete handles DELETE /api/vendors/{id}.
func (h *VendorHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
			Err:     errors.New("vendor not found"),
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
