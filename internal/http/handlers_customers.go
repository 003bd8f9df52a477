package httpx

import (
	"errors"
	"net/http"

	"github.com/stackfall/workdesk/internal/domain/model"
	"github.com/stackfall/workdesk/internal/service"
)

// CustomerHandlers provides HTTP handlers for customer operations.
type CustomerHandlers struct {
	Svc *service.CustomerService
}

// Create handles POST /api/customers.
func (h *CustomerHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	var req model.CreateCustomerRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	customer, err := h.Svc.Create(r.Context(), session.WorkspaceID, &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, customer)
}

// List handles GET /api/customers.
func (h *CustomerHandlers) List(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	limit, offset := ParseLimitOffset(r, 50, maxListLimit)

	customers, err := h.Svc.List(r.Context(), session.WorkspaceID, limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"customers": customers,
		"limit":     limit,
		"offset":    offset,
	})
}

// GetByID handles GET /api/customers/{id}.
func (h *CustomerHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	customer, err := h.Svc.Get(r.Context(), session.WorkspaceID, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, customer)
}

// Update handles PUT /api/customers/{id}.
func (h *CustomerHandlers) Update(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	var req model.UpdateCustomerRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	customer, err := h.Svc.Update(r.Context(), session.WorkspaceID, r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, customer)
}

// Delete handles DELETE /api/customers/{id}.
func (h *CustomerHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
			Err:     errors.New("customer not found"),
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
