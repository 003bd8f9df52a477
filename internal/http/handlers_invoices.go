package httpx

import (
	"errors"
	"net/http"

	"github.com/stackfall/workdesk/internal/data"
	"github.com/stackfall/workdesk/internal/domain/model"
	"github.com/stackfall/workdesk/internal/service"
)

// InvoiceHandlers provides HTTP handlers for invoice operations.
type InvoiceHandlers struct {
	Svc *service.InvoiceService
}

// Create handles POST /api/invoices.
func (h *InvoiceHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	var req model.CreateInvoiceRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	invoice, err := h.Svc.Create(r.Context(), session.WorkspaceID, &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, invoice)
}

// List handles GET /api/invoices.
func (h *InvoiceHandlers) List(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	limit, offset := ParseLimitOffset(r, 50, maxListLimit)

	opts := data.InvoicesListOptions{Limit: limit, Offset: offset}
	if v := r.URL.Query().Get("customer_id"); v != "" {
		opts.CustomerID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := model.InvoiceStatus(v)
		if !status.Valid() {
			WriteError(w, ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: "invalid_status",
				Err:     errors.New("status must be one of: draft, sent, paid, void"),
			})
			return
		}
		opts.Status = &status
	}

	invoices, err := h.Svc.List(r.Context(), session.WorkspaceID, opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"invoices": invoices,
		"limit":    limit,
		"offset":   offset,
	})
}

// GetByID handles GET /api/invoices/{id}.
func (h *InvoiceHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	invoice, err := h.Svc.Get(r.Context(), session.WorkspaceID, r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, invoice)
}

// Update handles PUT /api/invoices/{id}.
func (h *InvoiceHandlers) Update(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	var req model.UpdateInvoiceRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	invoice, err := h.Svc.Update(r.Context(), session.WorkspaceID, r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, invoice)
}

// Delete handles DELETE /api/invoices/{id}.
func (h *InvoiceHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
			Err:     errors.New("invoice not found"),
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
