package handler

import (
	"net/http"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/service"
)

// PayItemHandler serves /api/pay-items.
type PayItemHandler struct {
	svc service.PayItemService
}

func NewPayItemHandler(svc service.PayItemService) *PayItemHandler {
	return &PayItemHandler{svc: svc}
}

// List handles GET /api/pay-items?search=.
func (h *PayItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeServiceError(w, r, "pay_item_list", err)
		return
	}
	if items == nil {
		items = []*model.PayItem{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"payItems": items})
}

// Get handles GET /api/pay-items/{id}.
func (h *PayItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	p, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "pay_item_get", err, "pay_item_id", id)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Create handles POST /api/pay-items.
func (h *PayItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.PayItemInput
	if !decodeAndValidate(w, r, &in) {
		return
	}
	p, err := h.svc.Create(r.Context(), &in)
	if err != nil {
		writeServiceError(w, r, "pay_item_create", err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// Update handles PUT /api/pay-items/{id}.
func (h *PayItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in model.PayItemInput
	if !decodeAndValidate(w, r, &in) {
		return
	}
	p, err := h.svc.Update(r.Context(), id, &in)
	if err != nil {
		writeServiceError(w, r, "pay_item_update", err, "pay_item_id", id)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Delete handles DELETE /api/pay-items/{id}.
func (h *PayItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, "pay_item_delete", err, "pay_item_id", id)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
