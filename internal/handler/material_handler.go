package handler

import (
	"net/http"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/service"
)

// MaterialHandler serves /api/materials and /api/material-prices.
type MaterialHandler struct {
	svc service.MaterialService
}

func NewMaterialHandler(svc service.MaterialService) *MaterialHandler {
	return &MaterialHandler{svc: svc}
}

// List handles GET /api/materials?category=&search=.
func (h *MaterialHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.svc.List(r.Context(), model.MaterialFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
	})
	if err != nil {
		writeServiceError(w, r, "material_list", err)
		return
	}
	if list == nil {
		list = []*model.Material{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"materials": list})
}

// Get handles GET /api/materials/{id}.
func (h *MaterialHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	m, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "material_get", err, "material_id", id)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Create handles POST /api/materials.
func (h *MaterialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.MaterialInput
	if !decodeAndValidate(w, r, &in) {
		return
	}
	m, err := h.svc.Create(r.Context(), &in)
	if err != nil {
		writeServiceError(w, r, "material_create", err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

// Update handles PUT /api/materials/{id}.
func (h *MaterialHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in model.MaterialInput
	if !decodeAndValidate(w, r, &in) {
		return
	}
	m, err := h.svc.Update(r.Context(), id, &in)
	if err != nil {
		writeServiceError(w, r, "material_update", err, "material_id", id)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Delete handles DELETE /api/materials/{id}.
func (h *MaterialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, "material_delete", err, "material_id", id)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// ----------------------------------------------------------------------------
// Prices
// ----------------------------------------------------------------------------

// ListPrices handles GET /api/material-prices?materialCode=&location=.
func (h *MaterialHandler) ListPrices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	prices, err := h.svc.ListPrices(r.Context(), model.MaterialPriceFilter{
		MaterialCode: q.Get("materialCode"),
		Location:     q.Get("location"),
	})
	if err != nil {
		writeServiceError(w, r, "material_price_list", err)
		return
	}
	if prices == nil {
		prices = []*model.MaterialPrice{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"materialPrices": prices})
}

// GetPrice handles GET /api/material-prices/{id}.
func (h *MaterialHandler) GetPrice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	p, err := h.svc.GetPrice(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "material_price_get", err, "material_price_id", id)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// CreatePrice handles POST /api/material-prices.
func (h *MaterialHandler) CreatePrice(w http.ResponseWriter, r *http.Request) {
	var in model.MaterialPriceInput
	if !decodeAndValidate(w, r, &in) {
		return
	}
	p, err := h.svc.CreatePrice(r.Context(), &in)
	if err != nil {
		writeServiceError(w, r, "material_price_create", err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// UpdatePrice handles PUT /api/material-prices/{id}.
func (h *MaterialHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in model.MaterialPriceInput
	if !decodeAndValidate(w, r, &in) {
		return
	}
	p, err := h.svc.UpdatePrice(r.Context(), id, &in)
	if err != nil {
		writeServiceError(w, r, "material_price_update", err, "material_price_id", id)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeletePrice handles DELETE /api/material-prices/{id}.
func (h *MaterialHandler) DeletePrice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeletePrice(r.Context(), id); err != nil {
		writeServiceError(w, r, "material_price_delete", err, "material_price_id", id)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
