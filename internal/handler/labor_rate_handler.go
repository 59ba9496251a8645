package handler

import (
	"net/http"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/service"
)

// LaborRateHandler serves /api/labor-rates.
type LaborRateHandler struct {
	svc service.LaborRateService
}

func NewLaborRateHandler(svc service.LaborRateService) *LaborRateHandler {
	return &LaborRateHandler{svc: svc}
}

// List handles GET /api/labor-rates?location=.
func (h *LaborRateHandler) List(w http.ResponseWriter, r *http.Request) {
	rates, err := h.svc.List(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		writeServiceError(w, r, "labor_rate_list", err)
		return
	}
	if rates == nil {
		rates = []*model.LaborRate{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"laborRates": rates})
}

// Get handles GET /api/labor-rates/{id}.
func (h *LaborRateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	rate, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "labor_rate_get", err, "labor_rate_id", id)
		return
	}
	writeJSON(w, http.StatusOK, rate)
}

// Create handles POST /api/labor-rates.
func (h *LaborRateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.LaborRateInput
	if !decodeAndValidate(w, r, &in) {
		return
	}
	rate, err := h.svc.Create(r.Context(), &in)
	if err != nil {
		writeServiceError(w, r, "labor_rate_create", err)
		return
	}
	writeJSON(w, http.StatusCreated, rate)
}

// Upsert handles PUT /api/labor-rates: it replaces the rates of body.location.
func (h *LaborRateHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var in model.LaborRateInput
	if !decodeAndValidate(w, r, &in) {
		return
	}
	rate, err := h.svc.Upsert(r.Context(), &in)
	if err != nil {
		writeServiceError(w, r, "labor_rate_upsert", err, "location", in.Location)
		return
	}
	writeJSON(w, http.StatusOK, rate)
}

// Update handles PUT /api/labor-rates/{id}.
func (h *LaborRateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in model.LaborRateInput
	if !decodeAndValidate(w, r, &in) {
		return
	}
	rate, err := h.svc.Update(r.Context(), id, &in)
	if err != nil {
		writeServiceError(w, r, "labor_rate_update", err, "labor_rate_id", id)
		return
	}
	writeJSON(w, http.StatusOK, rate)
}

// Delete handles DELETE /api/labor-rates/{id}.
func (h *LaborRateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, "labor_rate_delete", err, "labor_rate_id", id)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
