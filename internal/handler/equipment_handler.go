package handler

import (
	"net/http"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/service"
)

// EquipmentHandler serves /api/equipment.
type EquipmentHandler struct {
	svc service.EquipmentService
}

func NewEquipmentHandler(svc service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{svc: svc}
}

// List handles GET /api/equipment?search=.
func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeServiceError(w, r, "equipment_list", err)
		return
	}
	if list == nil {
		list = []*model.Equipment{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"equipment": list})
}

// Get handles GET /api/equipment/{id}.
func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	e, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "equipment_get", err, "equipment_id", id)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// Create handles POST /api/equipment.
func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.EquipmentInput
	if !decodeAndValidate(w, r, &in) {
		return
	}
	e, err := h.svc.Create(r.Context(), &in)
	if err != nil {
		writeServiceError(w, r, "equipment_create", err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

// Update handles PUT /api/equipment/{id}.
func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in model.EquipmentInput
	if !decodeAndValidate(w, r, &in) {
		return
	}
	e, err := h.svc.Update(r.Context(), id, &in)
	if err != nil {
		writeServiceError(w, r, "equipment_update", err, "equipment_id", id)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// Delete handles DELETE /api/equipment/{id}.
func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, "equipment_delete", err, "equipment_id", id)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
