package handler

import (
	"net/http"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/service"
)

// DUPATemplateHandler serves /api/dupa-templates.
type DUPATemplateHandler struct {
	svc service.DUPATemplateService
}

func NewDUPATemplateHandler(svc service.DUPATemplateService) *DUPATemplateHandler {
	return &DUPATemplateHandler{svc: svc}
}

// List handles GET /api/dupa-templates?search=&active=true.
func (h *DUPATemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.svc.List(r.Context(), model.DUPATemplateFilter{
		Search:     q.Get("search"),
		ActiveOnly: q.Get("active") == "true",
	})
	if err != nil {
		writeServiceError(w, r, "dupa_template_list", err)
		return
	}
	if list == nil {
		list = []*model.DUPATemplate{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"templates": list})
}

// Get handles GET /api/dupa-templates/{id}.
func (h *DUPATemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	t, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "dupa_template_get", err, "template_id", id)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Create handles POST /api/dupa-templates.
func (h *DUPATemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.DUPATemplateInput
	if !decodeAndValidate(w, r, &in) {
		return
	}
	t, err := h.svc.Create(r.Context(), &in)
	if err != nil {
		writeServiceError(w, r, "dupa_template_create", err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

// Update handles PUT /api/dupa-templates/{id}.
func (h *DUPATemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in model.DUPATemplateInput
	if !decodeAndValidate(w, r, &in) {
		return
	}
	t, err := h.svc.Update(r.Context(), id, &in)
	if err != nil {
		writeServiceError(w, r, "dupa_template_update", err, "template_id", id)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Delete handles DELETE /api/dupa-templates/{id}.
func (h *DUPATemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, "dupa_template_delete", err, "template_id", id)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Instantiate handles POST /api/dupa-templates/{id}/instantiate.
// It prices the template at body.location without persisting anything.
func (h *DUPATemplateHandler) Instantiate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in model.InstantiateInput
	if !decodeAndValidate(w, r, &in) {
		return
	}
	data, err := h.svc.Instantiate(r.Context(), id, &in)
	if err != nil {
		writeServiceError(w, r, "dupa_template_instantiate", err, "template_id", id, "location", in.Location)
		return
	}
	writeJSON(w, http.StatusOK, data)
}
