package handler

import (
	"net/http"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/service"
)

// ProjectHandler serves /api/projects and the BOQ of each project.
type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(svc service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// List handles GET /api/projects, newest first.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, "project_list", err)
		return
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": projects})
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	p, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "project_get", err, "project_id", id)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.ProjectInput
	if !decodeAndValidate(w, r, &in) {
		return
	}
	p, err := h.svc.Create(r.Context(), &in)
	if err != nil {
		writeServiceError(w, r, "project_create", err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// Update handles PUT /api/projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in model.ProjectInput
	if !decodeAndValidate(w, r, &in) {
		return
	}
	p, err := h.svc.Update(r.Context(), id, &in)
	if err != nil {
		writeServiceError(w, r, "project_update", err, "project_id", id)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Delete handles DELETE /api/projects/{id}. The BOQ goes with it.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, "project_delete", err, "project_id", id)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// ----------------------------------------------------------------------------
// Bill of quantities
// ----------------------------------------------------------------------------

// ListBOQ handles GET /api/projects/{id}/boq.
func (h *ProjectHandler) ListBOQ(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	entries, err := h.svc.ListBOQ(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "boq_list", err, "project_id", id)
		return
	}
	if entries == nil {
		entries = []*model.BOQEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

// AddBOQEntry handles POST /api/projects/{id}/boq.
// The template is instantiated at the project location unless body.location overrides it.
func (h *ProjectHandler) AddBOQEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in model.BOQEntryInput
	if !decodeAndValidate(w, r, &in) {
		return
	}
	entry, err := h.svc.AddBOQEntry(r.Context(), id, &in)
	if err != nil {
		writeServiceError(w, r, "boq_add", err, "project_id", id, "template_id", in.TemplateID)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// DeleteBOQEntry handles DELETE /api/projects/{id}/boq/{entryId}.
func (h *ProjectHandler) DeleteBOQEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	entryID, ok := pathID(w, r, "entryId")
	if !ok {
		return
	}
	if err := h.svc.DeleteBOQEntry(r.Context(), id, entryID); err != nil {
		writeServiceError(w, r, "boq_delete", err, "project_id", id, "entry_id", entryID)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Summary handles GET /api/projects/{id}/summary.
func (h *ProjectHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	s, err := h.svc.Summary(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "project_summary", err, "project_id", id)
		return
	}
	writeJSON(w, http.StatusOK, s)
}
