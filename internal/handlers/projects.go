package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bavatarinee.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.projectService.GetAll())
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// Sync handles POST /api/projects/sync. A failed sync is still a 200: the
// grid is in its degraded state and the body says so.
func (h *ProjectHandler) Sync(w http.ResponseWriter, r *http.Request) {
	state, _ := h.projectService.Sync(r.Context())
	respondJSON(w, http.StatusOK, state)
}
