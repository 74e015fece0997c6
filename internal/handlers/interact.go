package handlers

import (
	"encoding/json"
	"net/http"

	"bavatarinee.dev/internal/interact"
	"bavatarinee.dev/internal/models"
)

// InteractHandler answers card hover events with inline styles
type InteractHandler struct{}

// NewInteractHandler creates a new InteractHandler
func NewInteractHandler() *InteractHandler {
	return &InteractHandler{}
}

// Hover handles POST /api/interact/hover
func (h *InteractHandler) Hover(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Pointer models.Pointer `json:"pointer"`
		Rect    models.Rect    `json:"rect"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Rect.Width <= 0 || req.Rect.Height <= 0 {
		respondError(w, http.StatusBadRequest, "Card rect must have a positive size")
		return
	}

	respondJSON(w, http.StatusOK, interact.Tilt(req.Pointer, req.Rect))
}

// Leave handles POST /api/interact/leave
func (h *InteractHandler) Leave(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, interact.Leave())
}
