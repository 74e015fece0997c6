package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"bavatarinee.dev/internal/services"
)

const (
	minFieldSize = 10
	maxFieldSize = 4096
)

// FieldHandler handles particle field endpoints
type FieldHandler struct {
	fieldService *services.FieldService
	logger       *zap.Logger
}

// NewFieldHandler creates a new FieldHandler
func NewFieldHandler(fs *services.FieldService, logger *zap.Logger) *FieldHandler {
	return &FieldHandler{fieldService: fs, logger: logger}
}

// GetFrame handles GET /api/field/frame - returns the latest display list
func (h *FieldHandler) GetFrame(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, http.StatusOK, h.fieldService.Scene())
}

// GetFramePNG handles GET /api/field/frame.png - returns the latest frame as an image
func (h *FieldHandler) GetFramePNG(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Frame", strconv.FormatUint(h.fieldService.Frames(), 10))
	if err := h.fieldService.WritePNG(w); err != nil {
		h.logger.Error("Error writing frame", zap.Error(err))
	}
}

// Resize handles POST /api/field/resize
func (h *FieldHandler) Resize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Clamp to reasonable values
	req.Width = clamp(req.Width, minFieldSize, maxFieldSize)
	req.Height = clamp(req.Height, minFieldSize, maxFieldSize)

	respondJSON(w, http.StatusOK, h.fieldService.Resize(req.Width, req.Height))
}

// clamp limits a value to a range
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
