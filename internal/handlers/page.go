package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"bavatarinee.dev/internal/config"
	"bavatarinee.dev/internal/field"
	"bavatarinee.dev/internal/models"
	"bavatarinee.dev/internal/reveal"
	"bavatarinee.dev/internal/services"
)

// defaultStats are shown when the site file lists none
var defaultStats = []config.Stat{{Label: "Projects", Value: "0"}}

// PageHandler renders the portfolio page and its fragments
type PageHandler struct {
	cfg            *config.Config
	projectService *services.ProjectService
	logger         *zap.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(cfg *config.Config, ps *services.ProjectService, logger *zap.Logger) *PageHandler {
	return &PageHandler{cfg: cfg, projectService: ps, logger: logger}
}

type pageData struct {
	Owner      string
	Tagline    string
	CursorEase float64
	Reveal     reveal.Settings
	Stats      []config.Stat
	Projects   models.ProjectList
}

// pageSettings is the client-side configuration served by /api/page
type pageSettings struct {
	Reveal     reveal.Settings `json:"reveal"`
	CursorEase float64         `json:"cursor_ease"`
	Stats      []config.Stat   `json:"stats"`
}

func (h *PageHandler) data() pageData {
	site := h.cfg.Site
	if site == nil {
		site = &config.SiteConfig{}
	}

	owner := site.Owner
	if owner == "" {
		owner = h.cfg.GitHub.Account
	}

	state := h.projectService.GetAll()
	return pageData{
		Owner:      owner,
		Tagline:    site.Tagline,
		CursorEase: h.cursorEase(),
		Reveal:     reveal.DefaultSettings(),
		Stats:      heroStats(site.Stats, state),
		Projects:   state,
	}
}

func (h *PageHandler) cursorEase() float64 {
	if h.cfg.Site != nil && h.cfg.Site.CursorEase > 0 {
		return h.cfg.Site.CursorEase
	}
	return field.DefaultCursorEase
}

// heroStats copies the configured counters. After a successful sync the
// first counter shows the number of synced projects.
func heroStats(configured []config.Stat, state models.ProjectList) []config.Stat {
	if len(configured) == 0 {
		configured = defaultStats
	}
	stats := make([]config.Stat, len(configured))
	copy(stats, configured)
	if state.Synced {
		stats[0].Value = strconv.Itoa(state.Count)
	}
	return stats
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html", h.data())
}

// ProjectsFragment handles GET /fragments/projects - the grid and status line
func (h *PageHandler) ProjectsFragment(w http.ResponseWriter, r *http.Request) {
	h.render(w, "grid", h.projectService.GetAll())
}

// GetSettings handles GET /api/page
func (h *PageHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	d := h.data()
	respondJSON(w, http.StatusOK, pageSettings{
		Reveal:     d.Reveal,
		CursorEase: d.CursorEase,
		Stats:      d.Stats,
	})
}

func (h *PageHandler) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("Error rendering template", zap.String("template", name), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
