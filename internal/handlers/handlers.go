package handlers

import (
	"embed"
	"encoding/json"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"bavatarinee.dev/internal/config"
	"bavatarinee.dev/internal/middleware"
	"bavatarinee.dev/internal/services"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, ps *services.ProjectService, fieldService *services.FieldService, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	// Initialize handlers
	pageHandler := NewPageHandler(cfg, ps, logger)
	projectHandler := NewProjectHandler(ps)
	fieldHandler := NewFieldHandler(fieldService, logger)
	interactHandler := NewInteractHandler()

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Post("/projects/sync", projectHandler.Sync)

		// Particle field endpoints
		r.Get("/field/frame", fieldHandler.GetFrame)
		r.Get("/field/frame.png", fieldHandler.GetFramePNG)
		r.Post("/field/resize", fieldHandler.Resize)

		// Card hover endpoints
		r.Post("/interact/hover", interactHandler.Hover)
		r.Post("/interact/leave", interactHandler.Leave)

		r.Get("/page", pageHandler.GetSettings)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	r.Get("/fragments/projects", pageHandler.ProjectsFragment)

	// Static files
	static, _ := fs.Sub(staticFS, "static")
	fileServer := http.FileServer(http.FS(static))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	r.Get("/", pageHandler.Index)

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Error("Error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
