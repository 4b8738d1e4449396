package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/krisrjensen/publication-style-config-server/internal/config"
	"github.com/krisrjensen/publication-style-config-server/internal/export"
	"github.com/krisrjensen/publication-style-config-server/internal/processor"
	"github.com/krisrjensen/publication-style-config-server/internal/styles"
)

// Server is the HTTP API for the publication style config service.
type Server struct {
	router      chi.Router
	processor   *processor.Processor
	styles      *styles.Store
	coordinator *export.Coordinator
	log         *slog.Logger
	cfg         config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(proc *processor.Processor, store *styles.Store, coord *export.Coordinator, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		processor:   proc,
		styles:      store,
		coordinator: coord,
		log:         log,
		cfg:         cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// API endpoints; auth is enforced only when a key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Get("/api/styles", s.handleListStyles)
		r.Get("/api/styles/{styleName}", s.handleGetStyle)
		r.Put("/api/styles/{styleName}", s.handleUpdateStyle)
		r.Delete("/api/styles/{styleName}", s.handleDeleteStyle)
		r.Post("/api/styles/{styleName}/derive", s.handleDeriveStyle)
		r.Post("/api/styles/validate", s.handleValidateStyle)

		r.Get("/api/templates", s.handleListTemplates)
		r.Get("/api/templates/{templateName}", s.handleGetTemplate)
		r.Post("/api/template/process", s.handleProcessContent)
		r.Post("/api/template/process/file", s.handleProcessFile)

		r.Post("/api/export/coordinate", s.handleCoordinateExport)
		r.Get("/api/export/history", s.handleExportHistory)
		r.Get("/api/export/services", s.handleExportServices)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"healthy","service":"publication-style-config-server"}`))
}
