package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"keyword-dashboard/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a KeywordUseCase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc    port.KeywordUseCase
	logger *slog.Logger
	router chi.Router
}

// Option customises the /api/v1 router.
type Option func(chi.Router)

// WithRequestTimeout bounds the context of every API request.
func WithRequestTimeout(d time.Duration) Option {
	return func(r chi.Router) {
		if d > 0 {
			r.Use(middleware.Timeout(d))
		}
	}
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.KeywordUseCase, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(h.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(Metrics)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		for _, opt := range opts {
			opt(r)
		}

		r.Get("/keywords", h.handleListKeywords)
		r.Post("/keywords", h.handleCreateKeyword)
		r.Post("/keywords/status", h.handleSetStatus)
		r.Get("/keywords/browse", h.handleBrowse)
		r.Get("/keywords/summary", h.handleSummary)
		r.Get("/keywords/{id}/changelog", h.handleChangeLog)

		r.Get("/campaigns", h.handleListDirectory)
		r.Get("/campaigns/adgroups", h.handleAdGroups)

		r.Get("/status", h.handleStoreStatus)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
