// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the app service.
type Dependencies interface {
	// ListActivities returns the full catalog in insertion order.
	ListActivities(ctx context.Context) (model.Catalog, error)

	// Signup registers email for the named activity.
	Signup(ctx context.Context, activity, email string) (model.Activity, error)

	// Unregister removes email from the named activity's roster.
	Unregister(ctx context.Context, activity, email string) (model.Activity, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	activitiesHandler *ActivitiesHandler
	rosterHandler     *RosterHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		activitiesHandler: NewActivitiesHandler(deps),
		rosterHandler:     NewRosterHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/activities", MetricsMiddleware(s.activitiesHandler.HandleListActivities, "activities"))
	mux.HandleFunc("/activities/", MetricsMiddleware(s.rosterHandler.HandleRoster, "roster"))
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
}

// messageResponse is the success body for roster mutations.
type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse is the error body; detail carries the human-readable cause.
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	detail := http.StatusText(status)
	if err != nil {
		detail = err.Error()
	}
	writeJSON(w, status, errorResponse{Detail: detail})
}

// statusFromErr maps registry errors onto HTTP statuses.
func statusFromErr(err error) int {
	switch {
	case errors.Is(err, repository.ErrActivityNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrAlreadySignedUp),
		errors.Is(err, repository.ErrNotSignedUp),
		errors.Is(err, repository.ErrActivityFull),
		errors.Is(err, ErrMissingEmail):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
