package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	_ "github.com/mtlprog/embedkit/docs" // Import generated docs
	"github.com/mtlprog/embedkit/internal/handler/dto"
	"github.com/mtlprog/embedkit/internal/service"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Pinger reports whether a backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	artifacts *service.ArtifactService
	db        Pinger
}

// New creates a new Handler. db may be nil when no database is configured.
func New(artifacts *service.ArtifactService, db Pinger) *Handler {
	return &Handler{
		artifacts: artifacts,
		db:        db,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	// Swagger UI
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler())

	// Preview page
	mux.HandleFunc("GET /preview", h.handlePreviewPage)

	// API v1 routes
	mux.HandleFunc("POST /api/v1/artifacts", h.handleGenerateArtifacts)
	mux.HandleFunc("POST /api/v1/preview", h.handlePreview)
	mux.HandleFunc("POST /api/v1/sessions", h.handleCreateSession)
	if h.artifacts.HasAgentProvider() {
		mux.HandleFunc("GET /api/v1/agents/{id}/artifacts", h.handleAgentArtifacts)
	}
}

// handleHealthz returns 200 OK if the database, when configured, is reachable.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			slog.Error("database health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// respondDomainError maps err and writes it.
func respondDomainError(w http.ResponseWriter, err error) {
	status, code, message := dto.MapDomainError(err)
	respondError(w, status, code, message)
}

// decodeJSON parses the request body into v.
// Returns false if invalid (error already sent to client).
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return false
	}
	return true
}
