package handler

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/mtlprog/embedkit/internal/domain"
	"github.com/mtlprog/embedkit/internal/handler/dto"
	"github.com/mtlprog/embedkit/internal/service"
)

// handlePreview builds the preview for a configuration.
// @Summary Build a widget preview
// @Description Returns the embed URL the host script would build, the inline frame size and the test window parameters.
// @Tags preview
// @Accept json
// @Produce json
// @Param request body dto.PreviewRequest true "Preview request"
// @Success 200 {object} dto.PreviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /preview [post]
func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req dto.PreviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.artifacts.Preview(r.Context(), service.GenerateRequest{
		Agent:         req.Agent.ToDomain(),
		Deployment:    req.Deployment,
		Customization: req.Customization.Apply(domain.DefaultCustomization()),
	}, req.ViewportWidth)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewPreviewResponse(result))
}

// handlePreviewPage renders the HTML preview page.
func (h *Handler) handlePreviewPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	c, err := dto.CustomizationFromQuery(q)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	var agent *domain.Agent
	if id := q.Get("agent_id"); id != "" {
		agent = &domain.Agent{ID: id, Name: q.Get("agent_name")}
	}

	var buf bytes.Buffer
	err = h.artifacts.RenderPreviewPage(r.Context(), &buf, service.GenerateRequest{
		Agent:         agent,
		Deployment:    q.Get("deployment"),
		Customization: c.Apply(domain.DefaultCustomization()),
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write preview page", "error", err)
	}
}
