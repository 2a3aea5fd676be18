package handler

import (
	"net/http"

	"github.com/mtlprog/embedkit/internal/domain"
	"github.com/mtlprog/embedkit/internal/handler/dto"
	"github.com/mtlprog/embedkit/internal/service"
)

// handleGenerateArtifacts generates embed artifacts for a configuration.
// @Summary Generate embed artifacts
// @Description Generates the host script, component and CMS artifacts for one configuration. Omitted customization fields use defaults; omitted targets mean all kinds.
// @Tags artifacts
// @Accept json
// @Produce json
// @Param request body dto.GenerateArtifactsRequest true "Generation request"
// @Success 200 {object} dto.ArtifactsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /artifacts [post]
func (h *Handler) handleGenerateArtifacts(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateArtifactsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	artifacts, err := h.artifacts.Generate(r.Context(), service.GenerateRequest{
		Agent:         req.Agent.ToDomain(),
		Deployment:    req.Deployment,
		Customization: req.Customization.Apply(domain.DefaultCustomization()),
		Targets:       req.Kinds(),
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewArtifactsResponse(artifacts))
}

// handleAgentArtifacts generates artifacts for a stored agent.
// @Summary Generate artifacts for a stored agent
// @Description Reads the agent from the agent provider and generates artifacts. Customization fields are read from the query string.
// @Tags artifacts
// @Produce json
// @Param id path string true "Agent ID"
// @Param deployment query string true "Deployment target"
// @Param kind query string false "Comma-separated artifact kinds"
// @Param theme query string false "light, dark or auto"
// @Param position query string false "inline, bottom-right, bottom-left, top-right or top-left"
// @Success 200 {object} dto.ArtifactsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /agents/{id}/artifacts [get]
func (h *Handler) handleAgentArtifacts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	c, err := dto.CustomizationFromQuery(q)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	artifacts, err := h.artifacts.GenerateForAgent(
		r.Context(),
		r.PathValue("id"),
		q.Get("deployment"),
		c.Apply(domain.DefaultCustomization()),
		dto.ParseKinds(q.Get("kind")),
	)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewArtifactsResponse(artifacts))
}
