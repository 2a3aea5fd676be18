package handler

import (
	"net/http"

	"github.com/mtlprog/embedkit/internal/handler/dto"
)

// handleCreateSession returns the server-side session for an agent.
// @Summary Look up or create a widget session
// @Description Returns the stored session for the agent, creating one with the configured expiry when none is live.
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body dto.CreateSessionRequest true "Session request"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /sessions [post]
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	record, err := h.artifacts.IssueSession(r.Context(), req.AgentID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewSessionResponse(record))
}
