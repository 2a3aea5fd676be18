package dto

import (
	"time"

	"github.com/mtlprog/embedkit/internal/domain"
	"github.com/mtlprog/embedkit/internal/preview"
)

// ArtifactResponse is one generated artifact.
type ArtifactResponse struct {
	Kind       string `json:"kind"`
	SourceText string `json:"source_text"`
}

// ArtifactsResponse represents the response for artifact generation.
type ArtifactsResponse struct {
	Artifacts []ArtifactResponse `json:"artifacts"`
}

// NewArtifactsResponse converts generated artifacts.
func NewArtifactsResponse(artifacts []domain.GeneratedArtifact) ArtifactsResponse {
	resp := ArtifactsResponse{Artifacts: make([]ArtifactResponse, 0, len(artifacts))}
	for _, a := range artifacts {
		resp.Artifacts = append(resp.Artifacts, ArtifactResponse{
			Kind:       string(a.Kind),
			SourceText: a.SourceText,
		})
	}
	return resp
}

// SessionResponse represents a server-side widget session.
type SessionResponse struct {
	AgentID   string     `json:"agent_id"`
	SessionID string     `json:"session_id"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// NewSessionResponse converts a session record.
func NewSessionResponse(r *domain.SessionRecord) SessionResponse {
	return SessionResponse{
		AgentID:   r.AgentID,
		SessionID: r.SessionID,
		CreatedAt: r.CreatedAt,
		ExpiresAt: r.ExpiresAt,
	}
}

// PreviewResponse represents the response for POST /preview.
type PreviewResponse struct {
	EmbedURL     string             `json:"embed_url"`
	SessionID    string             `json:"session_id"`
	Frame        preview.Frame      `json:"frame"`
	TestWindow   preview.TestWindow `json:"test_window"`
	InitialState string             `json:"initial_state"`
}

// NewPreviewResponse converts a preview result.
func NewPreviewResponse(r *preview.Result) PreviewResponse {
	return PreviewResponse{
		EmbedURL:     r.EmbedURL,
		SessionID:    r.SessionID,
		Frame:        r.Frame,
		TestWindow:   r.TestWindow,
		InitialState: r.Snapshot.State,
	}
}
