package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mtlprog/embedkit/internal/domain"
	"github.com/mtlprog/embedkit/internal/emitter"
	"github.com/mtlprog/embedkit/internal/preview"
	"github.com/mtlprog/embedkit/internal/session"
)

// AgentProvider supplies agent records read-only.
type AgentProvider interface {
	GetByID(ctx context.Context, agentID string) (*domain.Agent, error)
}

// GenerateRequest is one configuration to generate artifacts for.
type GenerateRequest struct {
	Agent         *domain.Agent
	Deployment    string
	Customization domain.WidgetCustomization
	Targets       []domain.ArtifactKind
}

// ArtifactService coordinates generation, preview and server-side sessions.
type ArtifactService struct {
	emitter  *emitter.Emitter
	agents   AgentProvider
	previews *preview.Harness
	sessions *session.Manager
}

// NewArtifactService creates a new ArtifactService. agents may be nil when
// no agent provider is configured.
func NewArtifactService(
	em *emitter.Emitter,
	agents AgentProvider,
	previews *preview.Harness,
	sessions *session.Manager,
) *ArtifactService {
	return &ArtifactService{
		emitter:  em,
		agents:   agents,
		previews: previews,
		sessions: sessions,
	}
}

// HasAgentProvider reports whether agents can be looked up by id.
func (s *ArtifactService) HasAgentProvider() bool {
	return s.agents != nil
}

// Generate returns the requested artifacts in request order. On error every
// requested artifact is empty.
func (s *ArtifactService) Generate(ctx context.Context, req GenerateRequest) ([]domain.GeneratedArtifact, error) {
	targets, err := ValidateTargets(req.Targets)
	if err != nil {
		return nil, err
	}

	d, err := s.emitter.Describe(req.Agent, req.Deployment, req.Customization)
	if err != nil {
		return empty(targets), err
	}

	artifacts := make([]domain.GeneratedArtifact, 0, len(targets))
	for _, kind := range targets {
		if err := ctx.Err(); err != nil {
			return empty(targets), err
		}
		artifact, err := s.emitter.EmitDescription(kind, d)
		if err != nil {
			return empty(targets), err
		}
		artifacts = append(artifacts, artifact)
	}

	slog.Debug("artifacts generated", "agent_id", d.AgentID, "count", len(artifacts))

	return artifacts, nil
}

// GenerateForAgent looks the agent up by id, then generates.
func (s *ArtifactService) GenerateForAgent(
	ctx context.Context,
	agentID string,
	deployment string,
	c domain.WidgetCustomization,
	targets []domain.ArtifactKind,
) ([]domain.GeneratedArtifact, error) {
	if s.agents == nil {
		return nil, domain.ErrAgentNotFound
	}

	agent, err := s.agents.GetByID(ctx, agentID)
	if err != nil {
		return nil, err
	}

	return s.Generate(ctx, GenerateRequest{
		Agent:         agent,
		Deployment:    deployment,
		Customization: c,
		Targets:       targets,
	})
}

// Preview builds the preview for a configuration at a viewport width.
func (s *ArtifactService) Preview(ctx context.Context, req GenerateRequest, viewportWidth int) (*preview.Result, error) {
	d, err := s.emitter.Describe(req.Agent, req.Deployment, req.Customization)
	if err != nil {
		return nil, err
	}

	return s.previews.Build(ctx, d, viewportWidth)
}

// RenderPreviewPage writes the preview page: the inline frame, the test
// window control and the host script artifact shown verbatim.
func (s *ArtifactService) RenderPreviewPage(ctx context.Context, w io.Writer, req GenerateRequest) error {
	d, err := s.emitter.Describe(req.Agent, req.Deployment, req.Customization)
	if err != nil {
		return err
	}

	result, err := s.previews.Build(ctx, d, 0)
	if err != nil {
		return err
	}

	script, err := s.emitter.EmitDescription(domain.ArtifactHostScript, d)
	if err != nil {
		return fmt.Errorf("emit host script: %w", err)
	}

	return preview.RenderPage(w, preview.NewPage(d, result, script.SourceText))
}

// IssueSession returns the server-side session for an agent, creating it when needed.
func (s *ArtifactService) IssueSession(ctx context.Context, agentID string) (*domain.SessionRecord, error) {
	return s.sessions.LookupOrCreate(ctx, agentID)
}

func empty(kinds []domain.ArtifactKind) []domain.GeneratedArtifact {
	out := make([]domain.GeneratedArtifact, len(kinds))
	for i, kind := range kinds {
		out[i] = domain.GeneratedArtifact{Kind: kind}
	}
	return out
}
