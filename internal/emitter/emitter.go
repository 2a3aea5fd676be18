// Package emitter serializes a widget Description into deployable source text
// for each embed target. All targets share one templating function; what
// differs per target is the template and the escaping strategy.
package emitter

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"log/slog"
	"text/template"
	"time"

	"github.com/mtlprog/embedkit/internal/domain"
	"github.com/mtlprog/embedkit/internal/escape"
	"github.com/mtlprog/embedkit/internal/session"
	"github.com/mtlprog/embedkit/internal/widget"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// strategy binds an artifact kind to its template and literal escaping.
type strategy struct {
	kind    domain.ArtifactKind
	file    string
	literal func(string) string
	tmpl    *template.Template
}

var strategies = map[domain.ArtifactKind]*strategy{
	domain.ArtifactHostScript:   {kind: domain.ArtifactHostScript, file: "host_script.html.tmpl", literal: escape.ForScriptLiteral},
	domain.ArtifactComponent:    {kind: domain.ArtifactComponent, file: "component.jsx.tmpl", literal: escape.ForScriptLiteral},
	domain.ArtifactCmsShortcode: {kind: domain.ArtifactCmsShortcode, file: "cms_plugin.php.tmpl", literal: escape.ForServerLiteral},
}

func init() {
	for _, s := range strategies {
		funcs := template.FuncMap{
			"lit":     s.literal,
			"attr":    html.EscapeString,
			"sc":      escape.ForShortcodeAttr,
			"comment": phpComment,
		}
		s.tmpl = template.Must(template.New(s.file).Funcs(funcs).ParseFS(templatesFS, "templates/"+s.file))
	}
}

// Config holds generation settings shared by every target.
type Config struct {
	HostTemplate     string
	SessionNamespace string
	SessionTTL       time.Duration
}

// Emitter generates artifacts from an agent, a deployment target and a customization.
type Emitter struct {
	cfg Config
}

// New creates an Emitter; zero fields in cfg fall back to defaults.
func New(cfg Config) *Emitter {
	if cfg.HostTemplate == "" {
		cfg.HostTemplate = widget.DeploymentPlaceholder
	}
	if cfg.SessionNamespace == "" {
		cfg.SessionNamespace = session.DefaultNamespace
	}
	if cfg.SessionTTL < time.Second {
		cfg.SessionTTL = session.ServerTTL
	}
	return &Emitter{cfg: cfg}
}

// Describe builds the Description the emitter serializes.
func (e *Emitter) Describe(agent *domain.Agent, deployment string, c domain.WidgetCustomization) (widget.Description, error) {
	return widget.Describe(agent, deployment, c, widget.WithHostTemplate(e.cfg.HostTemplate))
}

// Emit generates one artifact. On any error the artifact is empty.
func (e *Emitter) Emit(
	kind domain.ArtifactKind,
	agent *domain.Agent,
	deployment string,
	c domain.WidgetCustomization,
) (domain.GeneratedArtifact, error) {
	empty := domain.GeneratedArtifact{Kind: kind}

	if _, ok := strategies[kind]; !ok {
		return empty, fmt.Errorf("%w: %q", domain.ErrUnknownArtifactKind, kind)
	}

	d, err := e.Describe(agent, deployment, c)
	if err != nil {
		return empty, err
	}

	return e.EmitDescription(kind, d)
}

// EmitAll generates every artifact kind, or none if any fails.
func (e *Emitter) EmitAll(
	agent *domain.Agent,
	deployment string,
	c domain.WidgetCustomization,
) ([]domain.GeneratedArtifact, error) {
	d, err := e.Describe(agent, deployment, c)
	if err != nil {
		return emptyArtifacts(domain.ArtifactKinds), err
	}

	artifacts := make([]domain.GeneratedArtifact, 0, len(domain.ArtifactKinds))
	for _, kind := range domain.ArtifactKinds {
		artifact, err := e.EmitDescription(kind, d)
		if err != nil {
			return emptyArtifacts(domain.ArtifactKinds), err
		}
		artifacts = append(artifacts, artifact)
	}
	return artifacts, nil
}

// EmitDescription serializes an already validated Description.
func (e *Emitter) EmitDescription(kind domain.ArtifactKind, d widget.Description) (domain.GeneratedArtifact, error) {
	s, ok := strategies[kind]
	if !ok {
		return domain.GeneratedArtifact{Kind: kind}, fmt.Errorf("%w: %q", domain.ErrUnknownArtifactKind, kind)
	}

	text, err := render(s, e.newView(d))
	if err != nil {
		slog.Error("artifact render failed", "kind", kind, "agent_id", d.AgentID, "error", err)
		return domain.GeneratedArtifact{Kind: kind}, err
	}

	return domain.GeneratedArtifact{Kind: kind, SourceText: text}, nil
}

// render is the single templating function every target goes through.
// Output is buffered so a failed render never yields partial text.
func render(s *strategy, v view) (string, error) {
	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("render %s: %w", s.kind, err)
	}
	return buf.String(), nil
}

func emptyArtifacts(kinds []domain.ArtifactKind) []domain.GeneratedArtifact {
	out := make([]domain.GeneratedArtifact, len(kinds))
	for i, kind := range kinds {
		out[i] = domain.GeneratedArtifact{Kind: kind}
	}
	return out
}
