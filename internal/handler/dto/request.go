package dto

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mtlprog/embedkit/internal/domain"
)

// AgentInput is an agent record supplied by the dashboard.
type AgentInput struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Avatar      *string `json:"avatar,omitempty"`
}

// ToDomain converts the input; a nil input means no agent is selected.
func (a *AgentInput) ToDomain() *domain.Agent {
	if a == nil {
		return nil
	}
	return &domain.Agent{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Appearance:  domain.Appearance{Avatar: a.Avatar},
	}
}

// CustomizationInput carries customization fields; omitted fields keep their defaults.
type CustomizationInput struct {
	Width          *string `json:"width,omitempty"`
	Height         *string `json:"height,omitempty"`
	Theme          *string `json:"theme,omitempty"`
	Position       *string `json:"position,omitempty"`
	PrimaryColor   *string `json:"primaryColor,omitempty"`
	BorderRadius   *string `json:"borderRadius,omitempty"`
	ShowHeader     *bool   `json:"showHeader,omitempty"`
	ShowPoweredBy  *bool   `json:"showPoweredBy,omitempty"`
	Minimizable    *bool   `json:"minimizable,omitempty"`
	AutoOpen       *bool   `json:"autoOpen,omitempty"`
	WelcomeMessage *string `json:"welcomeMessage,omitempty"`
	Placeholder    *string `json:"placeholder,omitempty"`
}

// Apply overlays the set fields onto base.
func (c *CustomizationInput) Apply(base domain.WidgetCustomization) domain.WidgetCustomization {
	if c == nil {
		return base
	}
	setString(&base.Width, c.Width)
	setString(&base.Height, c.Height)
	if c.Theme != nil {
		base.Theme = domain.Theme(*c.Theme)
	}
	if c.Position != nil {
		base.Position = domain.Position(*c.Position)
	}
	setString(&base.PrimaryColor, c.PrimaryColor)
	setString(&base.BorderRadius, c.BorderRadius)
	setBool(&base.ShowHeader, c.ShowHeader)
	setBool(&base.ShowPoweredBy, c.ShowPoweredBy)
	setBool(&base.Minimizable, c.Minimizable)
	setBool(&base.AutoOpen, c.AutoOpen)
	setString(&base.WelcomeMessage, c.WelcomeMessage)
	setString(&base.Placeholder, c.Placeholder)
	return base
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// CustomizationFromQuery reads customization fields from query parameters
// named like the JSON fields.
func CustomizationFromQuery(q url.Values) (*CustomizationInput, error) {
	c := &CustomizationInput{
		Width:          queryString(q, "width"),
		Height:         queryString(q, "height"),
		Theme:          queryString(q, "theme"),
		Position:       queryString(q, "position"),
		PrimaryColor:   queryString(q, "primaryColor"),
		BorderRadius:   queryString(q, "borderRadius"),
		WelcomeMessage: queryString(q, "welcomeMessage"),
		Placeholder:    queryString(q, "placeholder"),
	}

	bools := []struct {
		name string
		dst  **bool
	}{
		{"showHeader", &c.ShowHeader},
		{"showPoweredBy", &c.ShowPoweredBy},
		{"minimizable", &c.Minimizable},
		{"autoOpen", &c.AutoOpen},
	}
	for _, b := range bools {
		v, err := queryBool(q, b.name)
		if err != nil {
			return nil, err
		}
		*b.dst = v
	}

	return c, nil
}

func queryString(q url.Values, name string) *string {
	if !q.Has(name) {
		return nil
	}
	v := q.Get(name)
	return &v
}

func queryBool(q url.Values, name string) (*bool, error) {
	if !q.Has(name) {
		return nil, nil
	}
	v, err := strconv.ParseBool(q.Get(name))
	if err != nil {
		return nil, fmt.Errorf("%s must be a boolean", name)
	}
	return &v, nil
}

// ParseKinds splits a comma-separated kind list such as "host-script,component".
func ParseKinds(s string) []domain.ArtifactKind {
	var kinds []domain.ArtifactKind
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			kinds = append(kinds, domain.ArtifactKind(part))
		}
	}
	return kinds
}

// GenerateArtifactsRequest represents the request body for POST /artifacts.
type GenerateArtifactsRequest struct {
	Agent         *AgentInput         `json:"agent"`
	Deployment    string              `json:"deployment"`
	Customization *CustomizationInput `json:"customization,omitempty"`
	Targets       []string            `json:"targets,omitempty"`
}

// Kinds converts the requested targets.
func (r GenerateArtifactsRequest) Kinds() []domain.ArtifactKind {
	kinds := make([]domain.ArtifactKind, 0, len(r.Targets))
	for _, t := range r.Targets {
		kinds = append(kinds, domain.ArtifactKind(t))
	}
	return kinds
}

// PreviewRequest represents the request body for POST /preview.
type PreviewRequest struct {
	Agent         *AgentInput         `json:"agent"`
	Deployment    string              `json:"deployment"`
	Customization *CustomizationInput `json:"customization,omitempty"`
	ViewportWidth int                 `json:"viewport_width,omitempty"`
}

// CreateSessionRequest represents the request body for POST /sessions.
type CreateSessionRequest struct {
	AgentID string `json:"agent_id"`
}
