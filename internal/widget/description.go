// Package widget turns an agent, a deployment target and a customization into
// a single declarative Description that every emitter serializes.
package widget

import (
	"fmt"
	"strings"

	"github.com/mtlprog/embedkit/internal/domain"
	"github.com/mtlprog/embedkit/internal/escape"
)

// DeploymentPlaceholder is replaced by the deployment target in host templates.
const DeploymentPlaceholder = "{deployment}"

// Embed query parameter names, in URL order.
const (
	ParamAgent       = "agent"
	ParamTheme       = "theme"
	ParamColor       = "color"
	ParamWelcome     = "welcome"
	ParamPlaceholder = "placeholder"
	ParamSessionID   = "sessionId"
)

// Param is one embed URL query parameter.
type Param struct {
	Name  string
	Value string
}

// Description is the target-independent form of a configured widget.
type Description struct {
	AgentID     string
	AgentName   string
	AvatarURL   string
	ContainerID string
	Host        string
	Title       string

	// Params excludes sessionId, which each target obtains on its own.
	Params []Param

	Theme         domain.Theme
	Position      domain.Position
	Width         string
	Height        string
	PrimaryColor  string
	BorderRadius  string
	Welcome       string
	Placeholder   string
	ShowHeader    bool
	ShowPoweredBy bool
	Minimizable   bool
	AutoOpen      bool

	Floating      bool
	Toggle        bool
	Offsets       []Offset
	ToggleOffsets []Offset
}

type options struct {
	hostTemplate string
}

// Option configures Describe.
type Option func(*options)

// WithHostTemplate sets the template the embed host is derived from.
func WithHostTemplate(tmpl string) Option {
	return func(o *options) {
		if tmpl != "" {
			o.hostTemplate = tmpl
		}
	}
}

// Host substitutes the deployment target into the host template.
func Host(tmpl, deployment string) string {
	return strings.ReplaceAll(tmpl, DeploymentPlaceholder, deployment)
}

// Describe validates the inputs once and builds the Description.
func Describe(agent *domain.Agent, deployment string, c domain.WidgetCustomization, opts ...Option) (Description, error) {
	o := options{hostTemplate: DeploymentPlaceholder}
	for _, opt := range opts {
		opt(&o)
	}

	if !agent.IsSelected() {
		return Description{}, domain.ErrNoAgentSelected
	}
	if err := c.Validate(); err != nil {
		return Description{}, err
	}

	welcome := c.WelcomeFor(agent.Name)
	floating := c.Position.IsFloating()

	d := Description{
		AgentID:     agent.ID,
		AgentName:   agent.Name,
		AvatarURL:   agent.AvatarURL(),
		ContainerID: ContainerID(agent.ID),
		Host:        Host(o.hostTemplate, deployment),
		Title:       fmt.Sprintf("%s - AI Assistant", agent.Name),
		Params: []Param{
			{Name: ParamAgent, Value: agent.ID},
			{Name: ParamTheme, Value: string(c.Theme)},
			{Name: ParamColor, Value: c.PrimaryColor},
			{Name: ParamWelcome, Value: welcome},
			{Name: ParamPlaceholder, Value: c.Placeholder},
		},
		Theme:         c.Theme,
		Position:      c.Position,
		Width:         c.Width,
		Height:        c.Height,
		PrimaryColor:  c.PrimaryColor,
		BorderRadius:  c.BorderRadius,
		Welcome:       welcome,
		Placeholder:   c.Placeholder,
		ShowHeader:    c.ShowHeader,
		ShowPoweredBy: c.ShowPoweredBy,
		Minimizable:   c.Minimizable,
		AutoOpen:      c.AutoOpen,
		Floating:      floating,
		Toggle:        c.Minimizable && floating,
		Offsets:       OffsetsFor(c.Position),
	}
	if d.Toggle {
		d.ToggleOffsets = ToggleOffsets(c.Position)
	}

	return d, nil
}

// ContainerID is the DOM id of the host element for an agent's widget.
func ContainerID(agentID string) string {
	return "widget-" + agentID
}

// Param returns the value of the named embed parameter.
func (d Description) Param(name string) string {
	for _, p := range d.Params {
		if p.Name == name {
			return p.Value
		}
	}
	return ""
}

// EmbedURL builds the iframe source with parameters in contract order.
func (d Description) EmbedURL(sessionID string) string {
	var b strings.Builder
	b.WriteString("https://")
	b.WriteString(d.Host)
	b.WriteString("/embed?")
	params := make([]Param, 0, len(d.Params)+1)
	params = append(params, d.Params...)
	params = append(params, Param{Name: ParamSessionID, Value: sessionID})
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escape.QueryParam(p.Name))
		b.WriteByte('=')
		b.WriteString(escape.QueryParam(p.Value))
	}
	return b.String()
}

// InitiallyMinimized reports the controller's starting state.
func (d Description) InitiallyMinimized() bool {
	return d.Toggle && !d.AutoOpen
}
