package domain

import "fmt"

// Theme is the color scheme requested from the embed page.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// IsValid checks if the theme is one of the allowed values.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeAuto:
		return true
	default:
		return false
	}
}

// Position is where the widget is placed on the host page.
type Position string

const (
	PositionInline      Position = "inline"
	PositionBottomRight Position = "bottom-right"
	PositionBottomLeft  Position = "bottom-left"
	PositionTopRight    Position = "top-right"
	PositionTopLeft     Position = "top-left"
)

// IsValid checks if the position is one of the allowed values.
func (p Position) IsValid() bool {
	switch p {
	case PositionInline, PositionBottomRight, PositionBottomLeft,
		PositionTopRight, PositionTopLeft:
		return true
	default:
		return false
	}
}

// IsFloating returns true for every position except inline.
func (p Position) IsFloating() bool {
	return p != PositionInline
}

// WidgetCustomization is the single source of truth for all emitted artifacts.
// Dimension and color strings are passed through unvalidated.
type WidgetCustomization struct {
	Width          string   `json:"width"`
	Height         string   `json:"height"`
	Theme          Theme    `json:"theme"`
	Position       Position `json:"position"`
	PrimaryColor   string   `json:"primaryColor"`
	BorderRadius   string   `json:"borderRadius"`
	ShowHeader     bool     `json:"showHeader"`
	ShowPoweredBy  bool     `json:"showPoweredBy"`
	Minimizable    bool     `json:"minimizable"`
	AutoOpen       bool     `json:"autoOpen"`
	WelcomeMessage string   `json:"welcomeMessage"`
	Placeholder    string   `json:"placeholder"`
}

// DefaultCustomization returns the customization a new widget starts with.
func DefaultCustomization() WidgetCustomization {
	return WidgetCustomization{
		Width:         "400px",
		Height:        "600px",
		Theme:         ThemeLight,
		Position:      PositionBottomRight,
		PrimaryColor:  "#3B82F6",
		BorderRadius:  "12px",
		ShowHeader:    true,
		ShowPoweredBy: true,
		Minimizable:   true,
		AutoOpen:      false,
		Placeholder:   "Type your message...",
	}
}

// Validate checks the enumerated fields.
func (c WidgetCustomization) Validate() error {
	if !c.Theme.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, c.Theme)
	}
	if !c.Position.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPosition, c.Position)
	}
	return nil
}

// WelcomeFor returns the configured welcome message or the greeting derived
// from the agent name when none is configured.
func (c WidgetCustomization) WelcomeFor(agentName string) string {
	if c.WelcomeMessage != "" {
		return c.WelcomeMessage
	}
	return fmt.Sprintf("Hello! I'm %s. How can I help you today?", agentName)
}
