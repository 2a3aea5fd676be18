// Package ui renders generated artifacts for the terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mtlprog/embedkit/internal/domain"
)

var (
	Accent = lipgloss.Color("42")
	Muted  = lipgloss.Color("245")
	Error  = lipgloss.Color("196")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent).
			Padding(0, 1)

	noteStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Title returns the heading shown above an artifact.
func Title(kind domain.ArtifactKind) string {
	switch kind {
	case domain.ArtifactHostScript:
		return "Host page script"
	case domain.ArtifactComponent:
		return "React component"
	case domain.ArtifactCmsShortcode:
		return "WordPress shortcode plugin"
	default:
		return string(kind)
	}
}

// RenderArtifact renders one artifact as a titled box.
func RenderArtifact(a domain.GeneratedArtifact) string {
	body := strings.TrimRight(a.SourceText, "\n")
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(Title(a.Kind)),
		boxStyle.Render(body),
	)
}

// RenderArtifacts renders artifacts separated by a blank line.
func RenderArtifacts(artifacts []domain.GeneratedArtifact) string {
	parts := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		parts = append(parts, RenderArtifact(a))
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// Note renders a status line.
func Note(format string, args ...interface{}) string {
	return noteStyle.Render(fmt.Sprintf(format, args...)) + "\n"
}

// ErrorLine renders an error line.
func ErrorLine(err error) string {
	return errorStyle.Render("error: "+err.Error()) + "\n"
}
