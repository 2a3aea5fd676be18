package ui_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mtlprog/embedkit/internal/domain"
	"github.com/mtlprog/embedkit/internal/ui"
)

func TestRenderArtifacts(t *testing.T) {
	out := ui.RenderArtifacts([]domain.GeneratedArtifact{
		{Kind: domain.ArtifactHostScript, SourceText: "<div id=\"widget-a\"></div>\n"},
		{Kind: domain.ArtifactCmsShortcode, SourceText: "[widget agent=\"a\"]"},
	})

	assert.Contains(t, out, "Host page script")
	assert.Contains(t, out, "WordPress shortcode plugin")
	assert.Contains(t, out, `<div id="widget-a"></div>`)
	assert.Contains(t, out, `[widget agent="a"]`)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "React component", ui.Title(domain.ArtifactComponent))
	assert.Equal(t, "svelte", ui.Title("svelte"))
}

func TestErrorLine(t *testing.T) {
	assert.Contains(t, ui.ErrorLine(errors.New("no agent selected")), "error: no agent selected")
}
