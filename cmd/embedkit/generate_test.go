package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/mtlprog/embedkit/internal/domain"
)

func TestTargetKinds(t *testing.T) {
	kinds, err := targetKinds("all")
	require.NoError(t, err)
	assert.Nil(t, kinds)

	kinds, err = targetKinds("cms")
	require.NoError(t, err)
	assert.Equal(t, []domain.ArtifactKind{domain.ArtifactCmsShortcode}, kinds)

	kinds, err = targetKinds("host-script")
	require.NoError(t, err)
	assert.Equal(t, []domain.ArtifactKind{domain.ArtifactHostScript}, kinds)

	_, err = targetKinds("svelte")
	assert.ErrorIs(t, err, domain.ErrUnknownArtifactKind)
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := &cli.App{
		Name:      "embedkit",
		Writer:    &out,
		ErrWriter: &errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "error"},
			&cli.StringFlag{Name: "log-format", Value: "json"},
		},
		Commands: []*cli.Command{{
			Name: "generate",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "input"},
				&cli.StringFlag{Name: "agent-id"},
				&cli.StringFlag{Name: "agent-name"},
				&cli.StringFlag{Name: "deployment"},
				&cli.StringFlag{Name: "target", Value: "all"},
				&cli.StringFlag{Name: "embed-host", Value: "{deployment}"},
				&cli.BoolFlag{Name: "copy"},
			},
			Action: runGenerate,
		}},
	}
	err := app.RunContext(context.Background(), append([]string{"embedkit", "generate"}, args...))
	return out.String(), err
}

func TestRunGenerate_Flags(t *testing.T) {
	out, err := runApp(t, "--agent-id", "agent-1", "--agent-name", "Aria", "--deployment", "acme.example.com", "--target", "host-script")
	require.NoError(t, err)

	assert.Contains(t, out, "Host page script")
	assert.Contains(t, out, `<div id="widget-agent-1"></div>`)
	assert.NotContains(t, out, "React component")
}

func TestRunGenerate_InputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widget.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"agent": {"id": "agent-2", "name": "Bob"},
		"deployment": "bob.example.com",
		"customization": {"theme": "dark"},
		"targets": ["component"]
	}`), 0o600))

	out, err := runApp(t, "--input", path)
	require.NoError(t, err)

	assert.Contains(t, out, "export default function BobWidget()")
	assert.Contains(t, out, "theme: 'dark',")
	assert.NotContains(t, out, "Host page script")
}

func TestRunGenerate_NoAgent(t *testing.T) {
	_, err := runApp(t, "--deployment", "acme.example.com")
	assert.ErrorIs(t, err, domain.ErrNoAgentSelected)
}

func TestRunGenerate_CopyNeedsSingleTarget(t *testing.T) {
	_, err := runApp(t, "--agent-id", "agent-1", "--copy")
	assert.ErrorContains(t, err, "--copy needs a single --target")
}
