package preview_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlprog/embedkit/internal/controller"
	"github.com/mtlprog/embedkit/internal/domain"
	"github.com/mtlprog/embedkit/internal/preview"
	"github.com/mtlprog/embedkit/internal/session"
	"github.com/mtlprog/embedkit/internal/widget"
)

func describe(t *testing.T, c domain.WidgetCustomization) widget.Description {
	t.Helper()
	agent := &domain.Agent{ID: "agent-7", Name: "Aria"}
	d, err := widget.Describe(agent, "acme.example.com", c)
	require.NoError(t, err)
	return d
}

func newHarness() (*preview.Harness, *session.Manager) {
	m := session.NewClientManager(session.NewMemoryStore())
	return preview.New(m), m
}

func TestBuild_EmbedURLMatchesRuntime(t *testing.T) {
	h, m := newHarness()
	d := describe(t, domain.DefaultCustomization())

	result, err := h.Build(context.Background(), d, 0)
	require.NoError(t, err)

	record, err := m.LookupOrCreate(context.Background(), "agent-7")
	require.NoError(t, err)
	assert.Equal(t, record.SessionID, result.SessionID)

	assert.Equal(t, d.EmbedURL(result.SessionID), result.EmbedURL)
	assert.True(t, strings.HasPrefix(result.EmbedURL,
		"https://acme.example.com/embed?agent=agent-7&theme=light&color=%233B82F6&welcome="))
	assert.True(t, strings.HasSuffix(result.EmbedURL, "&sessionId="+result.SessionID))
}

func TestBuild_FrameAndTestWindow(t *testing.T) {
	h, _ := newHarness()
	c := domain.DefaultCustomization()
	c.Width = "320px"
	c.Height = "480px"

	result, err := h.Build(context.Background(), describe(t, c), 0)
	require.NoError(t, err)

	assert.Equal(t, preview.Frame{Width: "320px", Height: "480px"}, result.Frame)
	assert.Equal(t, result.EmbedURL, result.TestWindow.URL)
	assert.Equal(t, "_blank", result.TestWindow.Name)
	assert.Equal(t, "width=500,height=700,scrollbars=yes,resizable=yes", result.TestWindow.Features)
}

func TestBuild_SessionIsStable(t *testing.T) {
	h, _ := newHarness()
	d := describe(t, domain.DefaultCustomization())

	first, err := h.Build(context.Background(), d, 0)
	require.NoError(t, err)
	second, err := h.Build(context.Background(), d, 0)
	require.NoError(t, err)

	assert.Equal(t, first.SessionID, second.SessionID)
	assert.Equal(t, first.EmbedURL, second.EmbedURL)
}

func TestMaterialize(t *testing.T) {
	tests := []struct {
		name      string
		position  domain.Position
		autoOpen  bool
		viewport  int
		state     string
		toggle    bool
		height    string
		width     string
		wrapperAt string
	}{
		{"floating starts minimized", domain.PositionBottomRight, false, 1200, "minimized", true, "0px", "400px", "fixed"},
		{"auto open starts maximized", domain.PositionBottomRight, true, 1200, "maximized", true, "600px", "400px", "fixed"},
		{"mobile viewport", domain.PositionBottomLeft, true, 400, "maximized", true, widget.MobileFrameHeight, widget.MobileFrameWidth, "fixed"},
		{"inline has no toggle", domain.PositionInline, false, 400, "maximized", false, "600px", "400px", "relative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := domain.DefaultCustomization()
			c.Position = tt.position
			c.AutoOpen = tt.autoOpen

			s, err := preview.Materialize(describe(t, c), tt.viewport)
			require.NoError(t, err)

			assert.Equal(t, tt.state, s.State)
			assert.Equal(t, tt.toggle, s.HasToggle)
			assert.Equal(t, tt.height, s.Frame.Height)
			assert.Equal(t, tt.width, s.Frame.Width)
			assert.Equal(t, tt.wrapperAt, s.Wrapper.Position)
		})
	}
}

func TestMaterialize_ToggleIcon(t *testing.T) {
	s, err := preview.Materialize(describe(t, domain.DefaultCustomization()), 0)
	require.NoError(t, err)

	assert.Equal(t, widget.ChatGlyph, s.ToggleIcon)
	assert.Equal(t, controller.WrapperStyle{
		Position: "fixed",
		Offsets:  []widget.Offset{{Side: widget.SideBottom, Value: "90px"}, {Side: widget.SideRight, Value: "20px"}},
		ZIndex:   widget.FloatingZIndex,
	}, s.Wrapper)
}

func TestRenderPage(t *testing.T) {
	h, _ := newHarness()
	d := describe(t, domain.DefaultCustomization())
	result, err := h.Build(context.Background(), d, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, preview.RenderPage(&buf, preview.NewPage(d, result, `<script>var a = 'x';</script>`)))

	page := buf.String()
	assert.Contains(t, page, "<title>Aria - Widget Preview</title>")
	assert.Contains(t, page, "&lt;script&gt;var a = &#39;x&#39;;&lt;/script&gt;")
	assert.Contains(t, page, "Open test window")
	assert.Contains(t, page, "window.open(")
	assert.Contains(t, page, result.SessionID)
}
