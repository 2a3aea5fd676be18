// Package preview builds what the dashboard shows for a configured widget:
// the inline preview frame, the detached test window, and a snapshot of the
// DOM state the host script would produce.
package preview

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mtlprog/embedkit/internal/controller"
	"github.com/mtlprog/embedkit/internal/session"
	"github.com/mtlprog/embedkit/internal/widget"
)

// Test window geometry.
const (
	TestWindowWidth  = 500
	TestWindowHeight = 700
	TestWindowName   = "_blank"
)

// DesktopViewport is the viewport width snapshots default to.
const DesktopViewport = 1280

// Frame is the inline preview iframe size.
type Frame struct {
	Width  string `json:"width"`
	Height string `json:"height"`
}

// TestWindow describes the detached test window.
type TestWindow struct {
	URL      string `json:"url"`
	Name     string `json:"name"`
	Features string `json:"features"`
}

// Snapshot is the runtime state right after the host script initializes.
type Snapshot struct {
	State      string
	HasToggle  bool
	ToggleIcon string
	Frame      controller.FrameStyle
	Wrapper    controller.WrapperStyle
}

// Result is a built preview.
type Result struct {
	EmbedURL   string
	SessionID  string
	Frame      Frame
	TestWindow TestWindow
	Snapshot   Snapshot
}

// Harness builds previews. Session ids come from the client variant, the same
// lookup-or-create the generated scripts run in the browser.
type Harness struct {
	sessions *session.Manager
}

// New creates a Harness.
func New(sessions *session.Manager) *Harness {
	return &Harness{sessions: sessions}
}

// Build creates the preview for d at the given viewport width.
// A non-positive width uses DesktopViewport.
func (h *Harness) Build(ctx context.Context, d widget.Description, viewportWidth int) (*Result, error) {
	record, err := h.sessions.LookupOrCreate(ctx, d.AgentID)
	if err != nil {
		return nil, fmt.Errorf("preview session: %w", err)
	}

	snapshot, err := Materialize(d, viewportWidth)
	if err != nil {
		return nil, err
	}

	embedURL := d.EmbedURL(record.SessionID)

	return &Result{
		EmbedURL:  embedURL,
		SessionID: record.SessionID,
		Frame:     Frame{Width: d.Width, Height: d.Height},
		TestWindow: TestWindow{
			URL:      embedURL,
			Name:     TestWindowName,
			Features: TestWindowFeatures(),
		},
		Snapshot: snapshot,
	}, nil
}

// TestWindowFeatures returns the window.open feature string.
func TestWindowFeatures() string {
	return fmt.Sprintf("width=%d,height=%d,scrollbars=yes,resizable=yes", TestWindowWidth, TestWindowHeight)
}

// Materialize mounts a controller on a page that has the widget container and
// reports the resulting state.
func Materialize(d widget.Description, viewportWidth int) (Snapshot, error) {
	if viewportWidth <= 0 {
		viewportWidth = DesktopViewport
	}

	c := controller.New(d)
	if err := c.Mount(page{containerID: d.ContainerID, width: viewportWidth}); err != nil {
		slog.Warn("preview mount skipped", "container_id", d.ContainerID, "error", err)
		return Snapshot{}, err
	}
	defer c.Dispose()

	return Snapshot{
		State:      c.State().String(),
		HasToggle:  c.HasToggle(),
		ToggleIcon: c.ToggleIcon(),
		Frame:      c.Frame(),
		Wrapper:    c.Wrapper(),
	}, nil
}

// page is the preview document the widget is mounted into.
type page struct {
	containerID string
	width       int
}

func (p page) HasElement(id string) bool { return id == p.containerID }
func (p page) ViewportWidth() int        { return p.width }
