// Package controller models the runtime behavior of the generated host script:
// the minimize/maximize state machine and the responsive layout. The preview
// harness uses it to materialize the DOM the script would build, and it uses
// the same layout constants the script is generated from.
package controller

import (
	"github.com/mtlprog/embedkit/internal/domain"
	"github.com/mtlprog/embedkit/internal/widget"
)

// State is the visibility state of a floating widget.
type State int

const (
	Minimized State = iota
	Maximized
)

func (s State) String() string {
	if s == Minimized {
		return "minimized"
	}
	return "maximized"
}

// Host is the page the widget is mounted into.
type Host interface {
	HasElement(id string) bool
	ViewportWidth() int
}

// FrameStyle is the computed style of the iframe.
type FrameStyle struct {
	Width     string
	Height    string
	Opacity   string
	Transform string
	Attached  bool
}

// WrapperStyle is the computed style of the wrapper element.
type WrapperStyle struct {
	Position string // "relative" for inline, "fixed" otherwise
	Offsets  []widget.Offset
	ZIndex   int
}

// Controller drives one mounted widget. Each method completes a full style
// transition before returning.
type Controller struct {
	desc     widget.Description
	state    State
	mobile   bool
	mounted  bool
	disposed bool
}

// New creates a controller in the initial state for desc.
func New(desc widget.Description) *Controller {
	state := Maximized
	if desc.InitiallyMinimized() {
		state = Minimized
	}
	return &Controller{desc: desc, state: state}
}

// Mount attaches the widget to host and runs the initial layout pass.
// A missing container returns ErrContainerNotFound and leaves the controller unmounted.
func (c *Controller) Mount(host Host) error {
	if !host.HasElement(c.desc.ContainerID) {
		return domain.ErrContainerNotFound
	}
	c.mounted = true
	c.Resize(host.ViewportWidth())
	return nil
}

// HasToggle reports whether a toggle control exists.
func (c *Controller) HasToggle() bool {
	return c.desc.Toggle
}

// State returns the current visibility state.
func (c *Controller) State() State {
	return c.state
}

// Toggle flips the state. It returns false when there is no toggle control or
// the controller is not live.
func (c *Controller) Toggle() bool {
	if !c.live() || !c.desc.Toggle {
		return false
	}
	if c.state == Minimized {
		c.state = Maximized
	} else {
		c.state = Minimized
	}
	return true
}

// Resize applies the responsive layout for a viewport width.
func (c *Controller) Resize(viewportWidth int) {
	if !c.live() {
		return
	}
	c.mobile = c.desc.Floating && viewportWidth < widget.MobileBreakpoint
}

// Dispose detaches the resize and toggle handlers; later events are ignored.
func (c *Controller) Dispose() {
	c.disposed = true
}

// Frame returns the iframe style for the current state and viewport.
func (c *Controller) Frame() FrameStyle {
	f := FrameStyle{
		Width:     c.desc.Width,
		Height:    c.desc.Height,
		Opacity:   widget.MaximizedOpacity,
		Transform: widget.MaximizedTransform,
		Attached:  c.mounted,
	}
	if c.mobile {
		f.Width = widget.MobileFrameWidth
		f.Height = widget.MobileFrameHeight
	}
	if c.state == Minimized {
		f.Height = widget.MinimizedHeight
		f.Opacity = widget.MinimizedOpacity
		f.Transform = widget.MinimizedTransform
		f.Attached = false
	}
	return f
}

// Wrapper returns the wrapper style for the current viewport.
func (c *Controller) Wrapper() WrapperStyle {
	if !c.desc.Floating {
		return WrapperStyle{Position: "relative"}
	}
	offsets := widget.OffsetsFor(c.desc.Position)
	if c.mobile {
		for i := range offsets {
			offsets[i].Value = widget.MobileEdgeOffset
		}
	}
	return WrapperStyle{Position: "fixed", Offsets: offsets, ZIndex: widget.FloatingZIndex}
}

// ToggleIcon returns the glyph shown on the toggle control.
func (c *Controller) ToggleIcon() string {
	if c.state == Minimized {
		return widget.ChatGlyph
	}
	return widget.CollapseGlyph
}

func (c *Controller) live() bool {
	return c.mounted && !c.disposed
}
