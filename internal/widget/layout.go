package widget

import "github.com/mtlprog/embedkit/internal/domain"

// Layout constants shared by the generated script and the Go controller.
const (
	MobileBreakpoint  = 768
	MobileFrameWidth  = "calc(100vw - 40px)"
	MobileFrameHeight = "calc(100vh - 100px)"
	MobileEdgeOffset  = "10px"

	MinimizedHeight    = "0px"
	MinimizedOpacity   = "0"
	MinimizedTransform = "scale(0.8)"
	MaximizedOpacity   = "1"
	MaximizedTransform = "scale(1)"

	FrameBorder     = "none"
	FrameBoxShadow  = "0 4px 20px rgba(0, 0, 0, 0.15)"
	FrameAllow      = "microphone; encrypted-media"
	FrameTransition = "all 0.3s ease"

	FloatingZIndex = 9999
	ToggleSize     = "60px"
	ToggleOffset   = "20px"
	ChatGlyph      = "💬"
	CollapseGlyph  = "✕"
)

// Side is one edge of the viewport a floating widget is pinned to.
type Side string

const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideRight  Side = "right"
)

// Offset pins a floating wrapper to one side of the viewport.
type Offset struct {
	Side  Side
	Value string
}

// Bottom positions sit higher than top ones to leave room for the toggle.
var positionOffsets = map[domain.Position][]Offset{
	domain.PositionBottomRight: {{Side: SideBottom, Value: "90px"}, {Side: SideRight, Value: "20px"}},
	domain.PositionBottomLeft:  {{Side: SideBottom, Value: "90px"}, {Side: SideLeft, Value: "20px"}},
	domain.PositionTopRight:    {{Side: SideTop, Value: "20px"}, {Side: SideRight, Value: "20px"}},
	domain.PositionTopLeft:     {{Side: SideTop, Value: "20px"}, {Side: SideLeft, Value: "20px"}},
}

// OffsetsFor returns the wrapper offsets for a position; inline has none.
func OffsetsFor(p domain.Position) []Offset {
	src := positionOffsets[p]
	out := make([]Offset, len(src))
	copy(out, src)
	return out
}

// ToggleOffsets returns where the toggle button is pinned. The toggle always
// sits at the bottom edge, on the same horizontal side as the widget.
func ToggleOffsets(p domain.Position) []Offset {
	side := SideRight
	if p == domain.PositionBottomLeft || p == domain.PositionTopLeft {
		side = SideLeft
	}
	return []Offset{{Side: SideBottom, Value: ToggleOffset}, {Side: side, Value: ToggleOffset}}
}
