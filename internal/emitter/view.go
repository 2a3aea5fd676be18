package emitter

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/mtlprog/embedkit/internal/widget"
)

// layout exposes the shared runtime constants to templates.
type layout struct {
	Breakpoint         int
	MobileWidth        string
	MobileHeight       string
	MobileEdgeOffset   string
	MinimizedHeight    string
	MinimizedOpacity   string
	MinimizedTransform string
	MaximizedOpacity   string
	MaximizedTransform string
	Border             string
	BoxShadow          string
	Allow              string
	Transition         string
	ZIndex             int
	ToggleSize         string
	ChatGlyph          string
	CollapseGlyph      string
}

var sharedLayout = layout{
	Breakpoint:         widget.MobileBreakpoint,
	MobileWidth:        widget.MobileFrameWidth,
	MobileHeight:       widget.MobileFrameHeight,
	MobileEdgeOffset:   widget.MobileEdgeOffset,
	MinimizedHeight:    widget.MinimizedHeight,
	MinimizedOpacity:   widget.MinimizedOpacity,
	MinimizedTransform: widget.MinimizedTransform,
	MaximizedOpacity:   widget.MaximizedOpacity,
	MaximizedTransform: widget.MaximizedTransform,
	Border:             widget.FrameBorder,
	BoxShadow:          widget.FrameBoxShadow,
	Allow:              widget.FrameAllow,
	Transition:         widget.FrameTransition,
	ZIndex:             widget.FloatingZIndex,
	ToggleSize:         widget.ToggleSize,
	ChatGlyph:          widget.ChatGlyph,
	CollapseGlyph:      widget.CollapseGlyph,
}

// view is the template input.
type view struct {
	widget.Description
	Layout        layout
	Namespace     string
	TransientTTL  string
	ThemeName     string
	PositionName  string
	ComponentName string
	PluginIdent   string
	PluginName    string
}

func (e *Emitter) newView(d widget.Description) view {
	return view{
		Description:   d,
		Layout:        sharedLayout,
		Namespace:     e.cfg.SessionNamespace,
		TransientTTL:  TransientTTL(e.cfg.SessionTTL),
		ThemeName:     string(d.Theme),
		PositionName:  string(d.Position),
		ComponentName: ComponentName(d.AgentName),
		PluginIdent:   PluginIdent(d.AgentID),
		PluginName:    d.AgentName + " Chat Widget",
	}
}

// TransientTTL renders ttl as a PHP expiry expression in seconds, using
// DAY_IN_SECONDS when ttl is a whole number of days.
func TransientTTL(ttl time.Duration) string {
	const day = 24 * time.Hour
	if ttl >= day && ttl%day == 0 {
		return fmt.Sprintf("%d * DAY_IN_SECONDS", int64(ttl/day))
	}
	return strconv.FormatInt(int64(ttl/time.Second), 10)
}

// ComponentName derives a component identifier from an agent name,
// e.g. "support bot" -> "SupportBotWidget".
func ComponentName(agentName string) string {
	var b strings.Builder
	upper := true
	for _, r := range agentName {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	name := b.String()
	if name == "" || unicode.IsDigit(rune(name[0])) {
		name = "Agent" + name
	}
	return name + "Widget"
}

// PluginIdent derives a PHP function prefix from an agent id. The hash suffix
// keeps ids that sanitize to the same text apart.
func PluginIdent(agentID string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(agentID) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
		if b.Len() >= 32 {
			break
		}
	}
	h := fnv.New32a()
	h.Write([]byte(agentID))
	return fmt.Sprintf("embedkit_%s_%08x", b.String(), h.Sum32())
}

var commentReplacer = strings.NewReplacer("*/", "* /", "\r", " ", "\n", " ")

// phpComment makes s safe inside a PHP block comment line.
func phpComment(s string) string {
	return commentReplacer.Replace(s)
}
