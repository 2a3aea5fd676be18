package widget_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlprog/embedkit/internal/domain"
	"github.com/mtlprog/embedkit/internal/widget"
)

func TestDescribe_WelcomeFallback(t *testing.T) {
	c := domain.DefaultCustomization()
	c.WelcomeMessage = ""

	d, err := widget.Describe(&domain.Agent{ID: "a1", Name: "Aria"}, "demo", c)
	require.NoError(t, err)

	assert.Equal(t, "Hello! I'm Aria. How can I help you today?", d.Welcome)
	assert.Equal(t, d.Welcome, d.Param(widget.ParamWelcome))
	assert.Equal(t, "Aria - AI Assistant", d.Title)
	assert.Equal(t, "widget-a1", d.ContainerID)
}

func TestDescribe_NoAgentSelected(t *testing.T) {
	for _, agent := range []*domain.Agent{nil, {ID: ""}, {ID: "   ", Name: "blank"}} {
		_, err := widget.Describe(agent, "demo", domain.DefaultCustomization())
		assert.ErrorIs(t, err, domain.ErrNoAgentSelected)
	}
}

func TestDescribe_RejectsUnknownEnums(t *testing.T) {
	agent := &domain.Agent{ID: "a1", Name: "Aria"}

	c := domain.DefaultCustomization()
	c.Theme = "sepia"
	_, err := widget.Describe(agent, "demo", c)
	assert.ErrorIs(t, err, domain.ErrInvalidTheme)

	c = domain.DefaultCustomization()
	c.Position = "center"
	_, err = widget.Describe(agent, "demo", c)
	assert.ErrorIs(t, err, domain.ErrInvalidPosition)
}

func TestDescribe_ToggleOnlyForFloatingMinimizable(t *testing.T) {
	agent := &domain.Agent{ID: "a1", Name: "Aria"}
	tests := []struct {
		position    domain.Position
		minimizable bool
		want        bool
	}{
		{domain.PositionBottomRight, true, true},
		{domain.PositionTopLeft, true, true},
		{domain.PositionBottomRight, false, false},
		{domain.PositionInline, true, false},
	}
	for _, tt := range tests {
		c := domain.DefaultCustomization()
		c.Position = tt.position
		c.Minimizable = tt.minimizable

		d, err := widget.Describe(agent, "demo", c)
		require.NoError(t, err)
		assert.Equal(t, tt.want, d.Toggle, "%s minimizable=%v", tt.position, tt.minimizable)
		assert.Equal(t, tt.want, len(d.ToggleOffsets) > 0)
	}
}

func TestDescribe_HostTemplate(t *testing.T) {
	d, err := widget.Describe(&domain.Agent{ID: "a1", Name: "Aria"}, "acme",
		domain.DefaultCustomization(), widget.WithHostTemplate("{deployment}.chat.example.com"))
	require.NoError(t, err)

	assert.Equal(t, "acme.chat.example.com", d.Host)
}

func TestEmbedURL_OrderAndEncoding(t *testing.T) {
	c := domain.DefaultCustomization()
	c.PrimaryColor = "#FF0000"
	c.Theme = domain.ThemeDark
	c.WelcomeMessage = "Hi & welcome"
	c.Placeholder = "Ask?"

	d, err := widget.Describe(&domain.Agent{ID: "a 1", Name: "Aria"}, "demo.example.com", c)
	require.NoError(t, err)

	raw := d.EmbedURL("session_1_abc")
	assert.True(t, strings.HasPrefix(raw, "https://demo.example.com/embed?agent=a+1&theme=dark&color=%23FF0000&"), raw)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "a 1", q.Get("agent"))
	assert.Equal(t, "#FF0000", q.Get("color"))
	assert.Equal(t, "Hi & welcome", q.Get("welcome"))
	assert.Equal(t, "Ask?", q.Get("placeholder"))
	assert.Equal(t, "session_1_abc", q.Get("sessionId"))

	names := make([]string, 0, 6)
	for _, kv := range strings.Split(u.RawQuery, "&") {
		names = append(names, strings.SplitN(kv, "=", 2)[0])
	}
	assert.Equal(t, []string{"agent", "theme", "color", "welcome", "placeholder", "sessionId"}, names)
	assert.Len(t, d.Params, 5, "EmbedURL must not grow Params")
}

func TestEmbedURL_MatchesURLSearchParams(t *testing.T) {
	c := domain.DefaultCustomization()
	c.WelcomeMessage = "Hi ~ *star* (x)!"
	c.Placeholder = "it's"

	d, err := widget.Describe(&domain.Agent{ID: "agent-1", Name: "Aria"}, "demo.example.com", c)
	require.NoError(t, err)

	// new URLSearchParams({...}).toString() for the same values
	assert.Equal(t,
		"https://demo.example.com/embed?agent=agent-1&theme=light&color=%233B82F6"+
			"&welcome=Hi+%7E+*star*+%28x%29%21&placeholder=it%27s&sessionId=session_1_abc",
		d.EmbedURL("session_1_abc"))
}

func TestOffsetsFor(t *testing.T) {
	assert.Empty(t, widget.OffsetsFor(domain.PositionInline))
	assert.Equal(t, []widget.Offset{{Side: widget.SideTop, Value: "20px"}, {Side: widget.SideLeft, Value: "20px"}},
		widget.OffsetsFor(domain.PositionTopLeft))

	got := widget.OffsetsFor(domain.PositionBottomLeft)
	got[0].Value = "1px"
	assert.Equal(t, "90px", widget.OffsetsFor(domain.PositionBottomLeft)[0].Value)
}
