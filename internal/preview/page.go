package preview

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/mtlprog/embedkit/internal/static"
	"github.com/mtlprog/embedkit/internal/widget"
)

var pageTemplate = template.Must(template.New("preview").Parse(static.PreviewHTML))

// Page is the data behind the preview page.
type Page struct {
	AgentName    string
	Title        string
	PrimaryColor string
	BorderRadius string
	Allow        string
	Result       *Result
	HostScript   string
}

// NewPage assembles the page for a description, its preview and the host script artifact.
func NewPage(d widget.Description, result *Result, hostScript string) Page {
	return Page{
		AgentName:    d.AgentName,
		Title:        d.Title,
		PrimaryColor: d.PrimaryColor,
		BorderRadius: d.BorderRadius,
		Allow:        widget.FrameAllow,
		Result:       result,
		HostScript:   hostScript,
	}
}

// RenderPage writes the preview page. Nothing is written when rendering fails.
func RenderPage(w io.Writer, p Page) error {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		return fmt.Errorf("render preview page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
