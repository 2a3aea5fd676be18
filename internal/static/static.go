package static

import _ "embed"

// PreviewHTML is the html/template source of the widget preview page.
//
//go:embed preview.html
var PreviewHTML string
