// Package clipboard copies generated artifacts for the operator. The system
// clipboard is tried first; when it is unavailable the text is sent as an
// OSC 52 terminal sequence, which most terminals forward to the clipboard.
package clipboard

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/mtlprog/embedkit/internal/domain"
)

// Copier writes text to the clipboard.
type Copier struct {
	system   func(string) error
	terminal io.Writer
}

// New creates a Copier using the system clipboard and stderr for the fallback.
func New() *Copier {
	return &Copier{system: clipboard.WriteAll, terminal: os.Stderr}
}

// NewWithWriters creates a Copier with explicit primary and fallback paths.
func NewWithWriters(system func(string) error, terminal io.Writer) *Copier {
	return &Copier{system: system, terminal: terminal}
}

// Copy writes text to the clipboard. A failed primary write is masked when the
// fallback succeeds; only when both fail is ErrClipboardWriteFailed returned.
func (c *Copier) Copy(text string) error {
	err := c.system(text)
	if err == nil {
		return nil
	}

	slog.Debug("system clipboard unavailable, using terminal fallback", "error", err)

	if _, fallbackErr := osc52.New(text).WriteTo(c.terminal); fallbackErr != nil {
		return fmt.Errorf("%w: %v; fallback: %v", domain.ErrClipboardWriteFailed, err, fallbackErr)
	}

	return nil
}
