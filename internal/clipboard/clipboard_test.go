package clipboard_test

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlprog/embedkit/internal/clipboard"
	"github.com/mtlprog/embedkit/internal/domain"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("not a terminal") }

func TestCopy_System(t *testing.T) {
	var copied string
	var term bytes.Buffer
	c := clipboard.NewWithWriters(func(s string) error {
		copied = s
		return nil
	}, &term)

	require.NoError(t, c.Copy("<div></div>"))
	assert.Equal(t, "<div></div>", copied)
	assert.Zero(t, term.Len())
}

func TestCopy_Fallback(t *testing.T) {
	var term bytes.Buffer
	c := clipboard.NewWithWriters(func(string) error { return errors.New("no xclip") }, &term)

	require.NoError(t, c.Copy("<div></div>"))
	assert.Contains(t, term.String(), "\x1b]52;c;")
	assert.Contains(t, term.String(), base64.StdEncoding.EncodeToString([]byte("<div></div>")))
}

func TestCopy_BothFail(t *testing.T) {
	c := clipboard.NewWithWriters(func(string) error { return errors.New("no xclip") }, failingWriter{})

	err := c.Copy("<div></div>")
	assert.ErrorIs(t, err, domain.ErrClipboardWriteFailed)
}
