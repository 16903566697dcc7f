package styles

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNew_PlainRendererHasNoEscapes(t *testing.T) {
	s := New(lipgloss.NewRenderer(&bytes.Buffer{}))

	for name, style := range map[string]lipgloss.Style{
		"Header": s.Header,
		"Index":  s.Index,
		"Date":   s.Date,
		"Cursor": s.Cursor,
	} {
		if got := style.Render("x"); got != "x" {
			t.Errorf("%s.Render on a non-terminal = %q, want plain text", name, got)
		}
	}
}

func TestNew_NilRenderer(t *testing.T) {
	// Should not panic
	s := New(nil)
	_ = s.Header.Render("Todo:")
}
