// Package styles provides Lip Gloss styles shared by the list printer and
// the interactive view.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	Primary    = lipgloss.Color("#7C3AED") // Purple
	Secondary  = lipgloss.Color("#06B6D4") // Cyan
	Success    = lipgloss.Color("#10B981") // Green
	Warning    = lipgloss.Color("#F59E0B") // Amber
	Error      = lipgloss.Color("#EF4444") // Red
	Muted      = lipgloss.Color("#6B7280") // Gray
	MutedLight = lipgloss.Color("#9CA3AF") // Light Gray
	Foreground = lipgloss.Color("#F9FAFB") // White
)

// Styles is the set of styles bound to one renderer. Binding matters: a
// renderer writing to a pipe or buffer drops all escape codes, while one
// writing to a terminal keeps them.
type Styles struct {
	// Header is the list title ("Todo:", "Done:").
	Header lipgloss.Style
	// Index is the item position.
	Index lipgloss.Style
	// Text is the item text.
	Text lipgloss.Style
	// DoneText is item text in the done list.
	DoneText lipgloss.Style
	// Date is the bracketed timestamp.
	Date lipgloss.Style
	// Empty is the placeholder for an empty list.
	Empty lipgloss.Style

	// Cursor marks the selected row in the interactive view.
	Cursor lipgloss.Style
	// Selected is the selected row's text.
	Selected lipgloss.Style
	// Status is the status line.
	Status lipgloss.Style
	// Warning is for confirmation prompts.
	Warning lipgloss.Style
	// ErrorText is for error messages.
	ErrorText lipgloss.Style
	// Title is the interactive view's title bar.
	Title lipgloss.Style
}

// New returns styles rendered through r. A nil renderer uses the default
// renderer (stdout).
func New(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		Header:   r.NewStyle().Bold(true),
		Index:    r.NewStyle().Foreground(Secondary),
		Text:     r.NewStyle(),
		DoneText: r.NewStyle().Foreground(MutedLight),
		Date:     r.NewStyle().Foreground(Muted),
		Empty:    r.NewStyle().Foreground(Muted).Italic(true),

		Cursor:    r.NewStyle().Foreground(Primary).Bold(true),
		Selected:  r.NewStyle().Foreground(Foreground).Bold(true),
		Status:    r.NewStyle().Foreground(Success),
		Warning:   r.NewStyle().Foreground(Warning).Bold(true),
		ErrorText: r.NewStyle().Foreground(Error),
		Title: r.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1),
	}
}
