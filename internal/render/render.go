// Package render prints the todo and done lists for the terminal.
package render

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/wexinc/todo/internal/todo"
	"github.com/wexinc/todo/internal/tui/styles"
)

// DefaultDateFormat is used when Options.DateFormat is empty.
const DefaultDateFormat = "2006-01-02 15:04"

// Options controls how items are printed.
type Options struct {
	// DateFormat is a Go time layout for the creation timestamp.
	DateFormat string
	// Relative prints "3 hours ago" instead of DateFormat.
	Relative bool
	// Now is the reference time for relative dates. Defaults to time.Now.
	Now func() time.Time
}

// Printer writes lists to an output, styled for that output.
type Printer struct {
	out    io.Writer
	opts   Options
	styles styles.Styles
}

// NewPrinter creates a Printer for w. Colors and bold are only emitted when
// w is a terminal.
func NewPrinter(w io.Writer, opts Options) *Printer {
	if opts.DateFormat == "" {
		opts.DateFormat = DefaultDateFormat
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Printer{
		out:    w,
		opts:   opts,
		styles: styles.New(lipgloss.NewRenderer(w)),
	}
}

// Lists prints the todo list, a blank line, then the done list.
func (p *Printer) Lists(todoEntries, doneEntries []todo.Entry) error {
	if err := p.List("Todo", todoEntries, false); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(p.out); err != nil {
		return err
	}
	return p.List("Done", doneEntries, true)
}

// List prints one titled list as "<index>. <text> [<date>]" lines.
func (p *Printer) List(title string, entries []todo.Entry, done bool) error {
	if _, err := fmt.Fprintln(p.out, p.styles.Header.Render(title+":")); err != nil {
		return err
	}

	text := p.styles.Text
	if done {
		text = p.styles.DoneText
	}
	for _, e := range entries {
		_, err := fmt.Fprintf(p.out, "%s %s %s\n",
			p.styles.Index.Render(fmt.Sprintf("%d.", e.Index)),
			text.Render(e.Text),
			p.styles.Date.Render("["+p.FormatTime(e.Created())+"]"),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatTime renders an item timestamp according to the printer options.
func (p *Printer) FormatTime(t time.Time) string {
	return p.opts.FormatTime(t)
}

// FormatTime renders t as a relative time or with DateFormat in local time.
func (o Options) FormatTime(t time.Time) string {
	if o.Relative {
		now := time.Now
		if o.Now != nil {
			now = o.Now
		}
		return humanize.RelTime(t, now(), "ago", "from now")
	}
	layout := o.DateFormat
	if layout == "" {
		layout = DefaultDateFormat
	}
	return t.Local().Format(layout)
}
