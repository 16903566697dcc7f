// Package tui provides the interactive terminal view for todo.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/todo/internal/errors"
	"github.com/wexinc/todo/internal/render"
	"github.com/wexinc/todo/internal/todo"
	"github.com/wexinc/todo/internal/tui/styles"
)

// Store is the subset of *todo.Store the view needs.
type Store interface {
	Todo() ([]todo.Entry, error)
	Done() ([]todo.Entry, error)
	Add(text string) error
	Remove(index int) error
	MarkDone(index int) error
	Clear(name todo.ListName) error
}

type mode int

const (
	modeList mode = iota
	modeAdd
	modeConfirmClear
)

// Model is the Bubble Tea model for the todo list view.
type Model struct {
	store   Store
	keys    KeyMap
	help    help.Model
	input   textinput.Model
	styles  styles.Styles
	display render.Options

	todo   []todo.Entry
	done   []todo.Entry
	cursor int
	mode   mode

	status    string
	lastError string

	width    int
	height   int
	quitting bool
}

// New creates a list view over store.
func New(store Store, display render.Options) *Model {
	input := textinput.New()
	input.Placeholder = "What needs doing?"
	input.Prompt = "> "
	input.CharLimit = 500

	m := &Model{
		store:   store,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		input:   input,
		styles:  styles.New(nil),
		display: display,
	}
	m.refresh()
	return m
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeConfirmClear:
			return m.updateConfirm(msg)
		}
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.todo)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Done):
		if len(m.todo) > 0 {
			text := m.todo[m.cursor].Text
			m.apply(m.store.MarkDone(m.cursor), fmt.Sprintf("Done: %s", text))
		}

	case key.Matches(msg, m.keys.Remove):
		if len(m.todo) > 0 {
			text := m.todo[m.cursor].Text
			m.apply(m.store.Remove(m.cursor), fmt.Sprintf("Removed: %s", text))
		}

	case key.Matches(msg, m.keys.Clear):
		if len(m.done) > 0 {
			m.mode = modeConfirmClear
		}

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.Reset()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEsc:
		m.endAdd()
		return m, nil

	case tea.KeyEnter:
		text := m.input.Value()
		if err := m.store.Add(text); err != nil {
			// Stay in the input so the text can be fixed.
			m.setError(err)
			return m, nil
		}
		m.endAdd()
		m.apply(nil, fmt.Sprintf("Added: %s", text))
		m.cursor = len(m.todo) - 1
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y", "enter":
		m.mode = modeList
		m.apply(m.store.Clear(todo.ListDone), "Cleared done list")
	case "n", "esc":
		m.mode = modeList
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) endAdd() {
	m.mode = modeList
	m.input.Blur()
	m.input.Reset()
}

// apply records the outcome of a store operation and reloads the lists.
func (m *Model) apply(err error, status string) {
	if err != nil {
		m.setError(err)
	} else {
		m.status = status
		m.lastError = ""
	}
	m.refresh()
}

func (m *Model) setError(err error) {
	m.status = ""
	var te *errors.TodoError
	if errors.As(err, &te) {
		m.lastError = te.Message
		return
	}
	m.lastError = err.Error()
}

func (m *Model) refresh() {
	todoEntries, err := m.store.Todo()
	if err != nil {
		m.setError(err)
		return
	}
	doneEntries, err := m.store.Done()
	if err != nil {
		m.setError(err)
		return
	}
	m.todo = todoEntries
	m.done = doneEntries
	if m.cursor >= len(m.todo) {
		m.cursor = len(m.todo) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("todo"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Header.Render("Todo:"))
	b.WriteString("\n")
	if len(m.todo) == 0 {
		b.WriteString(m.styles.Empty.Render("  nothing to do"))
		b.WriteString("\n")
	}
	for _, e := range m.todo {
		b.WriteString(m.row(e, e.Index == m.cursor && m.mode == modeList, false))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Header.Render("Done:"))
	b.WriteString("\n")
	for _, e := range m.done {
		b.WriteString(m.row(e, false, true))
	}

	b.WriteString("\n")
	switch m.mode {
	case modeAdd:
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case modeConfirmClear:
		b.WriteString(m.styles.Warning.Render(fmt.Sprintf("Clear %d done item(s)? (y/n)", len(m.done))))
		b.WriteString("\n")
	}
	switch {
	case m.lastError != "":
		b.WriteString(m.styles.ErrorText.Render(m.lastError))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) row(e todo.Entry, selected, done bool) string {
	cursor := "  "
	text := m.styles.Text.Render(e.Text)
	if done {
		text = m.styles.DoneText.Render(e.Text)
	}
	if selected {
		cursor = m.styles.Cursor.Render("> ")
		text = m.styles.Selected.Render(e.Text)
	}
	return fmt.Sprintf("%s%s %s %s\n",
		cursor,
		m.styles.Index.Render(fmt.Sprintf("%d.", e.Index)),
		text,
		m.styles.Date.Render("["+m.display.FormatTime(e.Created())+"]"),
	)
}

// Run starts the interactive view and blocks until the user quits.
func Run(store Store, display render.Options) error {
	p := tea.NewProgram(New(store, display), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
