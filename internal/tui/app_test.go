package tui

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/todo/internal/render"
	"github.com/wexinc/todo/internal/todo"
	"github.com/wexinc/todo/internal/tui/styles"
)

func newTestModel(t *testing.T, items ...string) (*Model, *todo.Store) {
	t.Helper()
	store := todo.NewStore(filepath.Join(t.TempDir(), "todo.json"),
		todo.WithClock(func() time.Time { return time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local) }))
	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	for _, text := range items {
		if err := store.Add(text); err != nil {
			t.Fatalf("Add(%q) error = %v", text, err)
		}
	}
	m := New(store, render.Options{})
	m.styles = styles.New(lipgloss.NewRenderer(&bytes.Buffer{}))
	return m, store
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func mustTodo(t *testing.T, s *todo.Store) []todo.Entry {
	t.Helper()
	entries, err := s.Todo()
	if err != nil {
		t.Fatalf("Todo: %v", err)
	}
	return entries
}

func mustDone(t *testing.T, s *todo.Store) []todo.Entry {
	t.Helper()
	entries, err := s.Done()
	if err != nil {
		t.Fatalf("Done: %v", err)
	}
	return entries
}

func texts(entries []todo.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Text
	}
	return out
}

func TestNew_LoadsLists(t *testing.T) {
	m, _ := newTestModel(t, "a", "b")

	if got := texts(m.todo); strings.Join(got, ",") != "a,b" {
		t.Errorf("todo = %v, want [a b]", got)
	}
	if len(m.done) != 0 {
		t.Errorf("done = %v, want empty", texts(m.done))
	}
	if m.Init() != nil {
		t.Error("Init() should not return a command")
	}
}

func TestModel_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", runes("q")},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t)
			cmd := press(m, tt.msg)

			if !m.quitting {
				t.Error("model should be quitting")
			}
			if cmd == nil {
				t.Error("expected a quit command")
			}
			if m.View() != "" {
				t.Error("View() should be empty after quitting")
			}
		})
	}
}

func TestModel_CursorMovement(t *testing.T) {
	m, _ := newTestModel(t, "a", "b", "c")

	press(m, runes("j"), tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 2 {
		t.Fatalf("cursor = %d, want 2", m.cursor)
	}

	press(m, runes("j"))
	if m.cursor != 2 {
		t.Errorf("cursor moved past the last item: %d", m.cursor)
	}

	press(m, runes("k"), tea.KeyMsg{Type: tea.KeyUp}, runes("k"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestModel_MarkDone(t *testing.T) {
	m, store := newTestModel(t, "a", "b", "c")

	press(m, runes("j"), runes("d"))

	if got := strings.Join(texts(mustTodo(t, store)), ","); got != "a,c" {
		t.Errorf("store todo = %s, want a,c", got)
	}
	if got := strings.Join(texts(mustDone(t, store)), ","); got != "b" {
		t.Errorf("store done = %s, want b", got)
	}
	if m.status != "Done: b" {
		t.Errorf("status = %q", m.status)
	}

	// enter is also bound to done
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := strings.Join(texts(m.done), ","); got != "b,c" {
		t.Errorf("done = %s, want b,c", got)
	}
	if m.cursor != 0 {
		t.Errorf("cursor should be clamped to the shorter list, got %d", m.cursor)
	}
}

func TestModel_Remove(t *testing.T) {
	m, store := newTestModel(t, "a", "b")

	press(m, runes("x"))

	if got := strings.Join(texts(mustTodo(t, store)), ","); got != "b" {
		t.Errorf("store todo = %s, want b", got)
	}
	if len(mustDone(t, store)) != 0 {
		t.Error("remove should not touch the done list")
	}
}

func TestModel_ActionsOnEmptyList(t *testing.T) {
	m, store := newTestModel(t)

	press(m, runes("d"), runes("x"))

	if m.lastError != "" {
		t.Errorf("unexpected error on empty list: %q", m.lastError)
	}
	if len(mustTodo(t, store)) != 0 || len(mustDone(t, store)) != 0 {
		t.Error("store should be unchanged")
	}
}

func TestModel_Add(t *testing.T) {
	m, store := newTestModel(t, "a")

	press(m, runes("a"))
	if m.mode != modeAdd {
		t.Fatal("expected add mode after pressing a")
	}

	// q and d are text while typing
	press(m, runes("quick "), runes("d"), tea.KeyMsg{Type: tea.KeyEnter})

	if m.quitting {
		t.Fatal("typing q in the input should not quit")
	}
	if m.mode != modeList {
		t.Error("expected list mode after submitting")
	}
	if got := strings.Join(texts(mustTodo(t, store)), ","); got != "a,quick d" {
		t.Errorf("store todo = %s, want a,quick d", got)
	}
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want the new item", m.cursor)
	}
}

func TestModel_AddEmptyShowsError(t *testing.T) {
	m, store := newTestModel(t)

	press(m, runes("a"), tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != modeAdd {
		t.Error("should stay in add mode after a rejected item")
	}
	if m.lastError == "" {
		t.Error("expected an error message")
	}
	if len(mustTodo(t, store)) != 0 {
		t.Error("nothing should be added")
	}
	if !strings.Contains(m.View(), m.lastError) {
		t.Error("error should be shown in the view")
	}
}

func TestModel_AddCancel(t *testing.T) {
	m, store := newTestModel(t)

	press(m, runes("a"), runes("abc"), tea.KeyMsg{Type: tea.KeyEsc})

	if m.mode != modeList {
		t.Error("esc should leave add mode")
	}
	if len(mustTodo(t, store)) != 0 {
		t.Error("cancelled input should not be added")
	}
}

func TestModel_ClearDone(t *testing.T) {
	m, store := newTestModel(t, "a", "b")
	press(m, runes("d"))

	press(m, runes("c"))
	if m.mode != modeConfirmClear {
		t.Fatal("c should ask for confirmation")
	}
	if !strings.Contains(m.View(), "Clear 1 done item(s)? (y/n)") {
		t.Errorf("View() missing prompt:\n%s", m.View())
	}
	press(m, runes("y"))

	if len(mustDone(t, store)) != 0 {
		t.Errorf("done = %v, want empty", texts(mustDone(t, store)))
	}
	if got := strings.Join(texts(mustTodo(t, store)), ","); got != "b" {
		t.Errorf("todo = %s, clear should not touch it", got)
	}
}

type failingStore struct {
	Store
}

func (failingStore) MarkDone(int) error {
	return errors.New("disk full")
}

func TestModel_StoreErrorDoesNotQuit(t *testing.T) {
	m, store := newTestModel(t, "a")
	m.store = failingStore{Store: store}

	cmd := press(m, runes("d"))

	if cmd != nil || m.quitting {
		t.Error("a store error should not quit")
	}
	if m.lastError != "disk full" {
		t.Errorf("lastError = %q", m.lastError)
	}
	if !strings.Contains(m.View(), "disk full") {
		t.Error("error should be shown in the view")
	}
}

func TestModel_View(t *testing.T) {
	m, _ := newTestModel(t, "call mom", "write report")
	press(m, runes("d"))

	view := m.View()
	for _, want := range []string{
		"Todo:",
		"0. write report [2024-03-01 09:30]",
		"Done:",
		"0. call mom [2024-03-01 09:30]",
		"Done: call mom",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m, _ := newTestModel(t)

	short := m.View()
	press(m, runes("?"))
	if !m.help.ShowAll {
		t.Fatal("? should show full help")
	}
	if !strings.Contains(m.View(), "clear done") || strings.Contains(short, "clear done") {
		t.Error("full help should list the clear binding, short help should not")
	}
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.WindowSizeMsg{Width: 80, Height: 24})

	if m.width != 80 || m.height != 24 {
		t.Errorf("size = %dx%d", m.width, m.height)
	}
	if m.help.Width != 80 {
		t.Errorf("help width = %d", m.help.Width)
	}
}

func TestModel_ClearDoneCancelled(t *testing.T) {
	m, store := newTestModel(t, "a")
	press(m, runes("d"))

	press(m, runes("c"), runes("n"))

	if m.mode != modeList {
		t.Error("n should return to the list")
	}
	if got := strings.Join(texts(mustDone(t, store)), ","); got != "a" {
		t.Errorf("done = %s, should be untouched", got)
	}
}

func TestModel_ClearWithNothingDone(t *testing.T) {
	m, _ := newTestModel(t, "a")

	press(m, runes("c"))

	if m.mode != modeList {
		t.Error("no confirmation expected for an empty done list")
	}
}

type unreadableStore struct {
	Store
}

func (unreadableStore) Done() ([]todo.Entry, error) {
	return nil, errors.New("permission denied")
}

func TestModel_ReadErrorIsShown(t *testing.T) {
	m, store := newTestModel(t, "a")
	m.store = unreadableStore{Store: store}

	press(m, runes("x"))

	if m.lastError != "permission denied" {
		t.Errorf("lastError = %q", m.lastError)
	}
	if m.quitting {
		t.Error("a read error should not quit")
	}
}
