// Package todo holds the todo/done lists and their JSON persistence.
//
// Items are addressed by their position in a list. Positions are recomputed
// on every listing and shift when earlier items are removed, so an index is
// only meaningful against the listing it came from.
package todo

import (
	"strings"
	"time"

	"github.com/wexinc/todo/internal/errors"
)

// ListName identifies one of the two lists.
type ListName string

const (
	// ListTodo holds items not yet completed.
	ListTodo ListName = "todo"
	// ListDone holds completed items.
	ListDone ListName = "done"
)

// ListNames returns the valid list names in display order.
func ListNames() []string {
	return []string{string(ListTodo), string(ListDone)}
}

// IsValid returns true if the name is a known list.
func (n ListName) IsValid() bool {
	return n == ListTodo || n == ListDone
}

// String returns the string representation of the list name.
func (n ListName) String() string {
	return string(n)
}

// ParseListName validates s as a list name.
func ParseListName(s string) (ListName, error) {
	n := ListName(s)
	if !n.IsValid() {
		return "", errors.InvalidListName(s, ListNames())
	}
	return n, nil
}

// Item is a single entry. Items are never edited in place; they are only
// appended, moved to done, or deleted.
type Item struct {
	Text string `json:"text" yaml:"text" toml:"text"`
	// CreatedAt is milliseconds since the Unix epoch. Marking an item done
	// keeps the original creation time.
	CreatedAt int64 `json:"createdAt" yaml:"createdAt" toml:"createdAt"`
}

// NewItem creates an item stamped with the given time.
func NewItem(text string, now time.Time) (Item, error) {
	if err := ValidateText(text); err != nil {
		return Item{}, err
	}
	return Item{Text: text, CreatedAt: now.UnixMilli()}, nil
}

// ValidateText rejects empty and whitespace-only item text.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.EmptyText()
	}
	return nil
}

// Created returns CreatedAt as a time.Time in the local zone.
func (i Item) Created() time.Time {
	return time.UnixMilli(i.CreatedAt)
}

// Entry pairs an item with its current position in its list.
type Entry struct {
	Index int
	Item
}

// Document is the on-disk layout: two top-level arrays.
type Document struct {
	Todo []Item `json:"todo" yaml:"todo" toml:"todo"`
	Done []Item `json:"done" yaml:"done" toml:"done"`
}

// NewDocument returns a document with both lists present and empty.
func NewDocument() *Document {
	return &Document{
		Todo: []Item{},
		Done: []Item{},
	}
}

// normalize replaces missing lists with empty ones and reports whether it
// changed anything.
func (d *Document) normalize() bool {
	changed := false
	if d.Todo == nil {
		d.Todo = []Item{}
		changed = true
	}
	if d.Done == nil {
		d.Done = []Item{}
		changed = true
	}
	return changed
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	clone := &Document{
		Todo: make([]Item, len(d.Todo)),
		Done: make([]Item, len(d.Done)),
	}
	copy(clone.Todo, d.Todo)
	copy(clone.Done, d.Done)
	return clone
}

// list returns the named list. name must be valid.
func (d *Document) list(name ListName) []Item {
	if name == ListDone {
		return d.Done
	}
	return d.Todo
}

func entries(items []Item) []Entry {
	out := make([]Entry, len(items))
	for i, it := range items {
		out[i] = Entry{Index: i, Item: it}
	}
	return out
}
