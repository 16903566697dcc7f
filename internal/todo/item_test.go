package todo

import (
	"errors"
	"testing"
	"time"

	todoerrors "github.com/wexinc/todo/internal/errors"
)

func TestListName(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"todo", true},
		{"done", true},
		{"", false},
		{"Done", false},
		{"archive", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ListName(tt.in).IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}

			name, err := ParseListName(tt.in)
			if tt.valid {
				if err != nil {
					t.Fatalf("ParseListName(%q) error = %v", tt.in, err)
				}
				if name.String() != tt.in {
					t.Errorf("String() = %q", name.String())
				}
				return
			}
			if !errors.Is(err, todoerrors.ErrValidation) {
				t.Errorf("ParseListName(%q) error = %v, want validation error", tt.in, err)
			}
		})
	}
}

func TestNewItem(t *testing.T) {
	now := time.UnixMilli(1234567890)

	item, err := NewItem("write tests", now)
	if err != nil {
		t.Fatalf("NewItem error = %v", err)
	}
	if item.Text != "write tests" || item.CreatedAt != 1234567890 {
		t.Errorf("NewItem = %+v", item)
	}

	if _, err := NewItem(" ", now); !errors.Is(err, todoerrors.ErrValidation) {
		t.Errorf("NewItem(blank) error = %v", err)
	}
}

func TestDocumentNormalize(t *testing.T) {
	doc := &Document{}
	if !doc.normalize() {
		t.Error("normalize should report a change for missing lists")
	}
	if doc.Todo == nil || doc.Done == nil {
		t.Error("normalize should create both lists")
	}
	if doc.normalize() {
		t.Error("normalize should be a no-op the second time")
	}
}

func TestDocumentClone(t *testing.T) {
	doc := &Document{
		Todo: []Item{{Text: "a", CreatedAt: 1}},
		Done: []Item{{Text: "b", CreatedAt: 2}},
	}
	clone := doc.Clone()
	clone.Todo[0].Text = "changed"
	clone.Done = append(clone.Done, Item{Text: "c"})

	if doc.Todo[0].Text != "a" {
		t.Error("Clone should copy todo items")
	}
	if len(doc.Done) != 1 {
		t.Error("Clone should copy done slice")
	}
}
