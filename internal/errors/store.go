package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Store-related error constructors.

// EmptyText creates an error for an item without text.
func EmptyText() *TodoError {
	return &TodoError{
		Kind:       ErrValidation,
		Message:    "item text must not be empty",
		Suggestion: `Quote the item text: todo add "buy milk"`,
	}
}

// InvalidListName creates an error for a list name other than the known lists.
func InvalidListName(name string, validNames []string) *TodoError {
	return &TodoError{
		Kind:    ErrValidation,
		Message: fmt.Sprintf("invalid list name: %q", name),
		Details: map[string]string{
			"list": name,
		},
		Suggestion: fmt.Sprintf("Use one of: %s", strings.Join(validNames, ", ")),
	}
}

// IndexOutOfRange creates an error for a positional index outside [0, length).
func IndexOutOfRange(list string, index, length int) *TodoError {
	suggestion := fmt.Sprintf("The %s list is empty.", list)
	if length > 0 {
		suggestion = fmt.Sprintf("Valid indices are 0 to %d. Run 'todo ls' to see current positions.", length-1)
	}
	return &TodoError{
		Kind:    ErrIndex,
		Message: fmt.Sprintf("no item at index %d in %s", index, list),
		Details: map[string]string{
			"list":   list,
			"index":  strconv.Itoa(index),
			"length": strconv.Itoa(length),
		},
		Suggestion: suggestion,
	}
}

// StorageRead creates an error for a store file that cannot be read.
func StorageRead(path string, cause error) *TodoError {
	return &TodoError{
		Kind:    ErrStorage,
		Message: "failed to read todo file",
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check that the file exists and is readable, or point TODO_JSON_DB_PATH at another file.",
	}
}

// StorageCorrupt creates an error for a store file that is not valid JSON.
func StorageCorrupt(path string, cause error) *TodoError {
	return &TodoError{
		Kind:    ErrStorage,
		Message: "todo file is not valid JSON",
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `The file must contain {"todo": [...], "done": [...]}.
  Fix it by hand, or move it aside to start with empty lists.`,
	}
}

// StorageWrite creates an error for a store file that cannot be written.
func StorageWrite(path string, cause error) *TodoError {
	return &TodoError{
		Kind:    ErrStorage,
		Message: "failed to write todo file",
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check permissions on the file and its directory.",
	}
}

// StorageLocked creates an error when another process holds the store lock.
func StorageLocked(path string, cause error) *TodoError {
	return &TodoError{
		Kind:    ErrStorage,
		Message: "todo file is locked by another process",
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `Wait for the other todo command to finish and retry.
  If no other command is running, delete the stale lock file next to the todo file.`,
	}
}
