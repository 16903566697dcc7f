// Package errors provides error types with actionable suggestions for todo.
// Every error carries a kind so callers can branch with errors.Is.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel kinds for use with errors.Is().
var (
	// ErrValidation indicates semantically invalid input (empty text, bad list name).
	ErrValidation = errors.New("validation error")
	// ErrIndex indicates a positional index outside the target list.
	ErrIndex = errors.New("index error")
	// ErrStorage indicates the backing file is unreadable, corrupt or unwritable.
	ErrStorage = errors.New("storage error")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrUsage indicates a malformed command line.
	ErrUsage = errors.New("usage error")
)

// TodoError is the base error type for todo errors.
type TodoError struct {
	// Kind is the category of error (e.g., ErrIndex, ErrStorage).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path, index).
	Details map[string]string
}

// Error implements the error interface.
func (e *TodoError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *TodoError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error's kind matches the target.
func (e *TodoError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with details and suggestion.
func (e *TodoError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\nSuggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *TodoError) WithDetails(key, value string) *TodoError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *TodoError) WithCause(cause error) *TodoError {
	e.Cause = cause
	return e
}

// New creates a new TodoError with the given kind and message.
func New(kind error, message string) *TodoError {
	return &TodoError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *TodoError {
	return &TodoError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *TodoError {
	return &TodoError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// FormatError renders err for the terminal. TodoErrors get their full
// formatting; anything else is printed as a plain "Error:" line.
func FormatError(err error) string {
	var te *TodoError
	if errors.As(err, &te) {
		return te.Format()
	}
	return fmt.Sprintf("Error: %v\n", err)
}

// Is is a passthrough to the standard library so callers need only one errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a passthrough to the standard library.
func As(err error, target any) bool {
	return errors.As(err, target)
}
