package errors

import (
	"fmt"
	"strings"
)

// Configuration-related error constructors.

// ConfigParseError creates an error for YAML parsing failures.
func ConfigParseError(configPath string, parseErr error) *TodoError {
	return &TodoError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check your config.yaml for syntax errors:
  1. Ensure proper YAML indentation (use spaces, not tabs)
  2. Check for missing colons or quotes
  3. Or remove the file to run with defaults`,
	}
}

// ConfigValidationError creates an error for invalid configuration values.
func ConfigValidationError(field, message string, validOptions []string) *TodoError {
	suggestion := fmt.Sprintf("Fix the %q field in your config file", field)
	if len(validOptions) > 0 {
		suggestion += fmt.Sprintf("\n  Valid options: %s", strings.Join(validOptions, ", "))
	}

	return &TodoError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("invalid configuration: %s", message),
		Details: map[string]string{
			"field": field,
		},
		Suggestion: suggestion,
	}
}

// Command-line usage error constructors.

// MissingArgument creates an error for a command invoked without its required argument.
func MissingArgument(command, argument string) *TodoError {
	return &TodoError{
		Kind:    ErrUsage,
		Message: "Argument required",
		Details: map[string]string{
			"command":  command,
			"argument": argument,
		},
	}
}

// InvalidIndexArgument creates an error for an index argument that is not an integer.
func InvalidIndexArgument(arg string) *TodoError {
	return &TodoError{
		Kind:    ErrUsage,
		Message: "Invalid argument",
		Details: map[string]string{
			"argument": arg,
		},
		Suggestion: "Pass the item number shown by 'todo ls', e.g. 'todo done 0'",
	}
}

// UnsupportedFormat creates an error for an unknown export format.
func UnsupportedFormat(format string, validFormats []string) *TodoError {
	return &TodoError{
		Kind:       ErrUsage,
		Message:    fmt.Sprintf("unsupported format: %q", format),
		Suggestion: fmt.Sprintf("Valid formats: %s", strings.Join(validFormats, ", ")),
	}
}
