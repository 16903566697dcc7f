package todo

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/wexinc/todo/internal/errors"
)

// ExportFormat names an output encoding for Export.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportYAML ExportFormat = "yaml"
	ExportTOML ExportFormat = "toml"
)

// ExportFormats returns the supported export format names.
func ExportFormats() []string {
	return []string{string(ExportJSON), string(ExportYAML), string(ExportTOML)}
}

// ParseExportFormat validates s as an export format. "yml" is accepted for YAML.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case ExportJSON, ExportYAML, ExportTOML:
		return ExportFormat(s), nil
	case "yml":
		return ExportYAML, nil
	}
	return "", errors.UnsupportedFormat(s, ExportFormats())
}

// Export writes doc to w in the given format. The JSON form is the same
// layout the store writes to disk.
func Export(w io.Writer, doc *Document, format ExportFormat) error {
	switch format {
	case ExportJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	case ExportYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
	case ExportTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("failed to encode TOML: %w", err)
		}
	default:
		return errors.UnsupportedFormat(string(format), ExportFormats())
	}
	return nil
}
