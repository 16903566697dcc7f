package todo

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	todoerrors "github.com/wexinc/todo/internal/errors"
)

func sampleDocument() *Document {
	return &Document{
		Todo: []Item{{Text: "call mom", CreatedAt: 1700000000000}},
		Done: []Item{{Text: "buy milk", CreatedAt: 1690000000000}},
	}
}

func TestParseExportFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ExportFormat
		wantErr bool
	}{
		{"json", ExportJSON, false},
		{"yaml", ExportYAML, false},
		{"yml", ExportYAML, false},
		{"toml", ExportTOML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseExportFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, todoerrors.ErrUsage) {
					t.Errorf("error = %v, want usage error", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseExportFormat(%q) = %q, %v", tt.in, got, err)
			}
		})
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, sampleDocument(), ExportJSON); err != nil {
		t.Fatalf("Export error = %v", err)
	}

	var got Document
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got.Todo[0].Text != "call mom" || got.Done[0].CreatedAt != 1690000000000 {
		t.Errorf("decoded = %+v", got)
	}
	if !strings.Contains(buf.String(), `"createdAt": 1700000000000`) {
		t.Errorf("JSON should use the on-disk key names:\n%s", buf.String())
	}
}

func TestExportYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, sampleDocument(), ExportYAML); err != nil {
		t.Fatalf("Export error = %v", err)
	}

	var got Document
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if len(got.Todo) != 1 || got.Todo[0].Text != "call mom" {
		t.Errorf("decoded = %+v", got)
	}
	if !strings.Contains(buf.String(), "createdAt: 1700000000000") {
		t.Errorf("YAML missing createdAt:\n%s", buf.String())
	}
}

func TestExportTOML(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, sampleDocument(), ExportTOML); err != nil {
		t.Fatalf("Export error = %v", err)
	}

	var got Document
	if _, err := toml.Decode(buf.String(), &got); err != nil {
		t.Fatalf("output is not TOML: %v\n%s", err, buf.String())
	}
	if len(got.Done) != 1 || got.Done[0].Text != "buy milk" {
		t.Errorf("decoded = %+v", got)
	}
}

func TestExportUnsupported(t *testing.T) {
	err := Export(&bytes.Buffer{}, sampleDocument(), "csv")
	if !errors.Is(err, todoerrors.ErrUsage) {
		t.Errorf("error = %v, want usage error", err)
	}
}
