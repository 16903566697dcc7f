package todo

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// ImportFormat represents the format of import input.
type ImportFormat string

const (
	// FormatMarkdown is a markdown checklist ("- [ ] text", "- [x] text").
	FormatMarkdown ImportFormat = "markdown"
	// FormatPlainText is one item per line, optionally numbered or bulleted.
	FormatPlainText ImportFormat = "plaintext"
)

// ImportResult contains the texts parsed from the input.
type ImportResult struct {
	Texts    []string
	Warnings []string
}

// markdownItemPattern matches "- [ ] text" and "* [x] text".
// Groups: 1=checkbox content, 2=text.
var markdownItemPattern = regexp.MustCompile(`^\s*[-*]\s*\[([ xX])\]\s*(.+)$`)

// numberedPattern matches "1. text" and "1) text".
var numberedPattern = regexp.MustCompile(`^\s*\d+[.)]\s+(.+)$`)

// bulletPattern matches "- text", "* text" and "• text".
var bulletPattern = regexp.MustCompile(`^\s*[-*•]\s+(.+)$`)

// Importer parses item lists written by hand or exported from other tools.
type Importer struct {
	// IncludeChecked imports checked markdown items too. They are skipped by
	// default since the store has no way to add straight to done.
	IncludeChecked bool
}

// NewImporter creates a new Importer with default settings.
func NewImporter() *Importer {
	return &Importer{}
}

// DetectFormat reports FormatMarkdown if any line is a checklist item.
func DetectFormat(content string) ImportFormat {
	for _, line := range strings.Split(content, "\n") {
		if markdownItemPattern.MatchString(line) {
			return FormatMarkdown
		}
	}
	return FormatPlainText
}

// Import reads all of r, detects its format and parses it.
func (i *Importer) Import(r io.Reader) (*ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	content := string(data)
	return i.ImportFromString(content, DetectFormat(content))
}

// ImportFromString parses content in the given format.
func (i *Importer) ImportFromString(content string, format ImportFormat) (*ImportResult, error) {
	reader := strings.NewReader(content)
	switch format {
	case FormatMarkdown:
		return i.ImportFromMarkdown(reader)
	case FormatPlainText:
		return i.ImportFromPlainText(reader)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// ImportFromMarkdown parses checklist lines. Headings, prose and blank
// lines are ignored.
func (i *Importer) ImportFromMarkdown(reader io.Reader) (*ImportResult, error) {
	result := &ImportResult{Texts: []string{}}

	scanner := bufio.NewScanner(reader)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		matches := markdownItemPattern.FindStringSubmatch(scanner.Text())
		if matches == nil {
			continue
		}

		text := strings.TrimSpace(matches[2])
		if text == "" {
			continue
		}
		checked := matches[1] == "x" || matches[1] == "X"
		if checked && !i.IncludeChecked {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("line %d: skipped completed item %q", lineNo, text))
			continue
		}
		result.Texts = append(result.Texts, text)
	}

	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("error reading input: %w", err)
	}
	return result, nil
}

// ImportFromPlainText takes one item per non-blank line, stripping list
// numbering and bullets. Lines starting with '#' are treated as comments.
func (i *Importer) ImportFromPlainText(reader io.Reader) (*ImportResult, error) {
	result := &ImportResult{Texts: []string{}}

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		text := trimmed
		if matches := numberedPattern.FindStringSubmatch(line); matches != nil {
			text = strings.TrimSpace(matches[1])
		} else if matches := bulletPattern.FindStringSubmatch(line); matches != nil {
			text = strings.TrimSpace(matches[1])
		}
		if text == "" {
			continue
		}
		result.Texts = append(result.Texts, text)
	}

	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("error reading input: %w", err)
	}
	return result, nil
}

// ImportToStore parses r and appends every text to the store's todo list
// in one write.
func (i *Importer) ImportToStore(store *Store, r io.Reader) (*ImportResult, error) {
	result, err := i.Import(r)
	if err != nil {
		return result, err
	}
	if _, err := store.AddAll(result.Texts); err != nil {
		return result, err
	}
	return result, nil
}
