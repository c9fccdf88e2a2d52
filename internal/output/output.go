// Package output renders query results in the formats the CLI exposes.
package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrFormat indicates an unknown output format name.
var ErrFormat = errors.New("output: unknown format")

// Format selects a rendering of query results.
type Format int

const (
	FormatText Format = iota
	FormatTable
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatTable:
		return "table"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat resolves a format name, accepting any case.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "text":
		return FormatText, nil
	case "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrFormat, name)
}

// Render writes results to w in the requested format. An empty result
// list renders nothing for text and table, and an empty sequence for
// json and yaml.
func Render(w io.Writer, format Format, results []any) error {
	switch format {
	case FormatText:
		return renderText(w, results)
	case FormatTable:
		return renderTable(w, results)
	case FormatJSON:
		return renderJSON(w, results)
	case FormatYAML:
		return renderYAML(w, results)
	}
	return fmt.Errorf("%w: %d", ErrFormat, int(format))
}

func renderText(w io.Writer, results []any) error {
	for _, result := range results {
		if _, err := fmt.Fprintf(w, "%v\n", result); err != nil {
			return err
		}
	}
	return nil
}

// renderTable draws one box around all results, one row per line of
// each result's string form.
func renderTable(w io.Writer, results []any) error {
	if len(results) == 0 {
		return nil
	}

	var lines []string
	width := 0
	for _, result := range results {
		for _, line := range strings.Split(fmt.Sprintf("%v", result), "\n") {
			lines = append(lines, line)
			if len(line) > width {
				width = len(line)
			}
		}
	}

	border := "+-" + strings.Repeat("-", width) + "-+"
	if _, err := fmt.Fprintln(w, border); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "| %-*s |\n", width, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, border); err != nil {
		return err
	}
	return nil
}

// renderJSON goes through YAML encoding so ordered records keep their
// key order in the JSON text, which encoding/json alone cannot do.
func renderJSON(w io.Writer, results []any) error {
	payload, err := yaml.Marshal(results)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	converted, err := yaml.YAMLToJSON(payload)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, converted, "", "  "); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	indented.WriteByte('\n')

	_, err = w.Write(indented.Bytes())
	return err
}

func renderYAML(w io.Writer, results []any) error {
	payload, err := yaml.Marshal(results)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	_, err = w.Write(payload)
	return err
}
