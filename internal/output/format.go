// Package output formats structured command results as text, JSON,
// NDJSON, YAML, or aligned tables, with optional jq and JSONPath
// filtering.
package output

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	clierrors "github.com/hollowpine/table-cli/internal/errors"
)

// Format represents the output format type.
type Format string

const (
	// FormatText is the human-readable default.
	FormatText Format = "text"
	// FormatJSON is pretty-printed JSON format.
	FormatJSON Format = "json"
	// FormatNDJSON is newline-delimited JSON format.
	FormatNDJSON Format = "ndjson"
	// FormatTable is aligned tabular format.
	FormatTable Format = "table"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a string to a Format. Empty input defaults to
// FormatText; unknown values are an error.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatNDJSON, "jsonl":
		return FormatNDJSON, nil
	case FormatTable:
		return FormatTable, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", errors.New("invalid --output format (expected text|json|ndjson|jsonl|table|yaml)")
	}
}

// Printer handles output formatting across different formats.
type Printer struct {
	w      io.Writer
	format Format
}

// NewPrinter creates a Printer that writes to w in the given format.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format}
}

// Print outputs data in the configured format. A --jsonpath expression
// from context is applied first; jq queries are applied by the JSON
// printers.
func (p *Printer) Print(ctx context.Context, data interface{}) error {
	if data == nil {
		return nil
	}

	if path := JSONPathFromContext(ctx); path != "" {
		if p.format == FormatTable || p.format == FormatText {
			return clierrors.NewUserError(
				"--jsonpath is not supported with text or table output",
				"Use --output json|ndjson|jsonl|yaml instead",
			)
		}
		extracted, err := applyJSONPath(data, path)
		if err != nil {
			return err
		}
		data = extracted
	}

	switch p.format {
	case FormatJSON:
		return p.printJSON(ctx, data)
	case FormatNDJSON:
		return p.printNDJSON(ctx, data)
	case FormatYAML:
		return p.printYAML(data)
	case FormatTable, FormatText:
		return p.printTable(data)
	default:
		return fmt.Errorf("unsupported format: %s", p.format)
	}
}

// printJSON outputs data as JSON, pretty-printed unless --compact-json
// is set. A jq query from context filters the output.
func (p *Printer) printJSON(ctx context.Context, data interface{}) error {
	compact := CompactJSONFromContext(ctx)
	if query := QueryFromContext(ctx); query != "" {
		return p.runQuery(query, data, !compact)
	}

	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(data)
}

// printNDJSON outputs data as newline-delimited JSON, one element per
// line for slices.
func (p *Printer) printNDJSON(ctx context.Context, data interface{}) error {
	if query := QueryFromContext(ctx); query != "" {
		return p.runQuery(query, data, false)
	}

	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)

	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		for i := 0; i < v.Len(); i++ {
			if err := enc.Encode(v.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	}
	return enc.Encode(data)
}

// printYAML outputs data as YAML.
func (p *Printer) printYAML(data interface{}) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}

// printTable renders a Table with aligned columns. Other data falls
// back to YAML, which reads fine for the small structures this CLI
// emits.
func (p *Printer) printTable(data interface{}) error {
	var t Table
	switch v := data.(type) {
	case Table:
		t = v
	case *Table:
		if v == nil {
			return nil
		}
		t = *v
	default:
		return p.printYAML(data)
	}

	tw := tabwriter.NewWriter(p.w, 0, 2, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	for _, row := range t.Rows {
		_, _ = fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
