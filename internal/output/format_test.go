package output

import (
	"bytes"
	"context"
	"strings"
	"testing"

	clierrors "github.com/hollowpine/table-cli/internal/errors"
)

func sampleTable() Table {
	return Table{
		Headers: []string{"Name", "Age"},
		Rows:    [][]string{{"Alice", "30"}, {"Bob", "7"}},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"ndjson", FormatNDJSON, false},
		{"jsonl", FormatNDJSON, false},
		{"table", FormatTable, false},
		{"yaml", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)
	if err := p.Print(context.Background(), sampleTable()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	for _, want := range []string{`"headers"`, `"rows"`, `"Alice"`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("JSON output missing %s: %q", want, buf.String())
		}
	}
}

func TestPrintCompactJSON(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithCompactJSON(context.Background(), true)
	p := NewPrinter(&buf, FormatJSON)
	if err := p.Print(ctx, sampleTable()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if got := strings.Count(strings.TrimSpace(buf.String()), "\n"); got != 0 {
		t.Errorf("compact JSON spans %d extra lines: %q", got, buf.String())
	}
}

func TestPrintJSONWithQuery(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithQuery(context.Background(), ".rows | length")
	p := NewPrinter(&buf, FormatJSON)
	if err := p.Print(ctx, sampleTable()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "2" {
		t.Errorf("query output = %q, want 2", got)
	}
}

func TestPrintJSONInvalidQuery(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithQuery(context.Background(), ".rows[")
	p := NewPrinter(&buf, FormatJSON)
	err := p.Print(ctx, sampleTable())
	if err == nil {
		t.Fatal("Print() error = nil for invalid query")
	}
	if !clierrors.IsUserError(err) {
		t.Errorf("Print() error = %v, want UserError", err)
	}
}

func TestPrintJSONPath(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithJSONPath(context.Background(), "$.headers[0]")
	p := NewPrinter(&buf, FormatJSON)
	if err := p.Print(ctx, sampleTable()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != `"Name"` {
		t.Errorf("jsonpath output = %q, want %q", got, `"Name"`)
	}
}

func TestPrintJSONPathRejectedForTable(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithJSONPath(context.Background(), "$.headers")
	p := NewPrinter(&buf, FormatTable)
	err := p.Print(ctx, sampleTable())
	if err == nil {
		t.Fatal("Print() error = nil, want rejection for table format")
	}
	if !clierrors.IsUserError(err) {
		t.Errorf("Print() error = %v, want UserError", err)
	}
}

func TestPrintNDJSONSlice(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatNDJSON)
	data := []map[string]string{{"a": "1"}, {"a": "2"}}
	if err := p.Print(context.Background(), data); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Errorf("NDJSON lines = %d, want 2: %q", len(lines), buf.String())
	}
}

func TestPrintYAML(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatYAML)
	if err := p.Print(context.Background(), sampleTable()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if !strings.Contains(buf.String(), "headers:") {
		t.Errorf("YAML output missing headers: %q", buf.String())
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatTable)
	if err := p.Print(context.Background(), sampleTable()); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	want := "Name   Age\nAlice  30\nBob    7\n"
	if buf.String() != want {
		t.Errorf("table output = %q, want %q", buf.String(), want)
	}
}

func TestPrintNil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)
	if err := p.Print(context.Background(), nil); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Print(nil) wrote %q", buf.String())
	}
}
