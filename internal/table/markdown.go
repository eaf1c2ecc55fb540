package table

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	clierrors "github.com/hollowpine/table-cli/internal/errors"
)

// separatorLine matches the header/body delimiter of a pipe table
// (e.g. "| --- | :--- |"). Such lines carry no data.
var separatorLine = regexp.MustCompile(`^\|[\s\-\|:]+$`)

// RenderMarkdown serializes a Table as a Markdown pipe table: header,
// separator, then data rows, joined with single newlines. No trailing
// newline is appended; callers decide how the table is terminated.
func RenderMarkdown(t *Table) string {
	lines := make([]string, 0, t.Len()+1)
	lines = append(lines, renderRow(t.Header()))

	sep := make([]string, t.Width())
	for i := range sep {
		sep[i] = "---"
	}
	lines = append(lines, "| "+strings.Join(sep, " | ")+" |")

	for _, row := range t.Rows[1:] {
		lines = append(lines, renderRow(row))
	}
	return strings.Join(lines, "\n")
}

// renderRow trims and pipe-escapes each cell. A literal | must survive a
// round trip, so it is written as \|.
func renderRow(row []string) string {
	cells := make([]string, len(row))
	for i, c := range row {
		cells[i] = strings.ReplaceAll(strings.TrimSpace(c), "|", `\|`)
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

// ParseMarkdown extracts a pipe table from Markdown text. Blank lines
// and separator lines are skipped, as is any line not delimited by
// pipes on both ends. Rows whose cells are all empty after trimming are
// dropped; stray decorative lines would otherwise show up as data.
//
// Unlike ReadCSV, rows are NOT normalized to the header's column count:
// rows of differing width flow through unchanged.
func ParseMarkdown(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read Markdown input: %w", err)
	}

	var rows [][]string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || separatorLine.MatchString(line) {
			continue
		}
		if !strings.HasPrefix(line, "|") || !strings.HasSuffix(line, "|") {
			continue
		}
		body := strings.TrimSuffix(strings.TrimPrefix(line, "|"), "|")
		cells := splitCells(body)
		if allEmpty(cells) {
			continue
		}
		rows = append(rows, cells)
	}

	if len(rows) == 0 {
		return nil, clierrors.NoTableDataError()
	}
	return &Table{Rows: rows}, nil
}

// splitCells scans the interior of a table line. A backslash directly
// before a pipe decodes to a literal pipe inside the current cell; any
// other pipe closes the cell.
func splitCells(s string) []string {
	var cells []string
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == '|':
			b.WriteByte('|')
			i++
		case s[i] == '|':
			cells = append(cells, strings.TrimSpace(b.String()))
			b.Reset()
		default:
			b.WriteByte(s[i])
		}
	}
	return append(cells, strings.TrimSpace(b.String()))
}

func allEmpty(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
