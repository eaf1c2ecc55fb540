package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	clierrors "github.com/hollowpine/table-cli/internal/errors"
)

// bom is the UTF-8 byte order mark. Spreadsheet exports commonly prefix
// CSV files with it, and some tools refuse to detect UTF-8 without it.
const bom = "\ufeff"

// ReadCSV parses CSV text into a Table. The first record becomes the
// header; every later record is trimmed and normalized to the header's
// column count (short rows are right-padded with empty cells, long rows
// are truncated). A leading BOM is stripped before decoding.
func ReadCSV(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV input: %w", err)
	}

	cr := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(data), bom)))
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, clierrors.WrapUserError(err, "invalid CSV input", "Check the file uses standard comma/quote formatting")
	}
	if len(records) == 0 {
		return nil, clierrors.EmptySourceError()
	}

	header := trimCells(records[0])
	rows := make([][]string, 0, len(records))
	rows = append(rows, header)
	for _, rec := range records[1:] {
		row := trimCells(rec)
		for len(row) < len(header) {
			row = append(row, "")
		}
		rows = append(rows, row[:len(header)])
	}
	return &Table{Rows: rows}, nil
}

// RenderCSV serializes all rows, header included, as standard CSV text.
// Rows are written as-is: rows that came from a Markdown table keep
// whatever width they had.
func RenderCSV(t *Table) (string, error) {
	var b strings.Builder
	cw := csv.NewWriter(&b)
	if err := cw.WriteAll(t.Rows); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteCSV writes the table as CSV prefixed with a UTF-8 BOM so common
// spreadsheet tools pick up the encoding. It returns the number of rows
// written, header included.
func WriteCSV(w io.Writer, t *Table) (int, error) {
	text, err := RenderCSV(t)
	if err != nil {
		return 0, err
	}
	if _, err := io.WriteString(w, bom+text); err != nil {
		return 0, err
	}
	return t.Len(), nil
}
