// Package table holds the tabular data model shared by the CSV and
// Markdown codecs. A Table lives for a single read-convert-write pass;
// nothing in this package keeps state between conversions.
package table

import "strings"

// Table is an ordered list of rows of text cells. The first row is the
// header; its length defines the expected column count.
type Table struct {
	Rows [][]string
}

// Header returns the header row, or nil for an empty table.
func (t *Table) Header() []string {
	if t == nil || len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// Width returns the header's column count.
func (t *Table) Width() int {
	return len(t.Header())
}

// Len returns the number of rows, header included.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

func trimCells(row []string) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = strings.TrimSpace(c)
	}
	return out
}
