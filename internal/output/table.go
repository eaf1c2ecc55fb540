package output

// Table is the structured form of a parsed table used by the inspect
// command. Rows keep their parsed width; Markdown-sourced rows are not
// padded to the header's column count.
type Table struct {
	Headers []string   `json:"headers" yaml:"headers"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}
