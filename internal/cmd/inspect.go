package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	clierrors "github.com/hollowpine/table-cli/internal/errors"
	"github.com/hollowpine/table-cli/internal/output"
	"github.com/hollowpine/table-cli/internal/table"
)

func newInspectCmd() *cobra.Command {
	var fromFormat string

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Parse a table file and emit it as structured data",
		Long: `Parse a CSV or Markdown table file and emit the result through the
output layer, without writing any converted file. Useful for checking
what the converters see, and for scripting with jq.

The source format is inferred from the file extension; use --from when
reading stdin or unusually named files.

Examples:
  tbl inspect data.csv --json
  tbl inspect table.md --query '.rows | length'
  tbl inspect table.md --jsonpath '$.headers'
  tbl inspect data.csv -o yaml
  cat data.csv | tbl inspect - --from csv --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			input := args[0]

			format, err := resolveSourceFormat(input, fromFormat)
			if err != nil {
				return err
			}

			var tbl *table.Table
			switch format {
			case "csv":
				tbl, err = readCSVTable(ctx, input)
			default:
				tbl, err = readMarkdownTable(ctx, input)
			}
			if err != nil {
				return err
			}

			data := output.Table{Headers: tbl.Header(), Rows: tbl.Rows[1:]}
			return printerForContext(ctx).Print(ctx, data)
		},
	}

	cmd.Flags().StringVar(&fromFormat, "from", "", "Source format: csv|markdown (default: by file extension)")

	return cmd
}

func resolveSourceFormat(path, override string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(override)) {
	case "csv":
		return "csv", nil
	case "markdown", "md":
		return "markdown", nil
	case "":
	default:
		return "", clierrors.NewUserError(
			fmt.Sprintf("invalid --from %q", override),
			"Use one of: csv, markdown",
		)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "csv", nil
	case ".md", ".markdown":
		return "markdown", nil
	default:
		return "", clierrors.NewUserError(
			fmt.Sprintf("cannot infer source format from %q", path),
			"Pass --from csv or --from markdown",
		)
	}
}
