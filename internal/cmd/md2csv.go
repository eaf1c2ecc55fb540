package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hollowpine/table-cli/internal/cmdutil"
	clierrors "github.com/hollowpine/table-cli/internal/errors"
	"github.com/hollowpine/table-cli/internal/output"
	"github.com/hollowpine/table-cli/internal/table"
	"github.com/hollowpine/table-cli/internal/ui"
)

func newMarkdownToCSVCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "md2csv [input.md] [output.csv]",
		Aliases: []string{"m2c"},
		Short:   "Convert a Markdown pipe table to a CSV file",
		Long: `Extract the pipe table from a Markdown file and write it as CSV.

Separator lines and rows whose cells are all empty are skipped; escaped
pipes (\|) decode back to literal pipe characters. The CSV output is
written with a UTF-8 BOM for spreadsheet compatibility.

When the output path is omitted it is derived from the input by swapping
the .md extension for .csv. With no arguments the default input
(preview.md) is converted.

Examples:
  tbl md2csv table.md              # writes table.csv
  tbl md2csv table.md out/data.csv
  tbl md2csv                       # preview.md -> preview.csv`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := ConfigFromContext(ctx)
			u := ui.FromContext(ctx)
			quiet := output.QuietFromContext(ctx)

			var input, outPath string
			switch len(args) {
			case 0:
				input = cfg.GetDefaultMD()
				if _, err := os.Stat(input); err != nil {
					return clierrors.NewUserError(
						fmt.Sprintf("no input given and %s does not exist in the current directory", input),
						"Usage: tbl md2csv <input.md> [output.csv]",
					)
				}
				if !quiet {
					u.Info("Using default file: %s", input)
				}
			case 1:
				input = args[0]
			default:
				input = args[0]
				outPath = args[1]
			}
			if outPath == "" {
				// Deriving a path from "-" would write a file literally
				// named "-.csv".
				if input == "-" {
					return clierrors.NewUserError(
						"an output path is required when reading from stdin",
						"Usage: tbl md2csv - <output.csv>",
					)
				}
				outPath = cmdutil.DeriveCSVPath(input)
			}

			tbl, err := readMarkdownTable(ctx, input)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			rows, err := table.WriteCSV(&buf, tbl)
			if err != nil {
				return fmt.Errorf("failed to encode CSV: %w", err)
			}
			if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
				return clierrors.WrapUserError(err, "failed to write CSV file", "Check the output path is writable")
			}

			if !quiet {
				u.Success("CSV file saved to: %s", outPath)
				u.Info("Converted %d rows (including header)", rows)
			}
			return nil
		},
	}

	return cmd
}
