package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hollowpine/table-cli/internal/cmdutil"
	"github.com/hollowpine/table-cli/internal/config"
	clierrors "github.com/hollowpine/table-cli/internal/errors"
	"github.com/hollowpine/table-cli/internal/output"
	"github.com/hollowpine/table-cli/internal/table"
	"github.com/hollowpine/table-cli/internal/ui"
)

func newCSVToMarkdownCmd() *cobra.Command {
	var (
		docPath     string
		docHeading  string
		updateDoc   bool
		noUpdateDoc bool
	)

	cmd := &cobra.Command{
		Use:     "csv2md [input.csv] [output.md]",
		Aliases: []string{"c2m"},
		Short:   "Convert a CSV file to a Markdown pipe table",
		Long: `Convert a CSV file to a Markdown pipe table.

The first CSV row becomes the table header. Data rows are trimmed and
normalized to the header's column count; literal pipes are escaped as \|.

With no arguments, the default input (preview.csv) is converted to its
sibling .md file and the companion document's "## Preview" section is
refreshed. With one argument the table prints to stdout. Inputs whose
name contains "preview" also refresh the companion document.

Examples:
  tbl csv2md data.csv                # print table to stdout
  tbl csv2md data.csv docs/data.md   # write table to a file
  tbl csv2md - < data.csv            # read CSV from stdin
  tbl csv2md                         # preview.csv -> preview.md + README update
  tbl csv2md data.csv out.md --update-doc --doc docs/STATUS.md`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := ConfigFromContext(ctx)
			u := ui.FromContext(ctx)
			quiet := output.QuietFromContext(ctx)

			var (
				input       string
				outPath     string
				toStdout    bool
				defaultMode bool
			)
			switch len(args) {
			case 0:
				input = cfg.GetDefaultCSV()
				if _, err := os.Stat(input); err != nil {
					return clierrors.NewUserError(
						fmt.Sprintf("no input given and %s does not exist in the current directory", input),
						"Usage: tbl csv2md <input.csv> [output.md]",
					)
				}
				outPath = cmdutil.DeriveMarkdownPath(input)
				defaultMode = true
				if !quiet {
					u.Info("Using default file: %s", input)
				}
			case 1:
				input = args[0]
				toStdout = true
			default:
				input = args[0]
				outPath = args[1]
			}

			tbl, err := readCSVTable(ctx, input)
			if err != nil {
				return err
			}
			md := table.RenderMarkdown(tbl)

			if toStdout {
				_, _ = fmt.Fprintln(stdoutFromContext(ctx), md)
			} else {
				if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
					return clierrors.WrapUserError(err, "failed to write Markdown file", "Check the output path is writable")
				}
				if !quiet {
					u.Success("Markdown table saved to: %s", outPath)
				}
			}

			if shouldUpdateDoc(cfg, input, defaultMode, updateDoc, noUpdateDoc) {
				heading := docHeading
				if heading == "" {
					heading = cfg.GetDocHeading()
				}
				doc := docPath
				if doc == "" {
					doc = cfg.GetDoc()
				}
				updateCompanionDoc(ctx, doc, heading, md)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&docPath, "doc", "", "Companion document to update (default README.md)")
	cmd.Flags().StringVar(&docHeading, "heading", "", `Section heading to replace (default "## Preview")`)
	cmd.Flags().BoolVar(&updateDoc, "update-doc", false, "Always update the companion document")
	cmd.Flags().BoolVar(&noUpdateDoc, "no-update-doc", false, "Never update the companion document")

	return cmd
}

// shouldUpdateDoc decides whether the companion document gets refreshed:
// explicitly via flags, otherwise in default-file mode or when the input
// filename hints at a preview table. Config can disable the automatic
// cases.
func shouldUpdateDoc(cfg *config.Config, input string, defaultMode, force, suppress bool) bool {
	if suppress {
		return false
	}
	if force {
		return true
	}
	if !cfg.GetUpdateDoc() {
		return false
	}
	return defaultMode || strings.Contains(strings.ToLower(input), "preview")
}
