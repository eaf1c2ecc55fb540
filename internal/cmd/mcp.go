package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hollowpine/table-cli/internal/mcp"
)

func newMCPCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the converters over the Model Context Protocol",
		Long: `Run an MCP server on stdin/stdout exposing two tools:

  csv_to_markdown  - convert CSV text to a Markdown pipe table
  markdown_to_csv  - extract a pipe table from Markdown and emit CSV

Intended to be launched by an MCP client (e.g. an agent runtime), not
interactively.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mcp.ServeStdio(app.Version)
		},
	}
}
