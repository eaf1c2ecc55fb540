package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hollowpine/table-cli/internal/config"
	"github.com/hollowpine/table-cli/internal/debug"
	"github.com/hollowpine/table-cli/internal/iocontext"
	"github.com/hollowpine/table-cli/internal/logging"
	"github.com/hollowpine/table-cli/internal/output"
	"github.com/hollowpine/table-cli/internal/ui"
)

func newRootCmd(app *App) *cobra.Command {
	// Global flags
	var (
		debugMode    bool
		outputFlag   string
		jsonFlag     bool
		queryFlag    string
		jqFlag       string
		jsonPathFlag string
		compactJSON  bool
		quietFlag    bool
		errorFormat  string
		colorFlag    string
	)

	rootCmd := &cobra.Command{
		Use:   "tbl",
		Short: "Convert tables between CSV and Markdown",
		Long: `tbl converts tabular data between delimited CSV records and Markdown
pipe tables, in both directions, and can splice the generated table into
a section of a companion document (e.g. the "## Preview" section of a
README).`,
		// Cobra must not emit its own error/usage text; errors are
		// printed centrally in App.Execute. Set here so flag-parse
		// errors, which fire before PersistentPreRunE, are covered too.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(debugMode, app.Stderr)

			// Load config file (skip for config commands to avoid recursion)
			var cfg *config.Config
			if cmd.Name() != "config" && (cmd.Parent() == nil || cmd.Parent().Name() != "config") {
				loadedCfg, err := config.Load()
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				cfg = loadedCfg
			} else {
				cfg = &config.Config{}
			}

			if err := validateErrorFormat(errorFormat); err != nil {
				return err
			}

			// Flag beats config for output format; --json is shorthand
			// for -o json.
			rawFormat := outputFlag
			if !cmd.Flags().Changed("output") && cfg.GetOutput() != "" {
				rawFormat = cfg.GetOutput()
			}
			if jsonFlag {
				rawFormat = string(output.FormatJSON)
			}
			format, err := output.ParseFormat(rawFormat)
			if err != nil {
				return err
			}

			query := queryFlag
			if query == "" {
				query = jqFlag
			}

			colorMode := colorFlag
			if !cmd.Flags().Changed("color") && cfg.GetColor() != "" {
				colorMode = cfg.GetColor()
			}

			ctx := cmd.Context()
			ctx = iocontext.WithIO(ctx, app.Stdin, app.Stdout, app.Stderr)
			ctx = debug.WithDebug(ctx, debugMode)
			ctx = WithConfig(ctx, cfg)
			ctx = WithErrorFormat(ctx, errorFormat)
			ctx = output.WithFormat(ctx, format)
			ctx = output.WithQuery(ctx, query)
			ctx = output.WithJSONPath(ctx, jsonPathFlag)
			ctx = output.WithCompactJSON(ctx, compactJSON)
			ctx = output.WithQuiet(ctx, quietFlag)
			ctx = ui.WithUI(ctx, ui.NewWithWriter(stderrFromContext(ctx), ui.ParseColorMode(colorMode)))
			cmd.SetContext(ctx)
			app.cmdCtx = ctx
			return nil
		},
	}

	rootCmd.Version = app.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("tbl %s (commit: %s, built: %s)\n", app.Version, app.Commit, app.BuildTime))

	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "text", "Output format: text|json|ndjson|jsonl|table|yaml")
	rootCmd.PersistentFlags().BoolVarP(&jsonFlag, "json", "j", false, "Shorthand for --output json")
	_ = rootCmd.PersistentFlags().MarkHidden("json")
	rootCmd.PersistentFlags().StringVarP(&queryFlag, "query", "q", "", "JQ expression to filter JSON output")
	rootCmd.PersistentFlags().StringVar(&jqFlag, "jq", "", "Alias for --query")
	_ = rootCmd.PersistentFlags().MarkHidden("jq")
	rootCmd.PersistentFlags().StringVar(&jsonPathFlag, "jsonpath", "", "Extract a value using JSONPath (e.g. $.rows[0])")
	rootCmd.PersistentFlags().BoolVar(&compactJSON, "compact-json", false, "Output compact JSON (single-line) instead of pretty JSON")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().StringVar(&errorFormat, "error-format", "auto", "Error output format (auto|text|json|yaml)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "Color mode (auto|always|never)")

	flagAlias(rootCmd.PersistentFlags(), "output", "out")
	flagAlias(rootCmd.PersistentFlags(), "query", "qr")

	rootCmd.AddCommand(newCSVToMarkdownCmd())
	rootCmd.AddCommand(newMarkdownToCSVCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newMCPCmd(app))
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}
