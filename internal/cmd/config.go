package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hollowpine/table-cli/internal/config"
	clierrors "github.com/hollowpine/table-cli/internal/errors"
	"github.com/hollowpine/table-cli/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"cfg"},
		Short:   "Manage CLI configuration",
		Long:    `Manage the table-cli configuration file at ~/.config/table-cli/config.yaml`,
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigPathCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := stdoutFromContext(cmd.Context())
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to format config: %w", err)
			}

			if len(data) == 0 || string(data) == "{}\n" {
				path, _ := config.DefaultConfigPath()
				_, _ = fmt.Fprintf(out, "No configuration file found at %s\n", path)
				_, _ = fmt.Fprintln(out, "\nTo create a config file, use:")
				_, _ = fmt.Fprintln(out, "  tbl config set doc docs/README.md")
				return nil
			}

			_, _ = fmt.Fprint(out, string(data))
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in ~/.config/table-cli/config.yaml

Supported keys:
  output      - Default output format (text, json, ndjson/jsonl, table, yaml)
  color       - Default color mode (auto, always, never)
  doc         - Companion document updated after CSV conversions
  doc_heading - Section heading replaced in the companion document
  default_csv - Input used by csv2md when no arguments are given
  default_md  - Input used by md2csv when no arguments are given
  update_doc  - Automatically update the companion document (true/false)

Examples:
  tbl config set output json
  tbl config set doc docs/STATUS.md
  tbl config set doc_heading "## Data"
  tbl config set update_doc false`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := stdoutFromContext(cmd.Context())
			key, value := args[0], args[1]

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			switch key {
			case "output":
				format, err := output.ParseFormat(value)
				if err != nil {
					return err
				}
				cfg.Output = string(format)
			case "color":
				switch strings.ToLower(value) {
				case "auto", "always", "never":
					cfg.Color = strings.ToLower(value)
				default:
					return clierrors.NewUserError(
						fmt.Sprintf("invalid color mode %q", value),
						"Use one of: auto, always, never",
					)
				}
			case "doc":
				cfg.Doc = value
			case "doc_heading":
				cfg.DocHeading = value
			case "default_csv":
				cfg.DefaultCSV = value
			case "default_md":
				cfg.DefaultMD = value
			case "update_doc":
				enabled, err := strconv.ParseBool(value)
				if err != nil {
					return clierrors.NewUserError(
						fmt.Sprintf("invalid update_doc value %q", value),
						"Use true or false",
					)
				}
				cfg.UpdateDoc = &enabled
			default:
				return clierrors.NewUserError(
					fmt.Sprintf("unknown configuration key %q", key),
					"Supported keys: output, color, doc, doc_heading, default_csv, default_md, update_doc",
				)
			}

			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(out, "Set %s = %s\n", key, value)
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(stdoutFromContext(cmd.Context()), path)
			return nil
		},
	}
}
