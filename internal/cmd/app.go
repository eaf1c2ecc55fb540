// Package cmd wires the cobra command tree for the tbl CLI.
package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hollowpine/table-cli/internal/iocontext"
)

// App owns CLI wiring and execution configuration.
type App struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Version   string
	Commit    string
	BuildTime string

	cmdCtx context.Context
}

// NewApp constructs an App with default settings.
func NewApp() *App {
	return &App{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Version:   "dev",
		Commit:    "unknown",
		BuildTime: "unknown",
	}
}

// CommandContext returns the context the executed command ran with,
// including flag-derived values such as debug mode. It falls back to
// context.Background before any command has run.
func (a *App) CommandContext() context.Context {
	if a.cmdCtx != nil {
		return a.cmdCtx
	}
	return context.Background()
}

// Execute runs the CLI with the provided args.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := newRootCmd(a)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		// Flag-parse errors fail before PersistentPreRunE populates
		// cmdCtx; fall back to a context that still carries streams.
		ectx := a.cmdCtx
		if ectx == nil {
			ectx = iocontext.WithIO(ctx, a.Stdin, a.Stdout, a.Stderr)
		}
		printCommandError(ectx, err)
		return err
	}
	return nil
}

// RootCommand exposes the root Cobra command for embedding/tests.
func (a *App) RootCommand() *cobra.Command {
	return newRootCmd(a)
}
