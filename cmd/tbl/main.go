package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/hollowpine/table-cli/internal/cmd"
	"github.com/hollowpine/table-cli/internal/update"
)

// Version information set via ldflags during build
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	app := cmd.NewApp()
	app.Version = Version
	app.Commit = Commit
	app.BuildTime = BuildTime
	err := app.Execute(ctx, os.Args[1:])

	// Check for updates after command execution, for interactive humans
	// only; the notice would pollute piped output streams.
	if err == nil && os.Getenv("TBL_NO_UPDATE_CHECK") == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		// CommandContext carries the --debug flag so the checker can
		// log its GitHub round trip.
		if msg := update.Check(app.CommandContext(), Version); msg != "" {
			fmt.Fprintln(os.Stderr, "\n"+msg)
		}
	}

	if err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
