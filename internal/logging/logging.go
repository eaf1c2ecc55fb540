// Package logging configures the global slog logger for the CLI.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Setup installs a text slog handler writing to w (stderr when nil).
// Debug mode lowers the level to Debug; everything else logs at Info.
func Setup(debug bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
