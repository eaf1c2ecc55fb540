// Package ui provides colored status output for table-cli. Status
// messages go to stderr so stdout stays clean for converted data.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorMode determines when to use colored output.
type ColorMode int

const (
	// ColorAuto automatically detects whether to use colors based on terminal capabilities.
	ColorAuto ColorMode = iota
	// ColorAlways forces colored output regardless of terminal capabilities.
	ColorAlways
	// ColorNever disables all colored output.
	ColorNever
)

// ParseColorMode maps config/flag values to a ColorMode. Unknown values
// fall back to auto.
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}

type uiKey struct{}

// UI prints formatted status messages with color support.
type UI struct {
	out *termenv.Output
}

// New creates a UI writing to stderr with the given color mode. The
// NO_COLOR environment variable (POSIX convention) forces ColorNever.
func New(mode ColorMode) *UI {
	return NewWithWriter(os.Stderr, mode)
}

// NewWithWriter creates a UI writing to w; used by tests to capture output.
func NewWithWriter(w io.Writer, mode ColorMode) *UI {
	if os.Getenv("NO_COLOR") != "" {
		mode = ColorNever
	}

	profile := termenv.ColorProfile()
	switch mode {
	case ColorNever:
		profile = termenv.Ascii
	case ColorAlways:
		if profile == termenv.Ascii {
			profile = termenv.ANSI256
		}
	}

	return &UI{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

// WithUI returns a new context with the UI instance attached.
func WithUI(ctx context.Context, u *UI) context.Context {
	return context.WithValue(ctx, uiKey{}, u)
}

// FromContext retrieves the UI from the context, defaulting to a stderr
// UI with automatic color detection.
func FromContext(ctx context.Context) *UI {
	if u, ok := ctx.Value(uiKey{}).(*UI); ok {
		return u
	}
	return New(ColorAuto)
}

// Success prints a success message in green.
func (u *UI) Success(format string, args ...any) {
	u.line(termenv.ANSIGreen, "✓ ", format, args...)
}

// Warning prints a warning message in yellow.
func (u *UI) Warning(format string, args ...any) {
	u.line(termenv.ANSIYellow, "⚠ ", format, args...)
}

// Error prints an error message in red.
func (u *UI) Error(format string, args ...any) {
	u.line(termenv.ANSIRed, "✗ ", format, args...)
}

// Info prints an informational message in blue.
func (u *UI) Info(format string, args ...any) {
	u.line(termenv.ANSIBlue, "ℹ ", format, args...)
}

func (u *UI) line(color termenv.Color, prefix, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.out, u.out.String(prefix+msg).Foreground(color))
}

// Writer returns the underlying writer.
func (u *UI) Writer() io.Writer {
	return u.out
}
