// Package iocontext carries the process's I/O streams through context
// so commands and tests read and write the same injected streams.
package iocontext

import (
	"context"
	"io"
)

type streamsKey struct{}

type streams struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// WithIO injects the stdin reader and stdout/stderr writers into context.
func WithIO(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) context.Context {
	return context.WithValue(ctx, streamsKey{}, streams{stdin: stdin, stdout: stdout, stderr: stderr})
}

// Stdin returns the stdin reader from context, or nil if not set.
func Stdin(ctx context.Context) io.Reader {
	if s, ok := ctx.Value(streamsKey{}).(streams); ok {
		return s.stdin
	}
	return nil
}

// Stdout returns the stdout writer from context, or nil if not set.
func Stdout(ctx context.Context) io.Writer {
	if s, ok := ctx.Value(streamsKey{}).(streams); ok {
		return s.stdout
	}
	return nil
}

// Stderr returns the stderr writer from context, or nil if not set.
func Stderr(ctx context.Context) io.Writer {
	if s, ok := ctx.Value(streamsKey{}).(streams); ok {
		return s.stderr
	}
	return nil
}

// StdinOrDefault returns stdin from context or the provided default.
func StdinOrDefault(ctx context.Context, def io.Reader) io.Reader {
	if r := Stdin(ctx); r != nil {
		return r
	}
	return def
}

// StdoutOrDefault returns stdout from context or the provided default.
func StdoutOrDefault(ctx context.Context, def io.Writer) io.Writer {
	if w := Stdout(ctx); w != nil {
		return w
	}
	return def
}

// StderrOrDefault returns stderr from context or the provided default.
func StderrOrDefault(ctx context.Context, def io.Writer) io.Writer {
	if w := Stderr(ctx); w != nil {
		return w
	}
	return def
}
