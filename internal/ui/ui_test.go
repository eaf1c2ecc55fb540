package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestMessages(t *testing.T) {
	tests := []struct {
		name  string
		print func(u *UI)
		want  string
	}{
		{name: "success", print: func(u *UI) { u.Success("saved to: %s", "out.md") }, want: "✓ saved to: out.md\n"},
		{name: "warning", print: func(u *UI) { u.Warning("skipping") }, want: "⚠ skipping\n"},
		{name: "error", print: func(u *UI) { u.Error("boom") }, want: "✗ boom\n"},
		{name: "info", print: func(u *UI) { u.Info("using %s", "preview.csv") }, want: "ℹ using preview.csv\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			u := NewWithWriter(&buf, ColorNever)
			tt.print(u)
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input string
		want  ColorMode
	}{
		{"always", ColorAlways},
		{"never", ColorNever},
		{"auto", ColorAuto},
		{"", ColorAuto},
		{"bogus", ColorAuto},
	}
	for _, tt := range tests {
		if got := ParseColorMode(tt.input); got != tt.want {
			t.Errorf("ParseColorMode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFromContextDefault(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext() = nil")
	}
}

func TestWithUI(t *testing.T) {
	var buf bytes.Buffer
	u := NewWithWriter(&buf, ColorNever)
	ctx := WithUI(context.Background(), u)

	FromContext(ctx).Success("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("context UI did not write to injected buffer: %q", buf.String())
	}
}
