// Package cmdutil provides small helpers shared by the CLI commands.
package cmdutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ReadInputSource reads input from a file path, or from stdin when
// path is "-". A nil stdin falls back to os.Stdin.
func ReadInputSource(path string, stdin io.Reader) (string, error) {
	if path == "" {
		return "", fmt.Errorf("input file path is required")
	}
	if path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %q: %w", path, err)
	}
	return string(data), nil
}

// DeriveMarkdownPath returns the sibling .md path for a CSV input:
// data.csv -> data.md. Inputs without a .csv extension get .md appended.
func DeriveMarkdownPath(csvPath string) string {
	return swapExt(csvPath, ".csv", ".md")
}

// DeriveCSVPath returns the sibling .csv path for a Markdown input:
// table.md -> table.csv. Inputs without a .md extension get .csv appended.
func DeriveCSVPath(mdPath string) string {
	return swapExt(mdPath, ".md", ".csv")
}

func swapExt(path, from, to string) string {
	if strings.EqualFold(filepath.Ext(path), from) {
		return path[:len(path)-len(from)] + to
	}
	return path + to
}
