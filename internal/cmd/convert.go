package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/hollowpine/table-cli/internal/cmdutil"
	"github.com/hollowpine/table-cli/internal/document"
	clierrors "github.com/hollowpine/table-cli/internal/errors"
	"github.com/hollowpine/table-cli/internal/table"
	"github.com/hollowpine/table-cli/internal/ui"
)

// readCSVTable loads and parses a CSV source ("-" reads stdin).
func readCSVTable(ctx context.Context, path string) (*table.Table, error) {
	text, err := readSource(ctx, path)
	if err != nil {
		return nil, err
	}
	return table.ReadCSV(strings.NewReader(text))
}

// readMarkdownTable loads and parses a Markdown source ("-" reads stdin).
func readMarkdownTable(ctx context.Context, path string) (*table.Table, error) {
	text, err := readSource(ctx, path)
	if err != nil {
		return nil, err
	}
	return table.ParseMarkdown(strings.NewReader(text))
}

func readSource(ctx context.Context, path string) (string, error) {
	if path != "-" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return "", clierrors.FileNotFoundError(path)
		}
	}
	return cmdutil.ReadInputSource(path, stdinFromContext(ctx))
}

// updateCompanionDoc splices tableContent into the docPath section under
// heading. Failures here are warnings only: the primary conversion has
// already succeeded, and this step never creates the document.
func updateCompanionDoc(ctx context.Context, docPath, heading, tableContent string) {
	u := ui.FromContext(ctx)

	data, err := os.ReadFile(docPath)
	if err != nil {
		if os.IsNotExist(err) {
			u.Warning("%s not found, skipping update", docPath)
		} else {
			u.Warning("failed to read %s: %v", docPath, err)
		}
		return
	}

	updated, err := document.Splice(string(data), heading, tableContent)
	if err != nil {
		u.Warning("failed to update %s: %v", docPath, err)
		return
	}
	if err := os.WriteFile(docPath, []byte(updated), 0o644); err != nil {
		u.Warning("failed to write %s: %v", docPath, err)
		return
	}
	u.Success("Updated %q section in %s", heading, docPath)
}
