// Package mcp exposes the table converters as Model Context Protocol
// tools so agents can convert in-memory text without shelling out per
// file.
package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hollowpine/table-cli/internal/table"
)

// NewServer builds the MCP server with both conversion tools registered.
func NewServer(version string) *server.MCPServer {
	s := server.NewMCPServer("table-cli", version, server.WithToolCapabilities(false))

	csvTool := mcp.NewTool("csv_to_markdown",
		mcp.WithDescription("Convert CSV text (first row is the header) to a Markdown pipe table"),
		mcp.WithString("csv",
			mcp.Required(),
			mcp.Description("CSV content with a header row"),
		),
	)
	s.AddTool(csvTool, handleCSVToMarkdown)

	mdTool := mcp.NewTool("markdown_to_csv",
		mcp.WithDescription("Extract a Markdown pipe table and convert it to CSV text"),
		mcp.WithString("markdown",
			mcp.Required(),
			mcp.Description("Markdown containing a pipe table"),
		),
	)
	s.AddTool(mdTool, handleMarkdownToCSV)

	return s
}

// ServeStdio runs the MCP server over stdin/stdout until the client
// disconnects.
func ServeStdio(version string) error {
	return server.ServeStdio(NewServer(version))
}

func handleCSVToMarkdown(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("csv")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	t, err := table.ReadCSV(strings.NewReader(text))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(table.RenderMarkdown(t)), nil
}

func handleMarkdownToCSV(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("markdown")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	t, err := table.ParseMarkdown(strings.NewReader(text))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	csvText, err := table.RenderCSV(t)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(csvText), nil
}
