package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"doctools/internal/application/commands"
	"doctools/internal/domain"
	"doctools/internal/ports"
)

// RegisterReadTools adds all read-only documentation tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.DocsRepository) {
	s.AddTool(indexTool(), indexHandler(repo))
	s.AddTool(tocPreviewTool(), tocPreviewHandler(repo))
}

// --- index ---

func indexTool() mcp.Tool {
	return mcp.NewTool("index",
		mcp.WithDescription("Build the repository index: every issue heading in quick-reference/, detailed-guides/ and platform-specific/, as markdown links grouped by category."),
	)
}

func indexHandler(repo ports.DocsRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewBuildIndexCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, category := range domain.Categories() {
			links := result.Index[category]
			fmt.Fprintf(&sb, "%s (%d)\n", category, len(links))
			for _, link := range links {
				fmt.Fprintf(&sb, "  - %s\n", link)
			}
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(&sb, "warning: %v\n", w)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- toc_preview ---

func tocPreviewTool() mcp.Tool {
	return mcp.NewTool("toc_preview",
		mcp.WithDescription("Render the Table of Contents block a toc update would write for a markdown file, without touching the file."),
		mcp.WithString("path",
			mcp.Description("Markdown file path, relative to the repository root"),
			mcp.Required(),
		),
		mcp.WithNumber("max_depth",
			mcp.Description("Maximum header depth to include (default 6)"),
		),
		mcp.WithNumber("min_depth",
			mcp.Description("Minimum header depth to include (default 1)"),
		),
	)
}

func tocPreviewHandler(repo ports.DocsRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}

		cmd := commands.NewPreviewCommand(repo, nil, path)
		cmd.MaxDepth = req.GetInt("max_depth", 6)
		cmd.MinDepth = req.GetInt("min_depth", 1)

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if result.TOC == "" {
			return mcp.NewToolResultText("No headers found."), nil
		}
		return mcp.NewToolResultText(result.TOC), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
