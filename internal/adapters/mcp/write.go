package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"doctools/internal/application"
	"doctools/internal/application/commands"
	"doctools/internal/ports"
)

// RegisterWriteTools adds all mutating documentation tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, repo ports.DocsRepository) {
	s.AddTool(updateTOCTool(), updateTOCHandler(repo))
	s.AddTool(updateStatsTool(), updateStatsHandler(repo))
}

// --- update_toc ---

func updateTOCTool() mcp.Tool {
	return mcp.NewTool("update_toc",
		mcp.WithDescription("Generate or refresh the Table of Contents block in a markdown file, or in every markdown file of a directory."),
		mcp.WithString("path",
			mcp.Description("Markdown file or directory, relative to the repository root"),
			mcp.Required(),
		),
		mcp.WithNumber("max_depth",
			mcp.Description("Maximum header depth to include (default 6)"),
		),
		mcp.WithNumber("min_depth",
			mcp.Description("Minimum header depth to include (default 1)"),
		),
		mcp.WithString("insert_after",
			mcp.Description("Insert a new TOC after the first occurrence of this text"),
		),
		mcp.WithBoolean("recursive",
			mcp.Description("Process directories recursively"),
		),
	)
}

func updateTOCHandler(repo ports.DocsRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")

		cmd := commands.NewUpdateTOCCommand(repo, path)
		cmd.MaxDepth = req.GetInt("max_depth", 6)
		cmd.MinDepth = req.GetInt("min_depth", 1)
		cmd.InsertAfter = req.GetString("insert_after", "")
		cmd.Recursive = req.GetBool("recursive", false)

		summary, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, r := range summary.Results {
			switch r.Status {
			case application.StatusAdded:
				fmt.Fprintf(&sb, "added: %s\n", r.Path)
			case application.StatusUpdated:
				fmt.Fprintf(&sb, "updated: %s\n", r.Path)
			case application.StatusSkipped:
				fmt.Fprintf(&sb, "skipped (no headers): %s\n", r.Path)
			case application.StatusFailed:
				fmt.Fprintf(&sb, "failed: %v\n", r.Err)
			}
		}
		fmt.Fprintf(&sb, "processed %d/%d files", summary.Succeeded(), summary.Total())
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- update_stats ---

func updateStatsTool() mcp.Tool {
	return mcp.NewTool("update_stats",
		mcp.WithDescription("Recompute issue counts from the category directories and rewrite the statistics block in the root README.md."),
	)
}

func updateStatsHandler(repo ports.DocsRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewUpdateStatsCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Total Issues: %d\n", result.Stats.TotalIssues)
		fmt.Fprintf(&sb, "Quick Fixes: %d\n", result.Stats.QuickFixes)
		fmt.Fprintf(&sb, "Detailed Guides: %d\n", result.Stats.DetailedGuides)
		fmt.Fprintf(&sb, "Last Updated: %s\n", result.Stats.LastUpdated)
		for _, w := range result.Warnings {
			fmt.Fprintf(&sb, "warning: %v\n", w)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}
