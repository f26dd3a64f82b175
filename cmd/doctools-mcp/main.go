package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"doctools/internal/adapters/filesystem"
	mcpadapter "doctools/internal/adapters/mcp"
	"doctools/internal/config"
)

func main() {
	repoFlag := flag.String("repo", config.RepoRoot(), "path to the documentation repository root")
	flag.Parse()

	repo := filesystem.NewRepository(*repoFlag)

	mcpServer := server.NewMCPServer(
		"doctools-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check that returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo)
	mcpadapter.RegisterWriteTools(mcpServer, repo)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("doctools-mcp: %v", err)
	}
}
