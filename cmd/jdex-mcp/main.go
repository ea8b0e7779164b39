package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jdex/internal/adapters/filesystem"
	"jdex/internal/adapters/jsonstore"
	mcpadapter "jdex/internal/adapters/mcp"
	"jdex/internal/config"
)

func main() {
	rootFlag := flag.String("root", config.Root(), "path to the hierarchy root")
	indexFlag := flag.String("index", config.IndexPath(), "path to the index document")
	flag.Parse()

	store := jsonstore.New(*indexFlag)
	repo := filesystem.NewRepository(*rootFlag)

	mcpServer := server.NewMCPServer(
		"jdex-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store, repo)
	mcpadapter.RegisterWriteTools(mcpServer, store, repo)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("jdex-mcp: %v", err)
	}
}
