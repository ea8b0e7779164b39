package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jdex/internal/application/commands"
	"jdex/internal/ports"
)

// RegisterWriteTools adds all index-mutating tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, store ports.IndexStore, repo ports.VaultRepository) {
	s.AddTool(rebuildTool(), rebuildHandler(store, repo))
	s.AddTool(createFolderTool(), createFolderHandler(store, repo))
}

// --- rebuild_index ---

func rebuildTool() mcp.Tool {
	return mcp.NewTool("rebuild_index",
		mcp.WithDescription("Rescan the folder hierarchy and replace the cached index."),
	)
}

func rebuildHandler(store ports.IndexStore, repo ports.VaultRepository) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		report, err := commands.NewRebuildCommand(repo, store).Execute()
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Indexed %d areas, %d categories, %d ids.\n",
			report.AreaCount, report.CategoryCount, report.IDCount)
		for _, w := range report.Warnings {
			fmt.Fprintf(&sb, "warning: %s\n", w)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- create_folder ---

func createFolderTool() mcp.Tool {
	return mcp.NewTool("create_folder",
		mcp.WithDescription("Create a new id folder in a category and record it in the index. Omit the slot to take the first suggested one."),
		mcp.WithString("category",
			mcp.Description("Category code (e.g. 11)"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("Folder name without the code prefix (e.g. \"Tax returns\")"),
			mcp.Required(),
		),
		mcp.WithString("slot",
			mcp.Description("Full id code to claim (e.g. 11.03). Omit to auto-pick."),
		),
	)
}

func createFolderHandler(store ports.IndexStore, repo ports.VaultRepository) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		session := commands.CreateSession{
			CategoryCode: req.GetString("category", ""),
			ProposedSlot: req.GetString("slot", ""),
		}
		name := req.GetString("name", "")

		cmd := commands.NewCreateCommand(store, repo)

		if session.ProposedSlot == "" {
			suggestions, err := cmd.Slots(session)
			if err != nil {
				return toolError(err)
			}
			all := suggestions.All()
			if len(all) == 0 {
				return toolError(fmt.Errorf("no slot to suggest in %s, pass one explicitly", session.CategoryCode))
			}
			session.ProposedSlot = all[0]
		}

		result, err := cmd.Execute(commands.CreateRequest{Session: session, Name: name})
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(fmt.Sprintf("Created %s at %s", result.FolderName, result.Path)), nil
	}
}
