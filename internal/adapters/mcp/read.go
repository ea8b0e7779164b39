package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jdex/internal/application"
	"jdex/internal/application/commands"
	"jdex/internal/domain"
	"jdex/internal/ports"
)

// RegisterReadTools adds all read-only index tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.IndexStore, repo ports.VaultRepository) {
	s.AddTool(browseTool(), browseHandler(store, repo))
	s.AddTool(searchTool(), searchHandler(store, repo))
	s.AddTool(resolvePathTool(), resolvePathHandler(store, repo))
	s.AddTool(nextIDTool(), nextIDHandler(store))
}

// --- browse ---

func browseTool() mcp.Tool {
	return mcp.NewTool("browse",
		mcp.WithDescription("Browse the Johnny Decimal hierarchy. Without arguments lists areas. With a code lists its children (area→categories, category→ids, id→that entry). Free text falls back to search."),
		mcp.WithString("query",
			mcp.Description("Code to drill into (e.g. 10-19, 11, 11.01) or free text. Omit to list all areas."),
		),
	)
}

func browseHandler(store ports.IndexStore, repo ports.VaultRepository) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		index, err := store.Load()
		if err != nil {
			return toolError(err)
		}

		query := strings.TrimSpace(req.GetString("query", ""))
		results, err := commands.NewBrowseCommand(index, repo.Root(), query).Execute()
		if err != nil {
			return toolError(err)
		}
		return formatResults(results)
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search the index by code or name fragment. Exact code matches rank first, then name prefixes, then substrings."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
		mcp.WithString("level",
			mcp.Description("Restrict results to one level: area, category, or id. Omit for all levels."),
		),
	)
}

func searchHandler(store ports.IndexStore, repo ports.VaultRepository) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		level := domain.LevelNone
		if name := req.GetString("level", ""); name != "" {
			parsed, err := domain.ParseLevelName(name)
			if err != nil {
				return toolError(err)
			}
			level = parsed
		}

		index, err := store.Load()
		if err != nil {
			return toolError(err)
		}

		results := commands.NewSearchCommand(index, repo.Root(), query, level).Execute()
		return formatResults(results)
	}
}

// --- resolve_path ---

func resolvePathTool() mcp.Tool {
	return mcp.NewTool("resolve_path",
		mcp.WithDescription("Get the filesystem path for a Johnny Decimal code."),
		mcp.WithString("code",
			mcp.Description("Code to resolve (e.g. 10-19, 11, 11.01)"),
			mcp.Required(),
		),
	)
}

func resolvePathHandler(store ports.IndexStore, repo ports.VaultRepository) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		code := req.GetString("code", "")
		if code == "" {
			return toolError(fmt.Errorf("code is required"))
		}

		index, err := store.Load()
		if err != nil {
			return toolError(err)
		}

		path, err := application.ResolvePath(repo.Root(), index, code)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(path), nil
	}
}

// --- next_id ---

func nextIDTool() mcp.Tool {
	return mcp.NewTool("next_id",
		mcp.WithDescription("Suggest free id slots in a category: gaps between existing ids plus the next slot past the highest."),
		mcp.WithString("category",
			mcp.Description("Category code (e.g. 11)"),
			mcp.Required(),
		),
	)
}

func nextIDHandler(store ports.IndexStore) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		catCode := req.GetString("category", "")
		if catCode == "" {
			return toolError(fmt.Errorf("category is required"))
		}

		index, err := store.Load()
		if err != nil {
			return toolError(err)
		}

		cat, _ := index.Category(catCode)
		if cat == nil {
			return toolError(&application.NotFoundError{Code: catCode})
		}

		suggestions, full := domain.SuggestSlots(catCode, cat)
		if full {
			return toolError(fmt.Errorf("%w: %s", application.ErrCategoryFull, catCode))
		}

		var sb strings.Builder
		for _, slot := range suggestions.Gaps {
			fmt.Fprintf(&sb, "%s  (gap)\n", slot)
		}
		if suggestions.Append != "" {
			fmt.Fprintf(&sb, "%s  (append)\n", suggestions.Append)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatResults(results []commands.Result) (*mcp.CallToolResult, error) {
	if len(results) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, r := range results {
		sb.WriteString(r.Name)
		if r.Crumb != "" {
			sb.WriteString("  [")
			sb.WriteString(r.Crumb)
			sb.WriteString("]")
		}
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}
