package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/pokedex/pkg/category"
	"tableflip.dev/pokedex/pkg/pokeapi"
	"tableflip.dev/pokedex/pkg/printers"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	srv.AddTool(listPokemonTool(), listPokemonHandler(svc))
	srv.AddTool(getPokemonTool(), getPokemonHandler(svc))
	srv.AddTool(searchMovesTool(), searchMovesHandler(svc))
	srv.AddTool(listTypesTool(), listTypesHandler(svc))
}

func listPokemonTool() mcp.Tool {
	return mcp.NewTool(
		"list_pokemon",
		mcp.WithDescription("List one page of the Pokédex, optionally restricted to a type."),
		mcp.WithString("type",
			mcp.Description("Type to filter by, such as fire or water. Defaults to All."),
		),
		mcp.WithNumber("page",
			mcp.Description("1-based page number (default 1)."),
			mcp.Min(1),
		),
		mcp.WithString("query",
			mcp.Description("Case-insensitive substring of the name or number."),
		),
		mcp.WithString("sort",
			mcp.Description("Order of the cards on the page."),
			mcp.Enum("id", "name", "height", "weight"),
		),
	)
}

func listPokemonHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		opts := ListOptions{
			Category: request.GetString("type", category.All),
			Page:     request.GetInt("page", 1),
			Query:    request.GetString("query", ""),
			Sort:     request.GetString("sort", ""),
		}

		page, err := svc.ListPokemon(ctx, opts)
		if err != nil {
			return toolError(err), nil
		}
		return toJSONResult(page)
	}
}

func getPokemonTool() mcp.Tool {
	return mcp.NewTool(
		"get_pokemon",
		mcp.WithDescription("Fetch one Pokémon by national dex number or name."),
		mcp.WithString("id_or_name",
			mcp.Required(),
			mcp.Description("National dex number (1-1025) or name such as great-tusk."),
		),
	)
}

func getPokemonHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		key, err := request.RequireString("id_or_name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.GetPokemon(ctx, key)
		if err != nil {
			return toolError(err), nil
		}
		return toJSONResult(dto)
	}
}

func searchMovesTool() mcp.Tool {
	return mcp.NewTool(
		"search_moves",
		mcp.WithDescription("Search a Pokémon's moves by name."),
		mcp.WithString("id_or_name",
			mcp.Required(),
			mcp.Description("National dex number or name of the Pokémon."),
		),
		mcp.WithString("query",
			mcp.Description("Case-insensitive substring of the move name."),
		),
		mcp.WithString("order",
			mcp.Description("Alphabetical order of the result."),
			mcp.Enum("asc", "desc"),
		),
	)
}

func searchMovesHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		key, err := request.RequireString("id_or_name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		list, err := svc.SearchMoves(ctx, key, request.GetString("query", ""), request.GetString("order", "asc"))
		if err != nil {
			return toolError(err), nil
		}
		return toJSONResult(list)
	}
}

func listTypesTool() mcp.Tool {
	return mcp.NewTool(
		"list_types",
		mcp.WithDescription("List the types the Pokédex can be filtered by."),
	)
}

func listTypesHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		types, err := svc.ListTypes(ctx)
		if err != nil {
			return toolError(err), nil
		}
		return toJSONResult(map[string]any{
			"types": types,
			"count": len(types),
		})
	}
}

// toolError turns catalog errors into tool errors the model can read.
func toolError(err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, category.ErrUnknown):
		return mcp.NewToolResultError("Type not found: " + err.Error())
	case errors.Is(err, pokeapi.ErrNotFound):
		return mcp.NewToolResultError("Pokémon not found: " + err.Error())
	case errors.Is(err, pokeapi.ErrFetchFailed), errors.Is(err, category.ErrResolutionFailed):
		return mcp.NewToolResultError(printers.FetchFailedMessage)
	}
	return mcp.NewToolResultError(err.Error())
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
