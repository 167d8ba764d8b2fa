package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerTypesResource(srv, svc)
	registerPokemonTemplate(srv, svc)
}

func registerTypesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"pokedex://types",
		"Types",
		mcp.WithResourceDescription("Every type the Pokédex can be filtered by."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		types, err := svc.ListTypes(ctx)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"types": types,
			"count": len(types),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerPokemonTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"pokedex://pokemon/{id}",
		"Pokémon Details",
		mcp.WithTemplateDescription("Detail page of a single Pokémon by number or name."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, pokemonResourceHandler(svc))
}

func pokemonResourceHandler(svc *Service) server.ResourceTemplateHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := templateArg(request.Params.Arguments["id"])
		if id == "" {
			return nil, fmt.Errorf("pokemon id is required")
		}

		dto, err := svc.GetPokemon(ctx, id)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, dto)
	}
}

// templateArg unwraps a URI template variable, which the server may hand over
// as a string or a single element slice.
func templateArg(v any) string {
	switch a := v.(type) {
	case string:
		return a
	case []string:
		if len(a) > 0 {
			return a[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
