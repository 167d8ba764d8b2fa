// Package mcp provides the Model Context Protocol server integration for the
// pokedex.
package mcp

import (
	"context"
	"errors"

	"tableflip.dev/pokedex/pkg/dex"
	"tableflip.dev/pokedex/pkg/filter"
	"tableflip.dev/pokedex/pkg/pager"
	"tableflip.dev/pokedex/pkg/pokeapi"
)

// Service adapts the catalog to transport-friendly projections shared by the
// MCP tools and resources.
type Service struct {
	Dex *dex.Service
}

// CardDTO is a catalog card.
type CardDTO struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName"`
	Types       []string `json:"types"`
	Color       string   `json:"color"`
	Image       string   `json:"image,omitempty"`
}

// PageDTO is one catalog page.
type PageDTO struct {
	Category string       `json:"category"`
	Page     int          `json:"page"`
	Pages    int          `json:"pages"`
	Total    int          `json:"total"`
	Controls string       `json:"controls,omitempty"`
	Window   pager.Window `json:"window"`
	Cards    []CardDTO    `json:"cards"`
	Failed   []string     `json:"failed,omitempty"`
}

// PokemonDTO is a full record together with its display projection.
type PokemonDTO struct {
	Detail dex.Detail     `json:"detail"`
	Moves  []pokeapi.Move `json:"moves"`
}

// ListOptions select a catalog page.
type ListOptions struct {
	Category string
	Page     int
	Query    string
	Sort     string
}

// NewService builds a service wrapper around the catalog.
func NewService(d *dex.Service) *Service {
	return &Service{Dex: d}
}

func (s *Service) dex() (*dex.Service, error) {
	if s.Dex == nil {
		return nil, errors.New("catalog service is not configured")
	}
	return s.Dex, nil
}

// ListPokemon returns one page of the catalog.
func (s *Service) ListPokemon(ctx context.Context, opts ListOptions) (*PageDTO, error) {
	d, err := s.dex()
	if err != nil {
		return nil, err
	}
	sort, err := filter.ParseSortKey(opts.Sort)
	if err != nil {
		return nil, err
	}

	page, err := d.Catalog(ctx, dex.CatalogRequest{
		Category: opts.Category,
		Page:     opts.Page,
		Query:    opts.Query,
		Sort:     sort,
	})
	if err != nil {
		return nil, err
	}

	out := &PageDTO{
		Category: page.Category,
		Page:     page.State.Current,
		Pages:    page.State.Pages(),
		Total:    page.State.Total,
		Controls: page.Window.Render(),
		Window:   page.Window,
		Cards:    make([]CardDTO, 0, len(page.Records)),
	}
	for _, r := range page.Records {
		out.Cards = append(out.Cards, toCard(r))
	}
	for _, f := range page.Failed {
		out.Failed = append(out.Failed, f.Name)
	}
	return out, nil
}

// GetPokemon returns one record by national dex number or name.
func (s *Service) GetPokemon(ctx context.Context, idOrName string) (*PokemonDTO, error) {
	d, err := s.dex()
	if err != nil {
		return nil, err
	}
	r, err := d.Record(ctx, idOrName)
	if err != nil {
		return nil, err
	}
	return &PokemonDTO{Detail: dex.NewDetail(r), Moves: r.Moves}, nil
}

// SearchMoves filters a record's moves by name.
func (s *Service) SearchMoves(ctx context.Context, idOrName, query, order string) (*dex.MoveList, error) {
	d, err := s.dex()
	if err != nil {
		return nil, err
	}
	o, err := filter.ParseOrder(order)
	if err != nil {
		return nil, err
	}
	r, err := d.Record(ctx, idOrName)
	if err != nil {
		return nil, err
	}
	list := d.SearchMoves(r, filter.Query{Text: query, Order: o})
	return &list, nil
}

// ListTypes returns the categories the catalog can be filtered by.
func (s *Service) ListTypes(ctx context.Context) ([]pokeapi.Category, error) {
	d, err := s.dex()
	if err != nil {
		return nil, err
	}
	return d.Categories(ctx)
}

func toCard(r *pokeapi.Record) CardDTO {
	d := dex.NewDetail(r)
	return CardDTO{
		ID:          d.ID,
		Name:        d.Name,
		DisplayName: d.DisplayName,
		Types:       d.Types,
		Color:       d.Color,
		Image:       d.Image,
	}
}
