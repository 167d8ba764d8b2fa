// Package dex is the application layer shared by the CLI, the terminal UI,
// the HTTP API and the MCP server.
package dex

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tableflip.dev/pokedex/pkg/category"
	"tableflip.dev/pokedex/pkg/filter"
	"tableflip.dev/pokedex/pkg/pager"
	"tableflip.dev/pokedex/pkg/pokeapi"
	"tableflip.dev/pokedex/pkg/trainer"
)

const (
	// DefaultPageSize is how many cards a catalog page holds.
	DefaultPageSize = pager.DefaultPageSize
	// DefaultConcurrency bounds in-flight card fetches per page.
	DefaultConcurrency = 4
)

// ErrInvalidInput is returned for empty search input.
var ErrInvalidInput = trainer.ErrInvalidInput

// API is the remote data source.
type API interface {
	category.Lister
	Types(ctx context.Context) ([]pokeapi.Category, error)
	Record(ctx context.Context, idOrName string) (*pokeapi.Record, error)
	RecordByRef(ctx context.Context, ref string) (*pokeapi.Record, error)
}

// Service provides the catalog operations.
type Service struct {
	API         API
	PageSize    int
	BlockSize   int
	Concurrency int
	Logger      *zap.Logger
}

// CatalogRequest selects one catalog page. Pages start at 1; callers
// substitute 1 when the user gave none.
type CatalogRequest struct {
	Category string
	Page     int
	Query    string
	Sort     filter.SortKey
}

// CatalogPage is one rendered page of the catalog.
type CatalogPage struct {
	Category string             `json:"category"`
	Source   category.Source    `json:"source"`
	State    pager.State        `json:"state"`
	Window   pager.Window       `json:"window"`
	Refs     []pokeapi.NamedRef `json:"refs"`
	Records  []*pokeapi.Record  `json:"records"`
	Failed   []pokeapi.NamedRef `json:"failed,omitempty"`
}

func (s *Service) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *Service) pageSize() int {
	if s.PageSize <= 0 {
		return DefaultPageSize
	}
	return s.PageSize
}

func (s *Service) blockSize() int {
	if s.BlockSize <= 0 {
		return pager.DefaultBlockSize
	}
	return s.BlockSize
}

func (s *Service) api() (API, error) {
	if s.API == nil {
		return nil, errors.New("dex: no api configured")
	}
	return s.API, nil
}

// Catalog loads the collection for req.Category, narrows it by req.Query,
// and fetches the records on the requested page. Records that fail to load
// are left out of Records and listed in Failed.
func (s *Service) Catalog(ctx context.Context, req CatalogRequest) (*CatalogPage, error) {
	api, err := s.api()
	if err != nil {
		return nil, err
	}

	sel := category.NewSelector(s.pageSize())
	sel.Select(req.Category)

	refs, err := category.Load(ctx, sel.Source(), api)
	if err != nil {
		return nil, err
	}
	refs = filter.MatchRefs(refs, req.Query)
	sel.SetTotal(len(refs))

	if err := sel.SetPage(req.Page); err != nil {
		return nil, err
	}

	state := sel.Page()
	lo, hi := state.Bounds()
	out := &CatalogPage{
		Category: sel.Category(),
		Source:   sel.Source(),
		State:    state,
		Window:   state.Window(s.blockSize()),
		Refs:     refs[lo:hi],
	}

	records, failed, err := s.fetchCards(ctx, out.Refs)
	if err != nil {
		return nil, err
	}
	out.Records = filter.SortRecords(records, req.Sort)
	out.Failed = failed
	return out, nil
}

func (s *Service) fetchCards(ctx context.Context, refs []pokeapi.NamedRef) ([]*pokeapi.Record, []pokeapi.NamedRef, error) {
	limit := s.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	results := make([]*pokeapi.Record, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, ref := range refs {
		g.Go(func() error {
			r, err := s.API.RecordByRef(gctx, ref.URL)
			if err != nil {
				s.logger().Warn("card fetch failed", zap.String("name", ref.Name), zap.Error(err))
				return nil
			}
			results[i] = r
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", pokeapi.ErrFetchFailed, err)
	}

	records := make([]*pokeapi.Record, 0, len(refs))
	var failed []pokeapi.NamedRef
	for i, r := range results {
		if r == nil {
			failed = append(failed, refs[i])
			continue
		}
		records = append(records, r)
	}
	return records, failed, nil
}

// NormalizeSearch trims and lower-cases a name or id typed by the user.
func NormalizeSearch(input string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(input))
	if key == "" {
		return "", fmt.Errorf("%w: please enter a Pokémon name or ID", ErrInvalidInput)
	}
	return key, nil
}

// Record fetches one record by id or name.
func (s *Service) Record(ctx context.Context, idOrName string) (*pokeapi.Record, error) {
	api, err := s.api()
	if err != nil {
		return nil, err
	}
	key, err := NormalizeSearch(idOrName)
	if err != nil {
		return nil, err
	}
	return api.Record(ctx, key)
}

// Categories lists the types that can filter the catalog.
func (s *Service) Categories(ctx context.Context) ([]pokeapi.Category, error) {
	api, err := s.api()
	if err != nil {
		return nil, err
	}
	return api.Types(ctx)
}

// Moves filters and orders a record's moves by name.
func (s *Service) Moves(r *pokeapi.Record, q filter.Query) []pokeapi.Move {
	if r == nil {
		return []pokeapi.Move{}
	}
	return filter.FilterAndSort(r.Moves, q, func(m pokeapi.Move) string { return m.Name })
}

// MoveList is the result of a move search on one record.
type MoveList struct {
	Name  string         `json:"name"`
	Query string         `json:"query"`
	Order filter.Order   `json:"order"`
	Count int            `json:"count"`
	Moves []pokeapi.Move `json:"moves"`
}

// SearchMoves wraps Moves with the query that produced it.
func (s *Service) SearchMoves(r *pokeapi.Record, q filter.Query) MoveList {
	if q.Order == "" {
		q.Order = filter.Asc
	}
	moves := s.Moves(r, q)
	out := MoveList{Query: q.Text, Order: q.Order, Count: len(moves), Moves: moves}
	if r != nil {
		out.Name = r.Name
	}
	return out
}
