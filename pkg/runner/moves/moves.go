// Package moves prints the searchable move list of a Pokémon.
package moves

import (
	"context"
	"io"

	"tableflip.dev/pokedex/pkg/dex"
	"tableflip.dev/pokedex/pkg/filter"
	"tableflip.dev/pokedex/pkg/printers"
)

// Moves filters one record's moves by name.
type Moves struct {
	Service *dex.Service
	Key     string
	Query   filter.Query
	JSON    bool
	Out     io.Writer
}

// Do fetches the record and prints the matching moves.
func (m *Moves) Do(ctx context.Context) error {
	r, err := m.Service.Record(ctx, m.Key)
	if err != nil {
		return err
	}
	found := m.Service.SearchMoves(r, m.Query)

	if m.JSON {
		return printers.JSON(printers.Output(m.Out), found)
	}

	pp := &printers.PrettyPrint{Out: m.Out}
	pp.Moves(found.Moves, filter.Query{Text: found.Query, Order: found.Order})
	return nil
}
