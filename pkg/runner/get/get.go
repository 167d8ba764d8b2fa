// Package get prints the detail page of a single Pokémon.
package get

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/pokedex/pkg/dex"
	"tableflip.dev/pokedex/pkg/pokeapi"
	"tableflip.dev/pokedex/pkg/printers"
)

// Get looks up one record by national dex number or name.
type Get struct {
	Service *dex.Service
	Key     string
	JSON    bool
	Out     io.Writer
}

// Do fetches the record. A missing record renders the not-found view in text
// mode and is returned as an error in JSON mode.
func (g *Get) Do(ctx context.Context) error {
	r, err := g.Service.Record(ctx, g.Key)
	if err != nil {
		if errors.Is(err, pokeapi.ErrNotFound) && !g.JSON {
			pp := &printers.PrettyPrint{Out: g.Out}
			pp.NotFound(g.Key)
			return nil
		}
		return err
	}

	detail := dex.NewDetail(r)
	if g.JSON {
		return printers.JSON(printers.Output(g.Out), detail)
	}

	pp := &printers.PrettyPrint{Out: g.Out}
	pp.Detail(detail)
	return nil
}
