// Package types prints the categories the catalog can be filtered by.
package types

import (
	"context"
	"io"

	"tableflip.dev/pokedex/pkg/dex"
	"tableflip.dev/pokedex/pkg/printers"
)

// Types lists the available categories.
type Types struct {
	Service *dex.Service
	JSON    bool
	Out     io.Writer
}

func (t *Types) Do(ctx context.Context) error {
	cats, err := t.Service.Categories(ctx)
	if err != nil {
		return err
	}
	if t.JSON {
		return printers.JSON(printers.Output(t.Out), cats)
	}
	pp := &printers.PrettyPrint{Out: t.Out}
	pp.Types(cats)
	return nil
}
