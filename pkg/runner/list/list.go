// Package list prints one page of the catalog.
package list

import (
	"context"
	"io"

	"tableflip.dev/pokedex/pkg/dex"
	"tableflip.dev/pokedex/pkg/printers"
	"tableflip.dev/pokedex/pkg/trainer"
)

// List renders a catalog page for a category.
type List struct {
	Service *dex.Service
	Trainer *trainer.Trainer
	Request dex.CatalogRequest
	JSON    bool
	Out     io.Writer
}

// Do fetches and prints the requested page.
func (l *List) Do(ctx context.Context) error {
	page, err := l.Service.Catalog(ctx, l.Request)
	if err != nil {
		return err
	}

	if l.JSON {
		return printers.JSON(printers.Output(l.Out), page)
	}

	greeting := ""
	if l.Trainer.Name() != "" {
		greeting = l.Trainer.Greeting()
	}
	pp := &printers.PrettyPrint{Out: l.Out}
	pp.Catalog(greeting, page)
	return nil
}
