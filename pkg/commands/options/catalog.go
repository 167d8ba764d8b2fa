package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/pokedex/pkg/category"
	"tableflip.dev/pokedex/pkg/dex"
	"tableflip.dev/pokedex/pkg/filter"
)

// CatalogOptions select a catalog page.
type CatalogOptions struct {
	Type  string
	Page  int
	Query string
	Sort  string
}

// AddCatalogArgs wires the catalog page flags on cmd.
func AddCatalogArgs(cmd *cobra.Command, o *CatalogOptions) {
	cmd.Flags().StringVarP(&o.Type, "type", "t", category.All,
		"Only list Pokémon of this type.")
	cmd.Flags().IntVarP(&o.Page, "page", "p", 1,
		"Page to show, starting at 1.")
	cmd.Flags().StringVarP(&o.Query, "query", "q", "",
		"Only list Pokémon whose name or number contains this text.")

	keys := make([]string, 0, len(filter.SortKeys()))
	for _, k := range filter.SortKeys() {
		keys = append(keys, string(k))
	}
	cmd.Flags().StringVar(&o.Sort, "sort", "",
		"Order the cards on the page by one of: "+strings.Join(keys, ", ")+".")
}

// Request validates the flags and builds the catalog request.
func (o *CatalogOptions) Request() (dex.CatalogRequest, error) {
	sort, err := filter.ParseSortKey(o.Sort)
	if err != nil {
		return dex.CatalogRequest{}, err
	}
	return dex.CatalogRequest{
		Category: o.Type,
		Page:     o.Page,
		Query:    o.Query,
		Sort:     sort,
	}, nil
}

// MovesOptions filter a move list.
type MovesOptions struct {
	Query string
	Order string
}

// AddMovesArgs wires the move search flags on cmd.
func AddMovesArgs(cmd *cobra.Command, o *MovesOptions) {
	cmd.Flags().StringVarP(&o.Query, "query", "q", "",
		"Only list moves whose name contains this text.")
	cmd.Flags().StringVarP(&o.Order, "order", "o", string(filter.Asc),
		"Alphabetical order, asc or desc.")
}

// FilterQuery validates the flags and builds the move query.
func (o *MovesOptions) FilterQuery() (filter.Query, error) {
	order, err := filter.ParseOrder(o.Order)
	if err != nil {
		return filter.Query{}, err
	}
	return filter.Query{Text: o.Query, Order: order}, nil
}
