// Package filter narrows and orders list contents for display.
package filter

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tableflip.dev/pokedex/pkg/format"
)

// Order is the direction of a lexicographic sort.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// ParseOrder converts "asc"/"desc" (any case) to an Order. Empty means Asc.
func ParseOrder(raw string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(raw))) {
	case "", Asc:
		return Asc, nil
	case Desc:
		return Desc, nil
	}
	return Asc, fmt.Errorf("%w: unknown sort order %q (expected asc or desc)", format.ErrInvalidArgument, raw)
}

// Toggle flips the order.
func (o Order) Toggle() Order {
	if o == Desc {
		return Asc
	}
	return Desc
}

// Arrow is the glyph shown on sort toggles.
func (o Order) Arrow() string {
	if o == Desc {
		return "↑"
	}
	return "↓"
}

// Query is the search state of a single list view.
type Query struct {
	Text  string `json:"query"`
	Order Order  `json:"order"`
}

// FilterAndSort keeps the items whose key contains q.Text (case-insensitive)
// and orders them by key using English collation. Desc negates the
// comparator so equal keys keep their original relative order either way.
// The input slice is never modified.
func FilterAndSort[T any](items []T, q Query, key func(T) string) []T {
	needle := strings.ToLower(strings.TrimSpace(q.Text))

	type keyed struct {
		item T
		key  string
	}
	kept := make([]keyed, 0, len(items))
	for _, item := range items {
		k := key(item)
		if needle != "" && !strings.Contains(strings.ToLower(k), needle) {
			continue
		}
		kept = append(kept, keyed{item: item, key: k})
	}

	col := collate.New(language.English)
	slices.SortStableFunc(kept, func(a, b keyed) int {
		c := col.CompareString(a.key, b.key)
		if q.Order == Desc {
			return -c
		}
		return c
	})

	out := make([]T, len(kept))
	for i, k := range kept {
		out[i] = k.item
	}
	return out
}
