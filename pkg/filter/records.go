package filter

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tableflip.dev/pokedex/pkg/format"
	"tableflip.dev/pokedex/pkg/pokeapi"
)

// SortKey selects how SortRecords orders records.
type SortKey string

const (
	ByID     SortKey = "id"
	ByName   SortKey = "name"
	ByHeight SortKey = "height"
	ByWeight SortKey = "weight"
)

// SortKeys lists the supported keys.
func SortKeys() []SortKey {
	return []SortKey{ByID, ByName, ByHeight, ByWeight}
}

// ParseSortKey validates raw. Empty keeps the catalog order.
func ParseSortKey(raw string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(raw)))
	if key == "" || slices.Contains(SortKeys(), key) {
		return key, nil
	}
	return "", fmt.Errorf("%w: unknown sort key %q", format.ErrInvalidArgument, raw)
}

// SortRecords returns a copy of records ordered by key. Height and weight sort
// tallest and heaviest first. Unknown keys keep the original order.
func SortRecords(records []*pokeapi.Record, by SortKey) []*pokeapi.Record {
	out := slices.Clone(records)
	switch by {
	case ByID:
		slices.SortStableFunc(out, func(a, b *pokeapi.Record) int { return a.ID - b.ID })
	case ByName:
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b *pokeapi.Record) int { return col.CompareString(a.Name, b.Name) })
	case ByHeight:
		slices.SortStableFunc(out, func(a, b *pokeapi.Record) int { return b.Height - a.Height })
	case ByWeight:
		slices.SortStableFunc(out, func(a, b *pokeapi.Record) int { return b.Weight - a.Weight })
	}
	return out
}

// MatchRefs keeps the references whose name or numeric id contains term.
// An empty term returns refs unchanged.
func MatchRefs(refs []pokeapi.NamedRef, term string) []pokeapi.NamedRef {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return refs
	}
	out := make([]pokeapi.NamedRef, 0, len(refs))
	for _, ref := range refs {
		if strings.Contains(strings.ToLower(ref.Name), needle) {
			out = append(out, ref)
			continue
		}
		if id, err := format.IDFromReference(ref.URL); err == nil && strings.Contains(strconv.Itoa(id), needle) {
			out = append(out, ref)
		}
	}
	return out
}
