// Package format holds the display helpers shared by every pokedex surface.
package format

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/muesli/reflow/truncate"
)

// ErrInvalidArgument is returned when a helper is called with an argument it
// cannot work with, e.g. a zero stat maximum.
var ErrInvalidArgument = errors.New("format: invalid argument")

const (
	// MaxID is the highest national dex number known to the catalog.
	MaxID = 1025
	// DefaultStatMax is the highest value a base stat can take.
	DefaultStatMax = 255
)

var statAbbrevs = map[string]string{
	"hp":              "HP",
	"attack":          "ATK",
	"defense":         "DEF",
	"special-attack":  "SP.ATK",
	"special-defense": "SP.DEF",
	"speed":           "SPD",
}

// DisplayName turns "great-tusk" into "Great Tusk".
func DisplayName(name string) string {
	if name == "" {
		return ""
	}
	words := strings.Split(name, "-")
	for i, w := range words {
		words[i] = upperFirst(w)
	}
	return strings.Join(words, " ")
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// Height renders a height given in decimetres as metres.
func Height(decimetres int) string {
	return fmt.Sprintf("%.1f m", float64(decimetres)/10)
}

// Weight renders a weight given in hectograms as kilograms.
func Weight(hectograms int) string {
	return fmt.Sprintf("%.1f kg", float64(hectograms)/10)
}

// IDFromReference extracts the trailing numeric path segment of a resource
// reference such as "https://pokeapi.co/api/v2/pokemon/25/".
func IDFromReference(ref string) (int, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(ref), "/")
	idx := strings.LastIndex(trimmed, "/")
	id, err := strconv.Atoi(trimmed[idx+1:])
	if err != nil {
		return 0, fmt.Errorf("%w: no numeric id in reference %q", ErrInvalidArgument, ref)
	}
	if id < 1 {
		return 0, fmt.Errorf("%w: id %d in reference %q is not positive", ErrInvalidArgument, id, ref)
	}
	return id, nil
}

// StatAbbrev returns the short label for a stat key. Unknown keys are
// upper-cased as they are.
func StatAbbrev(name string) string {
	if abbrev, ok := statAbbrevs[name]; ok {
		return abbrev
	}
	return strings.ToUpper(name)
}

// IsValidID reports whether v is an integer catalog number in [1, MaxID].
// Strings are accepted when they hold a plain base-10 integer.
func IsValidID(v any) bool {
	var id int64
	switch t := v.(type) {
	case int:
		id = int64(t)
	case int32:
		id = int64(t)
	case int64:
		id = t
	case uint:
		id = int64(t)
	case float64:
		if t != math.Trunc(t) {
			return false
		}
		id = int64(t)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return false
		}
		id = n
	default:
		return false
	}
	return id >= 1 && id <= MaxID
}

// IsNumeric reports whether s parses as a number.
func IsNumeric(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

// StatPercentage returns round(value/max*100). max must be positive.
func StatPercentage(value, max int) (int, error) {
	if max <= 0 {
		return 0, fmt.Errorf("%w: stat max must be > 0, got %d", ErrInvalidArgument, max)
	}
	return int(math.Round(float64(value) / float64(max) * 100)), nil
}

// Truncate cuts text to width printable cells and appends "..." when it
// had to cut anything.
func Truncate(text string, width int) string {
	if width < 0 || utf8.RuneCountInString(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width+3), "...")
}

// Thousands formats n with comma separators.
func Thousands(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// Range returns [lo, hi] inclusive.
func Range(lo, hi int) []int {
	if hi < lo {
		return []int{}
	}
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}

// GroupBy partitions items by key. Each group keeps insertion order, and the
// returned key slice lists keys in the order they were first seen.
func GroupBy[T any, K comparable](items []T, key func(T) K) (map[K][]T, []K) {
	groups := make(map[K][]T)
	order := make([]K, 0)
	for _, item := range items {
		k := key(item)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], item)
	}
	return groups, order
}
