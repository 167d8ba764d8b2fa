// Package category decides which remote collection backs the catalog view
// for a selected type.
package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/pokedex/pkg/pager"
	"tableflip.dev/pokedex/pkg/pokeapi"
)

// All selects the full, unfiltered catalog.
const All = "All"

var (
	// ErrResolutionFailed wraps any failure to load the working collection.
	ErrResolutionFailed = errors.New("category: resolution failed")
	// ErrUnknown is wrapped with ErrResolutionFailed when the remote API has
	// no such category.
	ErrUnknown = errors.New("category: unknown category")
)

// Kind says which endpoint a Source refers to.
type Kind string

const (
	KindFull       Kind = "full"
	KindByCategory Kind = "byCategory"
)

// Source names the remote collection to request.
type Source struct {
	Kind Kind   `json:"endpointKind"`
	Ref  string `json:"ref,omitempty"`
}

// Resolve maps a selected category to its Source. An empty id is treated as
// All.
func Resolve(categoryID string) Source {
	id := strings.TrimSpace(categoryID)
	if id == "" || id == All {
		return Source{Kind: KindFull}
	}
	return Source{Kind: KindByCategory, Ref: id}
}

// Lister is the part of the remote API the resolver needs.
type Lister interface {
	List(ctx context.Context) ([]pokeapi.NamedRef, error)
	ListByType(ctx context.Context, ref string) ([]pokeapi.NamedRef, error)
}

// Load fetches the working collection for src. On failure the returned
// collection is always nil.
func Load(ctx context.Context, src Source, l Lister) ([]pokeapi.NamedRef, error) {
	var (
		refs []pokeapi.NamedRef
		err  error
	)
	switch src.Kind {
	case KindFull:
		refs, err = l.List(ctx)
	case KindByCategory:
		refs, err = l.ListByType(ctx, src.Ref)
	default:
		return nil, fmt.Errorf("%w: unknown source kind %q", ErrResolutionFailed, src.Kind)
	}
	switch {
	case errors.Is(err, pokeapi.ErrNotFound):
		return nil, fmt.Errorf("%w: %w %q", ErrResolutionFailed, ErrUnknown, src.Ref)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrResolutionFailed, err)
	}
	return refs, nil
}

// Selector tracks the selected category of one catalog view together with
// its pagination state.
type Selector struct {
	category string
	page     pager.State
}

// NewSelector starts on All, page 1.
func NewSelector(pageSize int) *Selector {
	return &Selector{category: All, page: pager.NewState(1, pageSize, 0)}
}

// Category returns the selected category id.
func (s *Selector) Category() string {
	return s.category
}

// Page returns the current pagination state.
func (s *Selector) Page() pager.State {
	return s.page
}

// Source resolves the selected category.
func (s *Selector) Source() Source {
	return Resolve(s.category)
}

// Select switches category. Any switch to a different category resets the
// current page to 1 and forgets the previous collection size. It reports
// whether the selection changed.
func (s *Selector) Select(categoryID string) bool {
	id := strings.TrimSpace(categoryID)
	if id == "" {
		id = All
	}
	if id == s.category {
		return false
	}
	s.category = id
	s.page = pager.NewState(1, s.page.Size, 0)
	return true
}

// SetTotal recomputes the pagination state for a freshly loaded collection.
func (s *Selector) SetTotal(total int) {
	s.page = s.page.WithTotal(total)
}

// SetPage moves to page p of the current collection. Out of range pages are
// rejected.
func (s *Selector) SetPage(p int) error {
	if s.page.Total == 0 && p == 1 {
		return nil
	}
	if _, err := s.page.Navigator().GoTo(p); err != nil {
		return err
	}
	s.page = s.page.WithPage(p)
	return nil
}
