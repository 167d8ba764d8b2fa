package category

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"tableflip.dev/pokedex/pkg/pager"
	"tableflip.dev/pokedex/pkg/pokeapi"
)

type stubLister struct {
	full    []pokeapi.NamedRef
	byType  map[string][]pokeapi.NamedRef
	err     error
	lastRef string
}

func (s *stubLister) List(context.Context) ([]pokeapi.NamedRef, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.full, nil
}

func (s *stubLister) ListByType(_ context.Context, ref string) ([]pokeapi.NamedRef, error) {
	s.lastRef = ref
	if s.err != nil {
		return nil, s.err
	}
	return s.byType[ref], nil
}

func TestResolve(t *testing.T) {
	if got := Resolve(All); got.Kind != KindFull || got.Ref != "" {
		t.Fatalf("unexpected source for All: %+v", got)
	}
	if got := Resolve(""); got.Kind != KindFull {
		t.Fatalf("empty id should resolve to full, got %+v", got)
	}
	if got := Resolve("fire"); got.Kind != KindByCategory || got.Ref != "fire" {
		t.Fatalf("unexpected source for fire: %+v", got)
	}
}

func TestLoad(t *testing.T) {
	l := &stubLister{
		full:   []pokeapi.NamedRef{{Name: "a"}, {Name: "b"}},
		byType: map[string][]pokeapi.NamedRef{"fire": {{Name: "charmander"}}},
	}

	refs, err := Load(context.Background(), Resolve(All), l)
	if err != nil || len(refs) != 2 {
		t.Fatalf("full load: %v %v", refs, err)
	}

	refs, err = Load(context.Background(), Resolve("fire"), l)
	if err != nil || len(refs) != 1 || l.lastRef != "fire" {
		t.Fatalf("category load: %v %v (ref %q)", refs, err, l.lastRef)
	}
}

func TestLoadFailure(t *testing.T) {
	l := &stubLister{err: pokeapi.ErrFetchFailed}
	refs, err := Load(context.Background(), Resolve("fire"), l)
	if !errors.Is(err, ErrResolutionFailed) {
		t.Fatalf("expected ErrResolutionFailed, got %v", err)
	}
	if !errors.Is(err, pokeapi.ErrFetchFailed) {
		t.Fatalf("expected cause to be kept, got %v", err)
	}
	if refs != nil {
		t.Fatalf("expected nil collection on failure, got %v", refs)
	}

	if _, err := Load(context.Background(), Source{Kind: "bogus"}, l); !errors.Is(err, ErrResolutionFailed) {
		t.Fatalf("expected ErrResolutionFailed for unknown kind, got %v", err)
	}
}

func TestLoadUnknownCategory(t *testing.T) {
	l := &stubLister{err: fmt.Errorf("%w: /type/shadow/", pokeapi.ErrNotFound)}
	_, err := Load(context.Background(), Resolve("shadow"), l)
	if !errors.Is(err, ErrResolutionFailed) || !errors.Is(err, ErrUnknown) {
		t.Fatalf("expected unknown category, got %v", err)
	}
	if errors.Is(err, pokeapi.ErrNotFound) {
		t.Fatalf("a missing category must not read as a missing record: %v", err)
	}
}

func TestSelectorResetsPageOnSwitch(t *testing.T) {
	s := NewSelector(8)
	s.SetTotal(100)
	if err := s.SetPage(5); err != nil {
		t.Fatalf("SetPage: %v", err)
	}
	if s.Page().Current != 5 {
		t.Fatalf("expected page 5, got %d", s.Page().Current)
	}

	if !s.Select("fire") {
		t.Fatalf("expected selection change")
	}
	if s.Page().Current != 1 {
		t.Fatalf("expected reset to page 1, got %d", s.Page().Current)
	}
	if s.Source().Ref != "fire" {
		t.Fatalf("unexpected source %+v", s.Source())
	}

	s.SetTotal(6)
	if s.Select("fire") {
		t.Fatalf("re-selecting the same category is not a change")
	}
	if s.Select("") != true || s.Category() != All {
		t.Fatalf("empty selection should switch back to All")
	}
}

func TestSelectorSetPageRejectsOutOfRange(t *testing.T) {
	s := NewSelector(8)
	s.SetTotal(20)
	if err := s.SetPage(4); !errors.Is(err, pager.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if s.Page().Current != 1 {
		t.Fatalf("rejected move must not change state")
	}
	empty := NewSelector(8)
	if err := empty.SetPage(1); err != nil {
		t.Fatalf("page 1 of empty collection is valid: %v", err)
	}
}
