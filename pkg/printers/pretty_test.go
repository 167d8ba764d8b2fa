package printers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/pokedex/pkg/dex"
	"tableflip.dev/pokedex/pkg/filter"
	"tableflip.dev/pokedex/pkg/pager"
	"tableflip.dev/pokedex/pkg/pokeapi"
)

func init() {
	color.NoColor = true
}

func record(id int, name string, types ...string) *pokeapi.Record {
	r := &pokeapi.Record{ID: id, Name: name, Height: 7, Weight: 69}
	for i, t := range types {
		r.Types = append(r.Types, pokeapi.TypeSlot{Slot: i + 1, Name: t})
	}
	r.Stats = []pokeapi.Stat{{Name: "hp", Base: 45}, {Name: "attack", Base: 49}, {Name: "defense", Base: 49}, {Name: "speed", Base: 45}}
	return r
}

func TestCatalog(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}

	state := pager.NewState(2, 2, 5)
	page := &dex.CatalogPage{
		Category: "All",
		State:    state,
		Window:   state.Window(8),
		Records:  []*pokeapi.Record{record(3, "venusaur", "grass", "poison"), record(984, "great-tusk", "ground")},
		Failed:   []pokeapi.NamedRef{{Name: "missingno"}},
	}
	pp.Catalog("Welcome Ash, here you can find your favorite Pokémon.", page)

	got := buf.String()
	for _, want := range []string{
		"Welcome Ash",
		"All Pokémon - 5 entries",
		"Venusaur",
		"Great Tusk",
		"grass/poison",
		"could not load missingno",
		"[2]",
		"page 2 of 3",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestCatalogEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	state := pager.NewState(1, 8, 0)
	pp.Catalog("", &dex.CatalogPage{Category: "fire", State: state, Window: state.Window(8)})

	got := buf.String()
	if !strings.Contains(got, "Fire - 0 entries") {
		t.Fatalf("unexpected title:\n%s", got)
	}
	if !strings.Contains(got, "No Pokémon found") {
		t.Fatalf("expected empty notice:\n%s", got)
	}
}

func TestDetail(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}

	r := record(1, "bulbasaur", "grass", "poison")
	r.Abilities = []pokeapi.Ability{{Name: "overgrow", Slot: 1}, {Name: "chlorophyll", Hidden: true, Slot: 3}}
	r.Moves = []pokeapi.Move{{Name: "tackle"}, {Name: "growl"}}
	pp.Detail(dex.NewDetail(r))

	got := buf.String()
	for _, want := range []string{"#1 Bulbasaur", "0.7 m", "6.9 kg", "grass, poison", "Overgrow, Chlorophyll (Hidden)", "HP", "Moves (2)"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		percent int
		want    string
	}{
		{0, "░░░░░░░░░░"},
		{50, "█████░░░░░"},
		{100, "██████████"},
		{140, "██████████"},
		{-5, "░░░░░░░░░░"},
	}
	for _, tt := range tests {
		if got := Bar(tt.percent, 10); got != tt.want {
			t.Fatalf("Bar(%d): expected %q, got %q", tt.percent, tt.want, got)
		}
	}
}

func TestMoves(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}

	pp.Moves([]pokeapi.Move{{Name: "ice-beam"}}, filter.Query{Order: filter.Desc})
	got := buf.String()
	if !strings.Contains(got, "Showing 1 move, sorted desc") || !strings.Contains(got, "Ice Beam") {
		t.Fatalf("unexpected output:\n%s", got)
	}

	buf.Reset()
	pp.Moves(nil, filter.Query{})
	if !strings.Contains(buf.String(), "No moves found") {
		t.Fatalf("expected empty notice, got:\n%s", buf.String())
	}
}

func TestTypes(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Types([]pokeapi.Category{{ID: "fire", Name: "Fire"}, {ID: "water", Name: "Water"}})

	got := buf.String()
	if !strings.Contains(got, "Types - 2 types") || !strings.Contains(got, "Water") {
		t.Fatalf("unexpected output:\n%s", got)
	}
}

func TestNotFoundAndFetchFailed(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.NotFound("missingno")
	pp.FetchFailed()

	got := buf.String()
	for _, want := range []string{"404 Pokémon Not Found!", `"missingno" has fled!`, FetchFailedMessage} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, map[string]int{"id": 25}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var back map[string]int
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if back["id"] != 25 {
		t.Fatalf("expected id 25, got %v", back)
	}
}
