package dex

import (
	"tableflip.dev/pokedex/pkg/format"
	"tableflip.dev/pokedex/pkg/pokeapi"
)

// StatLine is one row of the base stats chart.
type StatLine struct {
	Name    string `json:"name"`
	Abbrev  string `json:"abbrev"`
	Base    int    `json:"base"`
	Percent int    `json:"percent"`
}

// AbilityLine is one ability as displayed.
type AbilityLine struct {
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
}

// Detail is the display projection of a record.
type Detail struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	DisplayName string        `json:"displayName"`
	PrimaryType string        `json:"primaryType"`
	Color       string        `json:"color"`
	Types       []string      `json:"types"`
	Height      string        `json:"height"`
	Weight      string        `json:"weight"`
	Abilities   []AbilityLine `json:"abilities"`
	Stats       []StatLine    `json:"stats"`
	MoveCount   int           `json:"moveCount"`
	Image       string        `json:"image,omitempty"`
}

// NewDetail builds the display projection of r.
func NewDetail(r *pokeapi.Record) Detail {
	d := Detail{
		ID:          r.ID,
		Name:        r.Name,
		DisplayName: format.DisplayName(r.Name),
		PrimaryType: r.PrimaryType(),
		Color:       format.TypeColor(r.PrimaryType()),
		Types:       r.TypeNames(),
		Height:      format.Height(r.Height),
		Weight:      format.Weight(r.Weight),
		MoveCount:   len(r.Moves),
		Image:       r.Image,
	}
	for _, a := range r.Abilities {
		d.Abilities = append(d.Abilities, AbilityLine{Name: format.DisplayName(a.Name), Hidden: a.Hidden})
	}
	for _, st := range r.Stats {
		// DefaultStatMax is positive so this cannot fail.
		pct, _ := format.StatPercentage(st.Base, format.DefaultStatMax)
		d.Stats = append(d.Stats, StatLine{
			Name:    st.Name,
			Abbrev:  format.StatAbbrev(st.Name),
			Base:    st.Base,
			Percent: pct,
		})
	}
	return d
}
