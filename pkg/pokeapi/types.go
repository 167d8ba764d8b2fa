package pokeapi

// NamedRef is a {name, url} pair as returned by the collection endpoints.
type NamedRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Category is a type that can be used to filter the catalog.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// TypeSlot is one of a record's types. Slot 1 is the primary type.
type TypeSlot struct {
	Slot int    `json:"slot"`
	Name string `json:"name"`
}

// Stat is a named base stat.
type Stat struct {
	Name string `json:"name"`
	Base int    `json:"base"`
}

// Ability is a capability tag, optionally hidden.
type Ability struct {
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
	Slot   int    `json:"slot"`
}

// Move is a named action a record can learn.
type Move struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Record is a single catalog entry. Height is in decimetres, Weight in
// hectograms.
type Record struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Types     []TypeSlot `json:"types"`
	Stats     []Stat     `json:"stats"`
	Abilities []Ability  `json:"abilities"`
	Moves     []Move     `json:"moves"`
	Height    int        `json:"height"`
	Weight    int        `json:"weight"`
	Image     string     `json:"image,omitempty"`
}

// PrimaryType returns the first type name, or "" when there is none.
func (r *Record) PrimaryType() string {
	if r == nil || len(r.Types) == 0 {
		return ""
	}
	return r.Types[0].Name
}

// TypeNames returns the type names in slot order.
func (r *Record) TypeNames() []string {
	names := make([]string, 0, len(r.Types))
	for _, t := range r.Types {
		names = append(names, t.Name)
	}
	return names
}

// wire formats

type listResponse struct {
	Count   int        `json:"count"`
	Results []NamedRef `json:"results"`
}

type typeResponse struct {
	Name    string `json:"name"`
	Pokemon []struct {
		Pokemon NamedRef `json:"pokemon"`
		Slot    int      `json:"slot"`
	} `json:"pokemon"`
}

type pokemonResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Height int    `json:"height"`
	Weight int    `json:"weight"`
	Types  []struct {
		Slot int      `json:"slot"`
		Type NamedRef `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int      `json:"base_stat"`
		Stat     NamedRef `json:"stat"`
	} `json:"stats"`
	Abilities []struct {
		Ability  NamedRef `json:"ability"`
		IsHidden bool     `json:"is_hidden"`
		Slot     int      `json:"slot"`
	} `json:"abilities"`
	Moves []struct {
		Move NamedRef `json:"move"`
	} `json:"moves"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
}

func (p *pokemonResponse) record() *Record {
	r := &Record{
		ID:     p.ID,
		Name:   p.Name,
		Height: p.Height,
		Weight: p.Weight,
		Image:  p.Sprites.Other.OfficialArtwork.FrontDefault,
	}
	if r.Image == "" {
		r.Image = p.Sprites.FrontDefault
	}
	for _, t := range p.Types {
		r.Types = append(r.Types, TypeSlot{Slot: t.Slot, Name: t.Type.Name})
	}
	for _, s := range p.Stats {
		r.Stats = append(r.Stats, Stat{Name: s.Stat.Name, Base: s.BaseStat})
	}
	for _, a := range p.Abilities {
		r.Abilities = append(r.Abilities, Ability{Name: a.Ability.Name, Hidden: a.IsHidden, Slot: a.Slot})
	}
	for _, m := range p.Moves {
		r.Moves = append(r.Moves, Move{Name: m.Move.Name, URL: m.Move.URL})
	}
	return r
}
