package format

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

const defaultTypeColor = "#A8A77A"

var typeColors = map[string]string{
	"grass":    "#7AC74C",
	"fire":     "#EE8130",
	"water":    "#6390F0",
	"bug":      "#A6B91A",
	"normal":   "#A8A77A",
	"poison":   "#A33EA1",
	"electric": "#F7D02C",
	"ground":   "#E2BF65",
	"fairy":    "#D685AD",
	"fighting": "#C22E28",
	"psychic":  "#F95587",
	"rock":     "#B6A136",
	"ghost":    "#735797",
	"ice":      "#96D9D6",
	"dragon":   "#6F35FC",
	"dark":     "#705746",
	"steel":    "#B7B7CE",
	"flying":   "#A98FF3",
}

// TypeColor returns the hex color associated with a type, falling back to the
// normal-type color.
func TypeColor(typeName string) string {
	if c, ok := typeColors[typeName]; ok {
		return c
	}
	return defaultTypeColor
}

// TypeRGB returns TypeColor split into 0-255 components.
func TypeRGB(typeName string) (r, g, b uint8) {
	c, err := colorful.Hex(TypeColor(typeName))
	if err != nil {
		c, _ = colorful.Hex(defaultTypeColor)
	}
	return c.RGB255()
}

// RGBToHex renders 0-255 components as "#rrggbb".
func RGBToHex(r, g, b uint8) string {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	return c.Hex()
}

var descriptions = map[string][]string{
	"fire":     {"Burns with passion!", "Hot-headed fighter!", "Flame master!"},
	"water":    {"Flows like water!", "Ocean warrior!", "Tidal force!"},
	"grass":    {"Nature lover!", "Forest guardian!", "Green power!"},
	"electric": {"Shocking power!", "Lightning fast!", "Electric wonder!"},
}

// Describer picks a flavour line for a type. The randomness source is
// injected so callers can make it deterministic.
type Describer struct {
	rng *rand.Rand
}

// NewDescriber returns a Describer drawing from rng.
func NewDescriber(rng *rand.Rand) *Describer {
	return &Describer{rng: rng}
}

// Describe returns one of the lines registered for typeName.
func (d *Describer) Describe(typeName string) string {
	lines, ok := descriptions[typeName]
	if !ok {
		return "Amazing Pokémon!"
	}
	return lines[d.rng.Intn(len(lines))]
}
