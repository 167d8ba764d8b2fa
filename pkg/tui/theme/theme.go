package theme

import (
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/pokedex/pkg/format"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header   HeaderTheme
	Footer   FooterTheme
	Catalog  CatalogTheme
	Detail   DetailTheme
	NotFound NotFoundTheme
}

// HeaderTheme styles the title bar and greeting.
type HeaderTheme struct {
	Title    lipgloss.Style
	Greeting lipgloss.Style
	Category lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// CatalogTheme styles the card list and its pager.
type CatalogTheme struct {
	Row         lipgloss.Style
	SelectedRow lipgloss.Style
	Number      lipgloss.Style
	Pager       lipgloss.Style
	Empty       lipgloss.Style
	Failed      lipgloss.Style
}

// DetailTheme styles the single Pokémon view.
type DetailTheme struct {
	Frame    lipgloss.Style
	Name     lipgloss.Style
	Label    lipgloss.Style
	Section  lipgloss.Style
	Hidden   lipgloss.Style
	BarEmpty lipgloss.Style
	Move     lipgloss.Style
}

// NotFoundTheme styles the 404 view.
type NotFoundTheme struct {
	Frame   lipgloss.Style
	Code    lipgloss.Style
	Message lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	faint := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	return Theme{
		Header: HeaderTheme{
			Title: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("#EE8130")).
				Padding(0, 1),
			Greeting: faint,
			Category: lipgloss.NewStyle().Bold(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: faint,
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},
		Catalog: CatalogTheme{
			Row:         lipgloss.NewStyle().PaddingLeft(2),
			SelectedRow: lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(lipgloss.Color("212")),
			Number:      faint,
			Pager:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
			Empty:       faint.Italic(true),
			Failed:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Detail: DetailTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 2),
			Name:     lipgloss.NewStyle().Bold(true),
			Label:    faint.Width(10),
			Section:  lipgloss.NewStyle().Bold(true).Underline(true).MarginTop(1),
			Hidden:   faint.Italic(true),
			BarEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Move:     lipgloss.NewStyle().PaddingLeft(2),
		},
		NotFound: NotFoundTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				Padding(1, 4),
			Code:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
			Message: lipgloss.NewStyle(),
		},
	}
}

// TypeBadge renders a type name on its type color.
func TypeBadge(typeName string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color(format.TypeColor(typeName))).
		Padding(0, 1).
		Render(typeName)
}

// TypeText renders s in the color of typeName.
func TypeText(typeName, s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(format.TypeColor(typeName))).Render(s)
}
