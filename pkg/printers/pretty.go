package printers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/pokedex/pkg/dex"
	"tableflip.dev/pokedex/pkg/filter"
	"tableflip.dev/pokedex/pkg/format"
	"tableflip.dev/pokedex/pkg/pokeapi"
)

const barWidth = 20

// PrettyPrint renders catalog views as colored text.
type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
}

func (pp *PrettyPrint) out() io.Writer {
	return Output(pp.Out)
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, one, many string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	noun := many
	if count == 1 {
		noun = one
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d %s\n", count, noun)
}

// Faint prints a dimmed informational line.
func (pp *PrettyPrint) Faint(msg string) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintln(pp.out(), msg)
}

// Error prints a user facing error message.
func (pp *PrettyPrint) Error(msg string) {
	e := color.New(color.FgRed, color.Bold)
	_, _ = e.Fprintln(pp.out(), msg)
}

// Catalog prints one catalog page followed by its page controls.
func (pp *PrettyPrint) Catalog(greeting string, page *dex.CatalogPage) {
	if greeting != "" {
		pp.Faint(greeting)
		pp.NewLine()
	}

	title := "All Pokémon"
	if page.Category != "" && page.Category != "All" {
		title = format.Capitalize(page.Category)
	}
	pp.TitleWithCount(title, page.State.Total, "entry", "entries")

	if len(page.Records) == 0 {
		pp.Faint(" No Pokémon found")
		pp.NewLine()
		return
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("Name"), bold.Sprint("Type"), bold.Sprint("HP"), bold.Sprint("ATK"), bold.Sprint("DEF"), bold.Sprint("SPD"))
	for _, r := range page.Records {
		stats := statMap(r)
		tbl.AddRow(
			strconv.Itoa(r.ID),
			typeColor(r.PrimaryType()).Sprint(format.DisplayName(r.Name)),
			strings.Join(r.TypeNames(), "/"),
			stats["hp"], stats["attack"], stats["defense"], stats["speed"],
		)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)

	for _, f := range page.Failed {
		pp.Faint(fmt.Sprintf(" could not load %s", f.Name))
	}

	if controls := page.Window.Render(); controls != "" {
		pp.NewLine()
		_, _ = fmt.Fprintf(pp.out(), "  %s   page %d of %d\n", controls, page.State.Current, page.State.Pages())
	}
	pp.NewLine()
}

func statMap(r *pokeapi.Record) map[string]string {
	out := make(map[string]string, len(r.Stats))
	for _, s := range r.Stats {
		out[s.Name] = strconv.Itoa(s.Base)
	}
	return out
}

// Detail prints the detail page of one record.
func (pp *PrettyPrint) Detail(d dex.Detail) {
	tc := typeColor(d.PrimaryType)
	head := color.New(color.Bold)

	pp.NewLine()
	_, _ = tc.Add(color.Bold).Fprintf(pp.out(), "#%d %s\n", d.ID, d.DisplayName)
	if d.Image != "" {
		pp.Faint(d.Image)
	}
	pp.NewLine()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(head.Sprint("Height"), d.Height)
	tbl.AddRow(head.Sprint("Weight"), d.Weight)
	tbl.AddRow(head.Sprint("Types"), strings.Join(d.Types, ", "))
	abilities := make([]string, 0, len(d.Abilities))
	for _, a := range d.Abilities {
		if a.Hidden {
			abilities = append(abilities, a.Name+" (Hidden)")
			continue
		}
		abilities = append(abilities, a.Name)
	}
	tbl.AddRow(head.Sprint("Abilities"), strings.Join(abilities, ", "))
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()

	pp.Title("Base Stats")
	stats := uitable.New()
	stats.Separator = "  "
	for _, s := range d.Stats {
		stats.AddRow(s.Abbrev, strconv.Itoa(s.Base), tc.Sprint(Bar(s.Percent, barWidth)))
	}
	stats.RightAlign(0)
	stats.RightAlign(1)
	_, _ = fmt.Fprintln(pp.out(), stats)
	pp.NewLine()

	pp.Faint(fmt.Sprintf("Moves (%d)", d.MoveCount))
}

// Bar draws a horizontal percentage bar width cells wide.
func Bar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Moves prints a filtered move list.
func (pp *PrettyPrint) Moves(moves []pokeapi.Move, q filter.Query) {
	if len(moves) == 0 {
		pp.Faint(" No moves found")
		pp.NewLine()
		return
	}
	suffix := "s"
	if len(moves) == 1 {
		suffix = ""
	}
	pp.Faint(fmt.Sprintf("Showing %d move%s, sorted %s %s", len(moves), suffix, q.Order, q.Order.Arrow()))
	for _, m := range moves {
		_, _ = fmt.Fprintf(pp.out(), "  %s\n", format.DisplayName(m.Name))
	}
	pp.NewLine()
}

// Types prints the category list.
func (pp *PrettyPrint) Types(cats []pokeapi.Category) {
	pp.TitleWithCount("Types", len(cats), "type", "types")
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, c := range cats {
		tbl.AddRow(typeColor(c.ID).Sprint("●"), c.Name, color.New(color.Faint).Sprint(c.ID))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// NotFound prints the not-found view.
func (pp *PrettyPrint) NotFound(query string) {
	pp.NewLine()
	_, _ = color.New(color.Bold, color.FgRed).Fprintln(pp.out(), "404 Pokémon Not Found!")
	pp.Faint(fmt.Sprintf("%q has fled! It might not exist or the name/ID is incorrect.", query))
	pp.NewLine()
}

// FetchFailedMessage is shown when the remote API could not be reached.
const FetchFailedMessage = "Failed to load Pokémon. Please try again."

// FetchFailed prints the generic load failure line.
func (pp *PrettyPrint) FetchFailed() {
	pp.Error(FetchFailedMessage)
}
