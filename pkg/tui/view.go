package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/pokedex/pkg/category"
	"tableflip.dev/pokedex/pkg/dex"
	"tableflip.dev/pokedex/pkg/format"
	"tableflip.dev/pokedex/pkg/pokeapi"
	"tableflip.dev/pokedex/pkg/printers"
	"tableflip.dev/pokedex/pkg/tui/theme"
)

const (
	barWidth     = 20
	defaultMoves = 12
)

// View renders the active screen.
func (m Model) View() string {
	var body string
	var keys help.KeyMap = catalogHelp{m.keys}
	switch m.screen {
	case screenTrainer:
		return m.viewTrainer()
	case screenTypes:
		body = m.viewTypes()
		keys = pickerHelp{m.keys}
	case screenDetail:
		body = m.viewDetail()
		keys = detailHelp{m.keys}
	case screenNotFound:
		body = m.viewNotFound()
		keys = detailHelp{m.keys}
	default:
		body = m.viewCatalog()
	}

	sections := []string{m.viewHeader(), body}
	if status := m.viewStatus(); status != "" {
		sections = append(sections, status)
	}
	sections = append(sections, m.help.View(keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewHeader() string {
	th := m.theme.Header
	title := th.Title.Render("Pokédex")
	if m.trainer.Name() == "" {
		return title + "\n"
	}
	return title + "  " + th.Greeting.Render(m.trainer.Greeting()) + "\n"
}

func (m Model) viewStatus() string {
	th := m.theme.Footer
	switch {
	case m.err != nil:
		return th.Error.Render(errorText(m.err))
	case m.fetching:
		return th.Status.Render(m.spinner.View() + " Fetching...")
	case m.loading:
		return th.Status.Render(m.spinner.View() + " Loading Pokémon...")
	}
	return ""
}

func (m Model) viewTrainer() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Title.Render("Pokédex"))
	b.WriteString("\n\nWhat's your name, trainer?\n\n")
	b.WriteString(m.name.View())
	b.WriteString("\n")
	if m.nameErr != "" {
		b.WriteString(m.theme.Footer.Error.Render(m.nameErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Help.Render("enter to start browsing • esc to quit"))
	return b.String()
}

func (m Model) viewCatalog() string {
	th := m.theme.Catalog
	var b strings.Builder

	title := "All Pokémon"
	if c := m.sel.Category(); c != category.All {
		title = format.Capitalize(c)
	}
	if m.page != nil {
		title += fmt.Sprintf(" - %s entries", format.Thousands(m.page.State.Total))
	}
	if m.sort != "" {
		title += fmt.Sprintf(" (by %s)", m.sort)
	}
	b.WriteString(m.theme.Header.Category.Render(title))
	b.WriteString("\n\n")

	if m.searching {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	if m.page == nil {
		return b.String()
	}

	records := m.visible()
	if len(records) == 0 {
		b.WriteString(th.Empty.Render("No Pokémon found"))
		b.WriteString("\n")
	}
	for i, r := range records {
		line := fmt.Sprintf("%s  %-14s %s", th.Number.Render(fmt.Sprintf("#%04d", r.ID)), format.Truncate(format.DisplayName(r.Name), 14), badges(r.TypeNames()))
		if i == m.cursor {
			b.WriteString(th.SelectedRow.Render("▸ " + line))
		} else {
			b.WriteString(th.Row.Render(line))
		}
		b.WriteString("\n")
	}
	for _, ref := range m.page.Failed {
		b.WriteString(th.Failed.Render("  could not load " + ref.Name))
		b.WriteString("\n")
	}

	if m.page.Window.HasControls() {
		b.WriteString("\n")
		b.WriteString(th.Pager.Render(m.page.Window.Render()))
		b.WriteString(fmt.Sprintf("   page %d of %d", m.page.State.Current, m.page.State.Pages()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewTypes() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Category.Render("Choose a type"))
	b.WriteString("\n\n")
	if m.fetching && m.types == nil {
		return b.String()
	}
	for i, c := range m.typeOptions() {
		label := c.Name
		if c.ID != category.All {
			label = theme.TypeText(c.ID, c.Name)
		}
		if i == m.typeCursor {
			b.WriteString(m.theme.Catalog.SelectedRow.Render("▸ " + label))
		} else {
			b.WriteString(m.theme.Catalog.Row.Render(label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewDetail() string {
	if m.record == nil {
		return ""
	}
	th := m.theme.Detail
	d := dex.NewDetail(m.record)
	var b strings.Builder

	b.WriteString(th.Name.Render(fmt.Sprintf("#%d %s", d.ID, d.DisplayName)))
	b.WriteString("  ")
	b.WriteString(badges(d.Types))
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Status.Render(m.blurb))
	b.WriteString("\n\n")

	b.WriteString(th.Label.Render("Height") + d.Height + "\n")
	b.WriteString(th.Label.Render("Weight") + d.Weight + "\n")
	abilities := make([]string, 0, len(d.Abilities))
	for _, a := range d.Abilities {
		if a.Hidden {
			abilities = append(abilities, a.Name+th.Hidden.Render(" (Hidden)"))
			continue
		}
		abilities = append(abilities, a.Name)
	}
	b.WriteString(th.Label.Render("Abilities") + strings.Join(abilities, ", ") + "\n")

	b.WriteString(th.Section.Render("Base Stats"))
	b.WriteString("\n")
	for _, st := range d.Stats {
		b.WriteString(fmt.Sprintf("%-4s %3d ", st.Abbrev, st.Base))
		b.WriteString(m.bar(d.PrimaryType, st.Percent))
		b.WriteString("\n")
	}

	moves := m.dex.Moves(m.record, m.moveQuery())
	b.WriteString(th.Section.Render(fmt.Sprintf("Moves (%d of %d)", len(moves), d.MoveCount)))
	b.WriteString(fmt.Sprintf("  %s %s\n", m.order, m.order.Arrow()))
	if m.filtering || m.moves.Value() != "" {
		b.WriteString(m.moves.View())
		b.WriteString("\n")
	}
	if len(moves) == 0 {
		b.WriteString(m.theme.Catalog.Empty.Render("No moves found"))
		b.WriteString("\n")
	}
	limit := m.moveLimit()
	for i, mv := range moves {
		if i == limit {
			b.WriteString(th.Move.Render(fmt.Sprintf("… and %d more", len(moves)-limit)))
			b.WriteString("\n")
			break
		}
		b.WriteString(th.Move.Render(format.DisplayName(mv.Name)))
		b.WriteString("\n")
	}

	return th.Frame.BorderForeground(lipgloss.Color(d.Color)).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) viewNotFound() string {
	th := m.theme.NotFound
	body := lipgloss.JoinVertical(lipgloss.Center,
		th.Code.Render("404"),
		th.Message.Render("Pokémon Not Found!"),
		"",
		th.Message.Render(fmt.Sprintf("%q has fled! It might not exist or the name/ID is incorrect.", m.missing)),
	)
	return th.Frame.Render(body)
}

// moveLimit is how many moves fit under the stats block.
func (m Model) moveLimit() int {
	if m.height == 0 {
		return defaultMoves
	}
	return max(m.height-24, 3)
}

func (m Model) bar(typeName string, percent int) string {
	filled := min(max(percent, 0), 100) * barWidth / 100
	return theme.TypeText(typeName, strings.Repeat("█", filled)) +
		m.theme.Detail.BarEmpty.Render(strings.Repeat("░", barWidth-filled))
}

func badges(types []string) string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, theme.TypeBadge(t))
	}
	return strings.Join(out, " ")
}

func errorText(err error) string {
	if errors.Is(err, category.ErrUnknown) {
		return "Type not found"
	}
	if errors.Is(err, pokeapi.ErrFetchFailed) || errors.Is(err, category.ErrResolutionFailed) {
		return printers.FetchFailedMessage
	}
	return err.Error()
}
