package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"tableflip.dev/pokedex/pkg/category"
	"tableflip.dev/pokedex/pkg/dex"
	"tableflip.dev/pokedex/pkg/filter"
	"tableflip.dev/pokedex/pkg/pokeapi"
	"tableflip.dev/pokedex/pkg/pokeapi/pokeapitest"
	"tableflip.dev/pokedex/pkg/printers"
	"tableflip.dev/pokedex/pkg/trainer"
	"tableflip.dev/pokedex/pkg/tui/events"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newModel(t *testing.T, name string) (Model, *pokeapitest.Server) {
	t.Helper()
	fake := pokeapitest.New(t)
	tr := trainer.New()
	if name != "" {
		if err := tr.Set(name); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	svc := &dex.Service{API: pokeapi.New(fake.BaseURL()), PageSize: 4}
	return New(context.Background(), Options{Service: svc, Trainer: tr}), fake
}

// fetch runs cmd and keeps only the fetch results it produces. It must only
// be given commands that do not wait on timers.
func fetch(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, fetch(c)...)
		}
		return out
	case events.CatalogLoadedMsg, events.TypesLoadedMsg, events.RecordLoadedMsg:
		return []tea.Msg{msg}
	}
	return nil
}

func update(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loaded returns a model showing the first page of the full catalog.
func loaded(t *testing.T) (Model, *pokeapitest.Server) {
	t.Helper()
	m, fake := newModel(t, "Ash")
	m, _ = update(t, m, fetch(m.Init())...)
	if m.page == nil {
		t.Fatalf("expected first page to load, err=%v", m.err)
	}
	return m, fake
}

func TestTrainerPrompt(t *testing.T) {
	m, _ := newModel(t, "")
	if m.screen != screenTrainer {
		t.Fatalf("expected trainer prompt, got screen %d", m.screen)
	}

	m, _ = update(t, m, keyRunes("A"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenTrainer || !strings.Contains(m.nameErr, "at least 2") {
		t.Fatalf("expected short name to be rejected, got %q", m.nameErr)
	}

	m, cmd := update(t, m, keyRunes("sh"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenCatalog || !m.loading || cmd == nil {
		t.Fatalf("expected catalog load after valid name")
	}
	if m.trainer.Name() != "Ash" {
		t.Fatalf("expected trainer Ash, got %q", m.trainer.Name())
	}
	m, _ = update(t, m, fetch(cmd)...)
	if !strings.Contains(m.View(), "Welcome Ash") {
		t.Fatalf("expected greeting in view:\n%s", m.View())
	}
}

func TestCatalogFirstPage(t *testing.T) {
	m, _ := loaded(t)

	if m.loading {
		t.Fatalf("expected loading to finish")
	}
	if got := m.page.Records[0].Name; got != "bulbasaur" {
		t.Fatalf("expected bulbasaur first, got %s", got)
	}
	view := m.View()
	for _, want := range []string{"All Pokémon - 20 entries", "Bulbasaur", "Charmander", "page 1 of 5"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestStaleCatalogResultIsDropped(t *testing.T) {
	m, _ := loaded(t)
	right := tea.KeyMsg{Type: tea.KeyRight}

	m, toPage2 := update(t, m, right)
	m, toPage3 := update(t, m, right)
	page2, page3 := fetch(toPage2), fetch(toPage3)

	m, _ = update(t, m, page3...)
	m, _ = update(t, m, page2...)

	if m.page.State.Current != 3 || m.page.Records[0].Name != "blastoise" {
		t.Fatalf("expected page 3 to win, got page %d starting %s", m.page.State.Current, m.page.Records[0].Name)
	}
	if m.loading {
		t.Fatalf("expected loading to be cleared by the current result")
	}
}

func TestStaleResultBeforeCurrentKeepsLoading(t *testing.T) {
	m, _ := loaded(t)
	right := tea.KeyMsg{Type: tea.KeyRight}

	m, toPage2 := update(t, m, right)
	m, _ = update(t, m, right)

	m, _ = update(t, m, fetch(toPage2)...)
	if !m.loading || m.page.State.Current != 1 {
		t.Fatalf("expected superseded result to be ignored, page=%d loading=%v", m.page.State.Current, m.loading)
	}
}

func TestFailedPageFetchKeepsPosition(t *testing.T) {
	m, fake := loaded(t)
	fake.Break("/pokemon")
	right := tea.KeyMsg{Type: tea.KeyRight}

	m, cmd := update(t, m, right)
	if m.target != 2 {
		t.Fatalf("expected page 2 to be requested, got %d", m.target)
	}
	m, _ = update(t, m, fetch(cmd)...)
	if m.err == nil {
		t.Fatalf("expected the page fetch to fail")
	}
	if m.sel.Page().Current != 1 || m.page.State.Current != 1 || m.target != 1 {
		t.Fatalf("expected to stay on page 1, selector=%d shown=%d target=%d",
			m.sel.Page().Current, m.page.State.Current, m.target)
	}

	m, cmd = update(t, m, right)
	if cmd == nil || m.target != 2 {
		t.Fatalf("expected next to request page 2 again, got %d", m.target)
	}
}

func TestCategorySwitchResetsPage(t *testing.T) {
	m, _ := loaded(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, fetch(cmd)...)
	if m.sel.Page().Current != 2 {
		t.Fatalf("expected page 2, got %d", m.sel.Page().Current)
	}

	m, cmd = update(t, m, keyRunes("t"))
	if m.screen != screenTypes {
		t.Fatalf("expected type picker")
	}
	m, _ = update(t, m, fetch(cmd)...)
	if len(m.typeOptions()) != len(pokeapitest.TypeNames)+1 {
		t.Fatalf("expected All plus every type, got %d", len(m.typeOptions()))
	}

	for i := 0; i < len(m.typeOptions()) && m.typeOptions()[m.typeCursor].ID != "fire"; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.typeOptions()[m.typeCursor].ID != "fire" {
		t.Fatalf("fire not offered by the type picker")
	}
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.sel.Category() != "fire" || m.sel.Page().Current != 1 {
		t.Fatalf("expected fire page 1, got %s page %d", m.sel.Category(), m.sel.Page().Current)
	}
	if m.page != nil {
		t.Fatalf("expected previous category's page to be cleared")
	}

	m, _ = update(t, m, fetch(cmd)...)
	if m.page.Category != "fire" || m.page.State.Total != 6 || m.page.Records[0].Name != "charmander" {
		t.Fatalf("unexpected fire page %+v", m.page.State)
	}

	m, cmd = update(t, m, keyRunes("t"), tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.sel.Category() != "fire" {
		t.Fatalf("reselecting the same category should not reload")
	}
}

func TestSortCycle(t *testing.T) {
	m, _ := loaded(t)

	m, _ = update(t, m, keyRunes("s"), keyRunes("s"))
	if m.sort != filter.ByName {
		t.Fatalf("expected name sort, got %q", m.sort)
	}
	names := []string{}
	for _, r := range m.visible() {
		names = append(names, r.Name)
	}
	want := []string{"bulbasaur", "charmander", "ivysaur", "venusaur"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, names)
	}

	for range len(sortCycle) - 2 {
		m, _ = update(t, m, keyRunes("s"))
	}
	if m.sort != "" {
		t.Fatalf("expected sort to wrap to catalog order, got %q", m.sort)
	}
}

func TestOpenCard(t *testing.T) {
	m, fake := loaded(t)
	before := fake.Requests()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenDetail || m.record.Name != "ivysaur" {
		t.Fatalf("expected ivysaur detail, got screen %d", m.screen)
	}
	if fake.Requests() != before {
		t.Fatalf("opening a loaded card should not fetch")
	}
	view := m.View()
	for _, want := range []string{"Ivysaur", "Base Stats", "Abilities"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenCatalog || m.record != nil {
		t.Fatalf("expected to return to the catalog")
	}
}

func TestMoveFilterAndOrder(t *testing.T) {
	m, _ := loaded(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, keyRunes("/"))
	if !m.filtering {
		t.Fatalf("expected move filter to take focus")
	}
	m, _ = update(t, m, keyRunes("e"), tea.KeyMsg{Type: tea.KeyEnter}, keyRunes("o"))
	if m.filtering || m.order != filter.Desc {
		t.Fatalf("expected blurred filter and desc order, got filtering=%v order=%s", m.filtering, m.order)
	}

	var names []string
	for _, mv := range m.dex.Moves(m.record, m.moveQuery()) {
		names = append(names, mv.Name)
	}
	want := []string{"tackle", "ice-beam", "flamethrower", "ember"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, names)
	}
	if !strings.Contains(m.View(), "Moves (4 of 5)") {
		t.Fatalf("expected filtered move count in view:\n%s", m.View())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.moves.Value() != "" || m.order != filter.Asc {
		t.Fatalf("expected move query to reset when opening another record")
	}
}

func TestSearchNotFound(t *testing.T) {
	m, _ := loaded(t)

	m, _ = update(t, m, keyRunes("/"))
	if !m.searching {
		t.Fatalf("expected search to take focus")
	}
	m, cmd := update(t, m, keyRunes("MissingNo"), tea.KeyMsg{Type: tea.KeyEnter})
	if !m.fetching {
		t.Fatalf("expected search to be in flight")
	}
	m, _ = update(t, m, fetch(cmd)...)

	if m.screen != screenNotFound || m.missing != "missingno" {
		t.Fatalf("expected not found screen for missingno, got screen %d %q", m.screen, m.missing)
	}
	view := m.View()
	for _, want := range []string{"404", "Pokémon Not Found!", `"missingno" has fled!`} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenCatalog {
		t.Fatalf("expected to return to the catalog")
	}
}

func TestSearchFindsRecord(t *testing.T) {
	m, _ := loaded(t)

	m, cmd := update(t, m, keyRunes("/"), keyRunes(" 25 "), tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, fetch(cmd)...)
	if m.screen != screenDetail || m.record.Name != "pikachu" {
		t.Fatalf("expected pikachu detail, got screen %d", m.screen)
	}
}

func TestSearchOutOfRangeID(t *testing.T) {
	m, fake := loaded(t)
	before := fake.Requests()

	m, cmd := update(t, m, keyRunes("/"), keyRunes("2000"), tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.screen != screenNotFound || m.missing != "2000" {
		t.Fatalf("expected immediate not found for 2000, got screen %d", m.screen)
	}
	if fake.Requests() != before {
		t.Fatalf("out of range ids should not be fetched")
	}
}

func TestSearchRejectsEmptyInput(t *testing.T) {
	m, _ := loaded(t)

	m, cmd := update(t, m, keyRunes("/"), tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || !errors.Is(m.err, dex.ErrInvalidInput) || !m.searching {
		t.Fatalf("expected invalid input and search to stay open, got %v", m.err)
	}
}

func TestCancelledSearchIsDropped(t *testing.T) {
	m, _ := loaded(t)

	m, cmd := update(t, m, keyRunes("/"), keyRunes("pikachu"), tea.KeyMsg{Type: tea.KeyEnter})
	result := fetch(cmd)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, result...)

	if m.screen != screenCatalog || m.record != nil {
		t.Fatalf("expected cancelled search result to be ignored")
	}
}

func TestFetchFailure(t *testing.T) {
	m, fake := newModel(t, "Ash")
	fake.Break("/pokemon")

	m, _ = update(t, m, fetch(m.Init())...)
	if m.err == nil || m.loading {
		t.Fatalf("expected fetch failure, got err=%v loading=%v", m.err, m.loading)
	}
	if !strings.Contains(m.View(), printers.FetchFailedMessage) {
		t.Fatalf("expected failure message in view:\n%s", m.View())
	}

	m, cmd := update(t, m, keyRunes("r"))
	if cmd == nil || !m.loading || m.err != nil {
		t.Fatalf("expected retry to reload")
	}
}

func TestTypeOptions(t *testing.T) {
	m, _ := newModel(t, "Ash")
	m.types = []pokeapi.Category{{ID: "fire", Name: "Fire"}}

	opts := m.typeOptions()
	if len(opts) != 2 || opts[0].ID != category.All || opts[1].ID != "fire" {
		t.Fatalf("unexpected options %+v", opts)
	}
	if m.typeIndex("fire") != 1 || m.typeIndex("ghost") != 0 {
		t.Fatalf("unexpected type index")
	}
}

func TestRunRequiresService(t *testing.T) {
	if err := Run(context.Background(), Options{}); err == nil {
		t.Fatalf("expected error without a service")
	}
}
