// Package tui is the interactive terminal browser for the catalog.
package tui

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tableflip.dev/pokedex/pkg/category"
	"tableflip.dev/pokedex/pkg/dex"
	"tableflip.dev/pokedex/pkg/filter"
	"tableflip.dev/pokedex/pkg/format"
	"tableflip.dev/pokedex/pkg/pokeapi"
	"tableflip.dev/pokedex/pkg/trainer"
	"tableflip.dev/pokedex/pkg/tui/events"
	"tableflip.dev/pokedex/pkg/tui/theme"
)

type screen int

const (
	screenTrainer screen = iota
	screenCatalog
	screenTypes
	screenDetail
	screenNotFound
)

// sortCycle is the order the sort key steps through. The empty key keeps
// the catalog order.
var sortCycle = []filter.SortKey{"", filter.ByID, filter.ByName, filter.ByHeight, filter.ByWeight}

// Options configures the browser.
type Options struct {
	Service *dex.Service
	Trainer *trainer.Trainer
	Logger  *zap.Logger
	NoColor bool
}

// Model is the root Bubble Tea model. Each view that fetches owns a
// dex.Sequence; results carrying an older ticket are dropped.
type Model struct {
	ctx      context.Context
	dex      *dex.Service
	trainer  *trainer.Trainer
	log      *zap.Logger
	theme    theme.Theme
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	describe *format.Describer

	screen        screen
	width, height int
	err           error

	name    textinput.Model
	nameErr string

	sel        *category.Selector
	target     int // page requested; committed to sel once it loads
	catalogSeq *dex.Sequence
	page       *dex.CatalogPage
	sort       filter.SortKey
	cursor     int
	loading    bool

	search    textinput.Model
	searching bool
	recordSeq *dex.Sequence
	fetching  bool
	missing   string

	typesSeq   *dex.Sequence
	types      []pokeapi.Category
	typeCursor int

	record    *pokeapi.Record
	blurb     string
	moves     textinput.Model
	filtering bool
	order     filter.Order
}

// New builds the model. Without a trainer name the browser opens on the
// name prompt; otherwise it starts loading the first catalog page.
func New(ctx context.Context, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	tr := opts.Trainer
	if tr == nil {
		tr = trainer.New()
	}
	pageSize := dex.DefaultPageSize
	if opts.Service != nil && opts.Service.PageSize > 0 {
		pageSize = opts.Service.PageSize
	}

	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 32

	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "name or id"

	moves := textinput.New()
	moves.Prompt = "Filter: "
	moves.Placeholder = "move name"

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:        ctx,
		dex:        opts.Service,
		trainer:    tr,
		log:        log,
		theme:      theme.Default(),
		keys:       defaultKeys(),
		help:       help.New(),
		spinner:    sp,
		describe:   format.NewDescriber(rand.New(rand.NewSource(time.Now().UnixNano()))),
		screen:     screenCatalog,
		name:       name,
		sel:        category.NewSelector(pageSize),
		target:     1,
		catalogSeq: &dex.Sequence{},
		search:     search,
		recordSeq:  &dex.Sequence{},
		typesSeq:   &dex.Sequence{},
		moves:      moves,
		order:      filter.Asc,
	}
	if tr.Name() == "" {
		m.screen = screenTrainer
		m.name.Focus()
	} else {
		m.loading = true
	}
	return m
}

// Init starts the first fetch.
func (m Model) Init() tea.Cmd {
	if m.screen == screenTrainer {
		return textinput.Blink
	}
	return tea.Batch(m.fetchCatalog(), m.spinner.Tick)
}

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case events.CatalogLoadedMsg:
		return m.onCatalog(msg), nil

	case events.TypesLoadedMsg:
		return m.onTypes(msg), nil

	case events.RecordLoadedMsg:
		return m.onRecord(msg), nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenTrainer:
			return m.updateTrainer(msg)
		case screenTypes:
			return m.updateTypes(msg)
		case screenDetail:
			return m.updateDetail(msg)
		case screenNotFound:
			return m.updateNotFound(msg)
		default:
			return m.updateCatalog(msg)
		}
	}
	return m.updateFocused(msg)
}

// updateFocused forwards cursor blinks and the like to the focused input.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.screen == screenTrainer:
		m.name, cmd = m.name.Update(msg)
	case m.searching:
		m.search, cmd = m.search.Update(msg)
	case m.filtering:
		m.moves, cmd = m.moves.Update(msg)
	}
	return m, cmd
}

func (m Model) updateTrainer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		if err := m.trainer.Set(m.name.Value()); err != nil {
			m.nameErr = strings.TrimPrefix(err.Error(), trainer.ErrInvalidInput.Error()+": ")
			return m, nil
		}
		m.nameErr = ""
		m.name.Blur()
		m.screen = screenCatalog
		return m.loadCatalog()
	}
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m Model) updateCatalog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.updateSearch(msg)
	}
	nav := m.sel.Page().WithPage(m.target).Navigator()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		if m.fetching {
			m.recordSeq.Next()
			m.fetching = false
		}
		m.err = nil
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Prev):
		return m.goToPage(nav.Prev())
	case key.Matches(msg, m.keys.Next):
		return m.goToPage(nav.Next())
	case key.Matches(msg, m.keys.First):
		return m.goToPage(nav.First())
	case key.Matches(msg, m.keys.Last):
		return m.goToPage(nav.Last())
	case key.Matches(msg, m.keys.Open):
		if records := m.visible(); m.cursor < len(records) {
			return m.openRecord(records[m.cursor]), nil
		}
	case key.Matches(msg, m.keys.Types):
		return m.openTypes()
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue("")
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Sort):
		m.sort = nextSort(m.sort)
		m.cursor = 0
	case key.Matches(msg, m.keys.Retry):
		if m.err != nil && !m.loading {
			return m.loadCatalog()
		}
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		return m, nil
	case tea.KeyEnter:
		q, err := dex.NormalizeSearch(m.search.Value())
		if err != nil {
			m.err = err
			return m, nil
		}
		m.searching = false
		m.search.Blur()
		if format.IsNumeric(q) && !format.IsValidID(q) {
			m.missing = q
			m.screen = screenNotFound
			return m, nil
		}
		return m.lookup(q)
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) updateTypes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := m.typeOptions()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.typesSeq.Next()
		m.fetching = false
		m.screen = screenCatalog
	case key.Matches(msg, m.keys.Up):
		if m.typeCursor > 0 {
			m.typeCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.typeCursor < len(options)-1 {
			m.typeCursor++
		}
	case key.Matches(msg, m.keys.Open):
		if m.typeCursor >= len(options) {
			return m, nil
		}
		return m.selectCategory(options[m.typeCursor].ID)
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.filtering = false
			m.moves.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.moves, cmd = m.moves.Update(msg)
		return m, cmd
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.record = nil
		m.screen = screenCatalog
	case key.Matches(msg, m.keys.Search):
		m.filtering = true
		return m, m.moves.Focus()
	case key.Matches(msg, m.keys.Order):
		m.order = m.order.Toggle()
	}
	return m, nil
}

func (m Model) updateNotFound(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		m.screen = screenCatalog
		m.searching = true
		m.search.SetValue("")
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Open):
		m.missing = ""
		m.screen = screenCatalog
	}
	return m, nil
}

// selectCategory switches the catalog to id. A different category starts
// over on page 1.
func (m Model) selectCategory(id string) (Model, tea.Cmd) {
	m.screen = screenCatalog
	if !m.sel.Select(id) {
		return m, nil
	}
	m.log.Debug("category selected", zap.String("category", id))
	m.target = 1
	m.page = nil
	m.cursor = 0
	return m.loadCatalog()
}

func (m Model) goToPage(p int) (Model, tea.Cmd) {
	if p < 1 || p == m.target {
		return m, nil
	}
	if _, err := m.sel.Page().Navigator().GoTo(p); err != nil {
		m.log.Debug("page rejected", zap.Int("page", p), zap.Error(err))
		return m, nil
	}
	m.target = p
	m.cursor = 0
	return m.loadCatalog()
}

func (m Model) loadCatalog() (Model, tea.Cmd) {
	m.loading = true
	m.err = nil
	return m, tea.Batch(m.fetchCatalog(), m.spinner.Tick)
}

// fetchCatalog issues a new catalog ticket and returns the command that
// fetches the target page. Records are sorted on display, not here.
func (m Model) fetchCatalog() tea.Cmd {
	t := m.catalogSeq.Next()
	svc, ctx := m.dex, m.ctx
	req := dex.CatalogRequest{Category: m.sel.Category(), Page: m.target}
	return func() tea.Msg {
		page, err := svc.Catalog(ctx, req)
		return events.CatalogLoadedMsg{Ticket: t, Page: page, Err: err}
	}
}

func (m Model) onCatalog(msg events.CatalogLoadedMsg) Model {
	if !m.catalogSeq.Current(msg.Ticket) {
		m.log.Debug("dropping stale catalog result", zap.String("msg", msg.Describe()))
		return m
	}
	m.loading = false
	if msg.Err != nil {
		m.log.Warn("catalog fetch failed", zap.Error(msg.Err))
		m.err = msg.Err
		m.target = m.sel.Page().Current
		return m
	}
	m.page = msg.Page
	m.sel.SetTotal(msg.Page.State.Total)
	if err := m.sel.SetPage(msg.Page.State.Current); err != nil {
		m.log.Debug("page rejected", zap.Error(err))
	}
	m.target = m.sel.Page().Current
	if n := len(m.page.Records); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	return m
}

func (m Model) openTypes() (Model, tea.Cmd) {
	m.screen = screenTypes
	m.typeCursor = m.typeIndex(m.sel.Category())
	if m.types != nil {
		return m, nil
	}
	t := m.typesSeq.Next()
	m.fetching = true
	svc, ctx := m.dex, m.ctx
	return m, tea.Batch(func() tea.Msg {
		cats, err := svc.Categories(ctx)
		return events.TypesLoadedMsg{Ticket: t, Types: cats, Err: err}
	}, m.spinner.Tick)
}

func (m Model) onTypes(msg events.TypesLoadedMsg) Model {
	if !m.typesSeq.Current(msg.Ticket) {
		m.log.Debug("dropping stale types result", zap.String("msg", msg.Describe()))
		return m
	}
	m.fetching = false
	if msg.Err != nil {
		m.log.Warn("types fetch failed", zap.Error(msg.Err))
		m.err = msg.Err
		m.screen = screenCatalog
		return m
	}
	m.types = msg.Types
	m.typeCursor = m.typeIndex(m.sel.Category())
	return m
}

// typeOptions is the picker content: All followed by every type.
func (m Model) typeOptions() []pokeapi.Category {
	out := make([]pokeapi.Category, 0, len(m.types)+1)
	out = append(out, pokeapi.Category{ID: category.All, Name: category.All})
	return append(out, m.types...)
}

func (m Model) typeIndex(id string) int {
	for i, c := range m.typeOptions() {
		if c.ID == id {
			return i
		}
	}
	return 0
}

func (m Model) lookup(q string) (Model, tea.Cmd) {
	t := m.recordSeq.Next()
	m.fetching = true
	m.err = nil
	svc, ctx := m.dex, m.ctx
	return m, tea.Batch(func() tea.Msg {
		r, err := svc.Record(ctx, q)
		return events.RecordLoadedMsg{Ticket: t, Query: q, Record: r, Err: err}
	}, m.spinner.Tick)
}

func (m Model) onRecord(msg events.RecordLoadedMsg) Model {
	if !m.recordSeq.Current(msg.Ticket) {
		m.log.Debug("dropping stale record result", zap.String("msg", msg.Describe()))
		return m
	}
	m.fetching = false
	switch {
	case errors.Is(msg.Err, pokeapi.ErrNotFound):
		m.missing = msg.Query
		m.screen = screenNotFound
	case msg.Err != nil:
		m.log.Warn("record fetch failed", zap.String("query", msg.Query), zap.Error(msg.Err))
		m.err = msg.Err
	default:
		m = m.openRecord(msg.Record)
	}
	return m
}

// openRecord shows r. Any search still in flight is superseded.
func (m Model) openRecord(r *pokeapi.Record) Model {
	m.recordSeq.Next()
	m.fetching = false
	m.record = r
	m.blurb = m.describe.Describe(r.PrimaryType())
	m.order = filter.Asc
	m.moves.SetValue("")
	m.moves.Blur()
	m.filtering = false
	m.screen = screenDetail
	return m
}

// visible is the current page in display order.
func (m Model) visible() []*pokeapi.Record {
	if m.page == nil {
		return nil
	}
	return filter.SortRecords(m.page.Records, m.sort)
}

func (m Model) moveQuery() filter.Query {
	return filter.Query{Text: m.moves.Value(), Order: m.order}
}

func nextSort(k filter.SortKey) filter.SortKey {
	for i, s := range sortCycle {
		if s == k {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return sortCycle[0]
}
