package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Prev   key.Binding
	Next   key.Binding
	First  key.Binding
	Last   key.Binding
	Open   key.Binding
	Types  key.Binding
	Search key.Binding
	Sort   key.Binding
	Order  key.Binding
	Retry  key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
		Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		First:  key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		Last:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Types:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "type")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Sort:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Order:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "order")),
		Retry:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// catalogHelp implements help.KeyMap for the catalog screen.
type catalogHelp struct{ keyMap }

func (k catalogHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Open, k.Types, k.Search, k.Sort, k.Quit}
}

func (k catalogHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.First, k.Last, k.Retry}}
}

type detailHelp struct{ keyMap }

func (k detailHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Order, k.Back, k.Quit}
}

func (k detailHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type pickerHelp struct{ keyMap }

func (k pickerHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Back}
}

func (k pickerHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
