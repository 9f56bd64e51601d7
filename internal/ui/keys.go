package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

type normalKeyMap struct {
	Search key.Binding
	Up     key.Binding
	Down   key.Binding
	Page   key.Binding
	Ends   key.Binding
	Open   key.Binding
	Sort   key.Binding
	Copy   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k normalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Open, k.Help, k.Quit}
}

func (k normalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Page, k.Ends},
		{k.Search, k.Open, k.Sort, k.Copy},
		{k.Help, k.Quit},
	}
}

type searchKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Leave  key.Binding
	Quit   key.Binding
}

func (k searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Leave}
}

func (k searchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Submit, k.Leave, k.Quit}}
}

var normalKeys = normalKeyMap{
	Search: key.NewBinding(key.WithKeys("/", "i"), key.WithHelp("/", "search")),
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Page:   key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "page")),
	Ends:   key.NewBinding(key.WithKeys("g", "G", "home", "end"), key.WithHelp("gg/G", "top/bottom")),
	Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open recipe")),
	Sort:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "change sort")),
	Copy:   key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy link")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var searchKeys = searchKeyMap{
	Next:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next suggestion")),
	Prev:   key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous suggestion")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go")),
	Leave:  key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc", "leave field")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}
