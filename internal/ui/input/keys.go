package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings shown in the help footer and help popup
type KeyMap struct {
	Focus    key.Binding
	Submit   key.Binding
	Leave    key.Binding
	Up       key.Binding
	Down     key.Binding
	Next     key.Binding
	Previous key.Binding
	Open     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Focus:    key.NewBinding(key.WithKeys("/", "i"), key.WithHelp("/", "edit query")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Leave:    key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc", "results")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next:     key.NewBinding(key.WithKeys("n", "right", "l", "pgdown"), key.WithHelp("n/→", "next page")),
		Previous: key.NewBinding(key.WithKeys("p", "left", "h", "pgup"), key.WithHelp("p/←", "previous page")),
		Open:     key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter", "details")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// QueryHelp returns the short help while typing a query
func (k KeyMap) QueryHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Leave, k.Quit}
}

// BrowseHelp returns the short help while browsing results
func (k KeyMap) BrowseHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Up, k.Down, k.Previous, k.Next, k.Open, k.Help, k.Quit}
}
