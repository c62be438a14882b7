package rangepicker

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap lists the bindings understood by the picker model.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	DrillUp key.Binding
	Prev    key.Binding
	Next    key.Binding
	Prev2   key.Binding
	Next2   key.Binding
	Today   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns vim-style bindings with arrow key aliases.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev cell")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next cell")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "row up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "row down")),
		Select:  key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "open/select")),
		DrillUp: key.NewBinding(key.WithKeys("backspace", "u"), key.WithHelp("u", "zoom out")),
		Prev:    key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev period")),
		Next:    key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next period")),
		Prev2:   key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "jump back")),
		Next2:   key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "jump ahead")),
		Today:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.DrillUp, k.Prev, k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Select, k.DrillUp, k.Today},
		{k.Prev, k.Next, k.Prev2, k.Next2},
		{k.Help, k.Quit},
	}
}
