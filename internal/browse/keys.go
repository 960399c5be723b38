package browse

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Keys defines keyboard shortcuts for the browser
type Keys struct {
	// Navigation
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding

	// Tree operations
	Expand   key.Binding
	Collapse key.Binding
	Toggle   key.Binding

	// Actions
	Detail key.Binding
	Copy   key.Binding
	Help   key.Binding
	Close  key.Binding
	Quit   key.Binding
}

// DefaultKeys returns the default bindings.
func DefaultKeys() Keys {
	return Keys{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Expand:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "expand")),
		Collapse: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "collapse")),
		Toggle:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle")),
		Detail:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "show value")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy path")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// helpLine renders the short help shown in the status bar.
func (k Keys) helpLine() string {
	bindings := []key.Binding{k.Up, k.Down, k.Expand, k.Collapse, k.Help, k.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

// fullHelp lists every binding for the help overlay.
func (k Keys) fullHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Home, k.End,
		k.Expand, k.Collapse, k.Toggle,
		k.Detail, k.Copy, k.Help, k.Close, k.Quit,
	}
}
