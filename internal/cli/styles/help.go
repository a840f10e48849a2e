package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// SimKeyMap defines keybindings for the overlay simulator.
type SimKeyMap struct {
	SnapLeft  key.Binding
	SnapRight key.Binding
	Restore   key.Binding
	Expand    key.Binding
	Reset     key.Binding
	Rotate    key.Binding
	Back      key.Binding
	Forward   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k SimKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SnapLeft, k.SnapRight, k.Restore, k.Expand, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k SimKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SnapLeft, k.SnapRight, k.Restore},
		{k.Expand, k.Reset, k.Rotate},
		{k.Back, k.Forward},
		{k.Help, k.Quit},
	}
}

// DefaultSimKeyMap returns the default simulator keybindings.
func DefaultSimKeyMap() SimKeyMap {
	return SimKeyMap{
		SnapLeft: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "dock left"),
		),
		SnapRight: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "dock right"),
		),
		Restore: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "restore"),
		),
		Expand: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "expand"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "rotate"),
		),
		Back: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "forward"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
