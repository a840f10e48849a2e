package styles

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModel is a yes/no prompt. It quits the program once answered.
type ConfirmModel struct {
	Message  string
	Yes      bool
	answered bool
	canceled bool
	keys     ConfirmKeyMap
	theme    *Theme
}

// ConfirmKeyMap defines keybindings for the confirm prompt.
type ConfirmKeyMap struct {
	Yes     key.Binding
	No      key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeyMap returns the default keybindings.
func DefaultConfirmKeyMap() ConfirmKeyMap {
	return ConfirmKeyMap{
		Yes:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		No:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		Toggle:  key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab"), key.WithHelp("←/→", "select")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

// NewConfirm creates a prompt defaulting to "No".
func NewConfirm(theme *Theme, message string) ConfirmModel {
	return ConfirmModel{
		Message: message,
		keys:    DefaultConfirmKeyMap(),
		theme:   theme,
	}
}

// Init implements tea.Model.
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Yes):
		m.Yes, m.answered = true, true
	case key.Matches(keyMsg, m.keys.No):
		m.Yes, m.answered = false, true
	case key.Matches(keyMsg, m.keys.Toggle):
		m.Yes = !m.Yes
	case key.Matches(keyMsg, m.keys.Confirm):
		m.answered = true
	case key.Matches(keyMsg, m.keys.Cancel):
		m.Yes, m.canceled = false, true
	}
	if m.Done() {
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m ConfirmModel) View() string {
	if m.Done() {
		return ""
	}
	t := m.theme
	yes, no := t.BadgeMuted.Render(" Yes "), t.Badge.Render(" No ")
	if m.Yes {
		yes, no = t.Badge.Render(" Yes "), t.BadgeMuted.Render(" No ")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		"  "+t.Title.Render(m.Message),
		"",
		"  "+lipgloss.JoinHorizontal(lipgloss.Center, no, "  ", yes),
		"",
		"  "+t.Subtle.Render("y/n or ←/→ to select • enter to confirm • esc to cancel"),
		"",
	)
}

// Done reports whether the prompt was answered or canceled.
func (m ConfirmModel) Done() bool {
	return m.answered || m.canceled
}

// Result reports whether the user answered yes.
func (m ConfirmModel) Result() bool {
	return m.answered && m.Yes
}
