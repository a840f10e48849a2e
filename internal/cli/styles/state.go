package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/floatpane/internal/domain/entity"
)

// StateRenderer renders the persisted window state.
type StateRenderer struct {
	theme *Theme
}

// NewStateRenderer creates a new state renderer with the given theme.
func NewStateRenderer(theme *Theme) *StateRenderer {
	return &StateRenderer{theme: theme}
}

// Render renders a stored geometry, or a notice when nothing is stored.
func (r *StateRenderer) Render(backend string, g *entity.Geometry) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle.Width(12)
	valStyle := r.theme.Highlight

	header := fmt.Sprintf("\n  %s Window state %s\n", iconStyle.Render(IconWindow), r.theme.BadgeMuted.Render(backend))
	if g == nil {
		return header + "  " + r.theme.Subtle.Render("Nothing stored yet; the default geometry is used.") + "\n"
	}

	lines := []string{
		keyStyle.Render("Position") + valStyle.Render(fmt.Sprintf("%d, %d", g.X, g.Y)),
		keyStyle.Render("Size") + valStyle.Render(fmt.Sprintf("%d × %d", g.Width, g.Height)),
		keyStyle.Render("Orientation") + valStyle.Render(g.Orientation.String()),
	}
	return header + "  " + strings.Join(lines, "\n  ") + "\n"
}

// RenderReset renders the message after the stored state was deleted.
func (r *StateRenderer) RenderReset() string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Window state reset\n", iconStyle.Render(IconCheck))
}
