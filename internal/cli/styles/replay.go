package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/ui/replay"
)

// ReplayRenderer renders replay reports.
type ReplayRenderer struct {
	theme *Theme
}

// NewReplayRenderer creates a new replay renderer with the given theme.
func NewReplayRenderer(theme *Theme) *ReplayRenderer {
	return &ReplayRenderer{theme: theme}
}

// Render renders one line per step followed by the final state. Failed
// expectations are listed under their step.
func (r *ReplayRenderer) Render(report *replay.Report) string {
	okStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	failStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	timeStyle := r.theme.Subtle.Width(9).Align(lipgloss.Right)
	actionStyle := r.theme.Highlight.Width(9)

	var b strings.Builder
	name := report.Name
	if name == "" {
		name = "replay"
	}
	fmt.Fprintf(&b, "\n  %s %s\n\n", lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconPlay), r.theme.Title.Render(name))

	for _, step := range report.Steps {
		icon := okStyle.Render(IconCheck)
		if len(step.Failures) > 0 {
			icon = failStyle.Render(IconX)
		}
		fmt.Fprintf(&b, "  %s %s %s %s\n",
			icon,
			timeStyle.Render(fmt.Sprintf("%dms", step.AtMs)),
			actionStyle.Render(string(step.Action)),
			r.renderState(step))
		for _, f := range step.Failures {
			fmt.Fprintf(&b, "      %s\n", r.theme.ErrorStyle.Render(f))
		}
	}

	fmt.Fprintf(&b, "\n  %s %s\n", r.theme.Subtle.Render("final"), r.renderState(report.Final))
	if report.Failed() {
		fmt.Fprintf(&b, "  %s\n", failStyle.Render("expectations failed"))
	} else {
		fmt.Fprintf(&b, "  %s\n", okStyle.Render("all expectations met"))
	}
	return b.String()
}

func (r *ReplayRenderer) renderState(step replay.StepResult) string {
	g := step.Geometry
	state := step.Mode.String()
	if step.Edge != entity.EdgeNone {
		state += "/" + step.Edge.String()
	}
	return r.theme.Normal.Render(fmt.Sprintf("%-16s %d,%d %d×%d", state, g.X, g.Y, g.Width, g.Height))
}
