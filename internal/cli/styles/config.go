package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PathEntry is one labelled path shown by RenderPaths.
type PathEntry struct {
	Icon  string
	Label string
	Path  string
}

// ConfigRenderer renders config command output with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPaths renders a list of labelled paths.
func (r *ConfigRenderer) RenderPaths(entries []PathEntry) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	labelStyle := r.theme.Normal.Width(9)
	pathStyle := r.theme.Subtle

	var sb strings.Builder
	sb.WriteString("\n")
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			iconStyle.Render(e.Icon),
			labelStyle.Render(e.Label),
			pathStyle.Render(e.Path),
		))
	}
	return sb.String()
}

// RenderWritten renders the success message after writing a file.
func (r *ConfigRenderer) RenderWritten(what, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf(
		"\n  %s Wrote %s to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(what),
		r.theme.Subtle.Render(path),
	)
}

// RenderExists renders the message shown when init would overwrite a file.
func (r *ConfigRenderer) RenderExists(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
	return fmt.Sprintf(
		"\n  %s Config %s already exists\n  %s\n",
		iconStyle.Render(IconWarning),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("Run 'floatpane config init --force' to overwrite it with defaults."),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

// RenderDiff renders a migration diff produced by config.FormatChanges.
func (r *ConfigRenderer) RenderDiff(path, diff string, dryRun bool) string {
	var sb strings.Builder
	title := "Migrated"
	if dryRun {
		title = "Pending changes for"
	}
	sb.WriteString(fmt.Sprintf("\n  %s %s\n\n", r.theme.Title.Render(title), r.theme.Subtle.Render(path)))

	added := lipgloss.NewStyle().Foreground(r.theme.Success)
	removed := lipgloss.NewStyle().Foreground(r.theme.Error)
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "+"):
			sb.WriteString(added.Render(line))
		case strings.HasPrefix(trimmed, "-"):
			sb.WriteString(removed.Render(line))
		default:
			sb.WriteString("  " + r.theme.Subtle.Render(trimmed))
		}
		sb.WriteString("\n")
	}
	if dryRun {
		sb.WriteString("\n  " + r.theme.Subtle.Render("Run 'floatpane config migrate' to apply them.") + "\n")
	}
	return sb.String()
}
