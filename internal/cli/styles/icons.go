// Package styles provides reusable lipgloss-based TUI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconHeart     = "" // heart
	IconGo        = "" // go gopher

	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info

	IconFolder   = "" // folder
	IconConfig   = "" // config
	IconDatabase = "" // database
	IconLogs     = "" // file-text

	IconCursor = "" // chevron-right

	// Window
	IconWindow   = "" // window
	IconExpand   = "" // expand
	IconCollapse = "" // compress
	IconDock     = "" // columns
	IconPlay     = "" // play
)
