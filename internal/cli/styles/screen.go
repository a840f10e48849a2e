package styles

import (
	"strings"
)

// RenderScreen colors a raster produced by the virtual host, one string per
// row, and frames it.
func RenderScreen(theme *Theme, rows []string) string {
	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, r := range row {
			cell := string(r)
			switch r {
			case '▀':
				sb.WriteString(theme.TitleBar.Render(cell))
			case '█':
				sb.WriteString(theme.Content.Render(cell))
			default:
				sb.WriteString(theme.Empty.Render(cell))
			}
		}
	}
	return theme.Screen.Render(sb.String())
}
