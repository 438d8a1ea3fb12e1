package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/numberpop/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(r *lipgloss.Renderer, s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(r, start).Render(run.String()))
		}
	}
	return sb.String()
}

func cellStyle(r *lipgloss.Renderer, c core.Cell) lipgloss.Style {
	style := r.NewStyle()
	if !c.FG.IsDefault() {
		style = style.Foreground(lipgloss.Color(c.FG.Hex()))
	}
	if !c.BG.IsDefault() {
		style = style.Background(lipgloss.Color(c.BG.Hex()))
	}
	return style
}
