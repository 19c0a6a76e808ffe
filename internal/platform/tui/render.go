package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neonrun/internal/core"
)

// colorStyles holds the terminal colors of the runner's palette, taken from
// the same RGB values the window uses. Any other color renders in the
// terminal default.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorBrightRed:     foreground(core.ColorBrightRed),
	core.ColorBrightGreen:   foreground(core.ColorBrightGreen),
	core.ColorBrightMagenta: foreground(core.ColorBrightMagenta),
	core.ColorBrightCyan:    foreground(core.ColorBrightCyan),
	core.ColorBrightWhite:   foreground(core.ColorBrightWhite).Bold(true),
	core.ColorOrange:        foreground(core.ColorOrange),
	core.ColorGray:          foreground(core.ColorGray),
	core.ColorIndigo:        foreground(core.ColorIndigo),
}

func foreground(c core.Color) lipgloss.Style {
	r, g, b := c.RGB()
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b)))
}

// hudStyle renders the key help line under the play field.
var hudStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(1)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
