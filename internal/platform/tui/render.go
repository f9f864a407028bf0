package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ocean-run/internal/core"
)

// Ocean palette, ANSI 256 colors.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorWater:    lipgloss.NewStyle().Foreground(lipgloss.Color("24")),
	core.ColorCoral:    lipgloss.NewStyle().Foreground(lipgloss.Color("209")),
	core.ColorCoralCap: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	core.ColorSand:     lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	core.ColorDolphin:  lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
	core.ColorBubble:   lipgloss.NewStyle().Foreground(lipgloss.Color("195")),
	core.ColorHUD:      lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("24")).Bold(true),
	core.ColorOverlay:  lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("23")),
	core.ColorDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
