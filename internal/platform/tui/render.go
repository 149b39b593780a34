package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-timber/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorBark:     lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorBarkDark: lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorLeaf:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorStump:    lipgloss.NewStyle().Foreground(lipgloss.Color("58")),
	core.ColorJack:     lipgloss.NewStyle().Foreground(lipgloss.Color("167")),
	core.ColorAxe:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorLifeHigh: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorLifeMid:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorLifeLow:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorTitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDanger:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
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
