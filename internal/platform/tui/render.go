package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-stack/internal/core"
)

// cellStyle identifies the colors of a run of cells.
type cellStyle struct {
	fg, bg       core.RGB
	hasFG, hasBG bool
}

func styleOf(c core.Cell) cellStyle {
	return cellStyle{fg: c.FG, bg: c.BG, hasFG: c.HasFG, hasBG: c.HasBG}
}

// hex formats a color for lipgloss.
func hex(c core.RGB) lipgloss.Color {
	cf := colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}.Clamped()
	return lipgloss.Color(cf.Hex())
}

func (s cellStyle) lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.hasFG {
		st = st.Foreground(hex(s.fg))
	}
	if s.hasBG {
		st = st.Background(hex(s.bg))
	}
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	styles := make(map[cellStyle]lipgloss.Style)
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := styleOf(s.GetCell(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if styleOf(cell) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			st, ok := styles[start]
			if !ok {
				st = start.lipgloss()
				styles[start] = st
			}
			sb.WriteString(st.Render(run.String()))
		}
	}
	return sb.String()
}
