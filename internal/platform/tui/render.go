package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cricket-arcade/internal/core"
)

// cellStyle is the colour pair a run of cells is drawn with.
type cellStyle struct {
	fg, bg core.Color
}

// styleCache memoizes lipgloss styles per colour pair.
var styleCache = map[cellStyle]lipgloss.Style{}

func styleFor(cs cellStyle) lipgloss.Style {
	if s, ok := styleCache[cs]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if code := cs.fg.ANSI(); code != "" {
		s = s.Foreground(lipgloss.Color(code))
	}
	if code := cs.bg.ANSI(); code != "" {
		s = s.Background(lipgloss.Color(code))
	}
	styleCache[cs] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Fg, bg: cell.Bg}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
