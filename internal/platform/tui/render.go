package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kvols/termsnake/internal/config"
	"github.com/kvols/termsnake/internal/core"
)

// Styles maps buffer colors to lipgloss styles, built from the theme.
type Styles struct {
	byColor map[core.Color]lipgloss.Style
}

// NewStyles builds the style table for a theme. The game draws the snake
// in green, food in red, text in white, overlays in yellow and separators
// in gray; the theme decides what those mean on this terminal.
func NewStyles(theme config.ThemeConfig) Styles {
	fg := func(v string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(v))
	}
	return Styles{
		byColor: map[core.Color]lipgloss.Style{
			core.ColorDefault: lipgloss.NewStyle(),
			core.ColorGreen:   fg(theme.Snake),
			core.ColorRed:     fg(theme.Food),
			core.ColorWhite:   fg(theme.Text),
			core.ColorYellow:  fg(theme.Accent),
			core.ColorGray:    fg(theme.Dim),
		},
	}
}

// style returns the style for a color, falling back to the default.
func (s Styles) style(c core.Color) lipgloss.Style {
	if st, ok := s.byColor[c]; ok {
		return st
	}
	return s.byColor[core.ColorDefault]
}

// RenderScreen converts a screen buffer to a styled string for display.
// Adjacent cells with the same color are grouped to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen, styles Styles) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
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

			sb.WriteString(styles.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
