package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skybird/internal/core"
)

// Palette holds one lipgloss style per screen color.
// SSH sessions build their own from the session renderer so colors follow
// the remote terminal rather than the server's.
type Palette struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
}

// NewPalette builds styles bound to r. A nil renderer uses the default one.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := Palette{
		styles: make(map[core.Color]lipgloss.Style),
		plain:  r.NewStyle(),
	}
	for _, c := range core.Colors() {
		p.styles[c] = r.NewStyle().Foreground(lipgloss.Color(c.ANSI()))
	}
	return p
}

func (p Palette) style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	return p.plain
}

// Render converts a Screen buffer to a styled string.
// Adjacent cells with the same color share one escape sequence.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultPalette = NewPalette(nil)

// RenderScreen renders with the process-wide terminal palette.
func RenderScreen(s *core.Screen) string {
	return defaultPalette.Render(s)
}
