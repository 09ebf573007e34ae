package tui

import (
	"github.com/zeroplus75/tm-pose-game2/internal/catch"
	"github.com/zeroplus75/tm-pose-game2/internal/core"
)

// ScreenSurface adapts a Screen buffer to the engine's drawing interface,
// mapping shapes to box-drawing and block runes.
type ScreenSurface struct {
	screen *core.Screen
}

var _ catch.Surface = (*ScreenSurface)(nil)

// NewScreenSurface wraps the given screen buffer.
func NewScreenSurface(s *core.Screen) *ScreenSurface {
	return &ScreenSurface{screen: s}
}

// Line draws a line between two points. Axis-aligned lines use box-drawing
// runes; anything else falls back to a dotted stepped line.
func (s *ScreenSurface) Line(x0, y0, x1, y1 int, c core.Color) {
	switch {
	case x0 == x1:
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		s.screen.DrawVLine(x0, y0, y1-y0+1, '│', c)
	case y0 == y1:
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		s.screen.DrawHLine(x0, y0, x1-x0+1, '─', c)
	default:
		dx, dy := x1-x0, y1-y0
		steps := core.Max(abs(dx), abs(dy))
		for i := 0; i <= steps; i++ {
			s.screen.SetCell(x0+dx*i/steps, y0+dy*i/steps, '·', c)
		}
	}
}

// FillRect fills a rectangle with solid block runes.
func (s *ScreenSurface) FillRect(x, y, w, h int, c core.Color) {
	s.screen.FillRect(x, y, w, h, '█', c)
}

// FillCircle fills a circle. Small radii collapse to a single marker rune,
// which is the common case at terminal resolutions.
func (s *ScreenSurface) FillCircle(cx, cy, r int, c core.Color) {
	if r <= 1 {
		s.screen.SetCell(cx, cy, '●', c)
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				s.screen.SetCell(cx+dx, cy+dy, '●', c)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
