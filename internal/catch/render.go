package catch

import (
	"github.com/zeroplus75/tm-pose-game2/internal/core"
)

// Surface is the drawing target the engine paints onto. Coordinates are
// pixels (or terminal cells); the engine converts its normalized game space
// itself. Implementations live in the platform layer.
type Surface interface {
	Line(x0, y0, x1, y1 int, c core.Color)
	FillRect(x, y, w, h int, c core.Color)
	FillCircle(cx, cy, r int, c core.Color)
}

// Render projects the current state onto a drawing surface: lane dividers,
// the basket at its lane slot, and one marker per uncaught item. Read-only;
// no-op while the engine is inactive.
func (e *Engine) Render(s Surface, width, height int) {
	if !e.active {
		return
	}

	// Lane dividers at thirds.
	s.Line(width/3, 0, width/3, height, core.ColorGray)
	s.Line(2*width/3, 0, 2*width/3, height, core.ColorGray)

	// Basket: fixed slot per lane, fixed position near the bottom.
	bw := core.Max(width/8, 3)
	bh := core.Max(height/20, 1)
	by := height - height/10 - bh
	bx := zoneSlotX(e.BasketZone(), width) - bw/2
	s.FillRect(bx, by, bw, bh, core.ColorYellow)

	// Items, positioned by (lane slot, normalized y scaled to height).
	r := core.Max(width/60, 1)
	for i := range e.items {
		it := &e.items[i]
		if it.Caught {
			continue
		}
		cx := zoneSlotX(it.Zone, width)
		cy := int(it.Y * float64(height))
		s.FillCircle(cx, cy, r, kindColor(it.Kind))
	}
}

// zoneSlotX returns the horizontal slot center for a lane: 1/6, 1/2 or 5/6
// of the width.
func zoneSlotX(z Zone, width int) int {
	switch z {
	case ZoneLeft:
		return width / 6
	case ZoneRight:
		return width * 5 / 6
	default:
		return width / 2
	}
}

func kindColor(k Kind) core.Color {
	switch k {
	case KindApple:
		return core.ColorRed
	case KindPear:
		return core.ColorGreen
	case KindOrange:
		return core.ColorOrange
	case KindBomb:
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}
