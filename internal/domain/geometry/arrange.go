package geometry

import (
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
)

// CascadeConfig controls where newly opened windows land
type CascadeConfig struct {
	OriginX int
	OriginY int
	Step    int
	WrapX   int
	WrapY   int
}

// DefaultCascade matches the shell's stock offsets
func DefaultCascade() CascadeConfig {
	return CascadeConfig{OriginX: 50, OriginY: 50, Step: 30, WrapX: 400, WrapY: 200}
}

// CascadeOffset returns the position of the n-th window (zero based). The
// offset wraps so windows never walk off the screen.
func CascadeOffset(n int, cfg CascadeConfig) types.WindowPosition {
	if n < 0 {
		n = 0
	}
	dx, dy := n*cfg.Step, n*cfg.Step
	if cfg.WrapX > 0 {
		dx %= cfg.WrapX
	}
	if cfg.WrapY > 0 {
		dy %= cfg.WrapY
	}
	return types.WindowPosition{X: cfg.OriginX + dx, Y: cfg.OriginY + dy}
}

// Arrange computes frames for count windows. Cascade keeps each current size
// and only moves the origin; tiling splits the work area evenly with the
// remainder going to the last cell.
func Arrange(layout types.ArrangeLayout, current []types.Rect, vp types.Viewport, cfg CascadeConfig) []types.Rect {
	count := len(current)
	if count == 0 {
		return nil
	}

	wa := WorkArea(vp)
	frames := make([]types.Rect, count)

	switch layout {
	case types.ArrangeCascade:
		for i, r := range current {
			frames[i] = r.WithPosition(CascadeOffset(i, cfg))
		}

	case types.ArrangeTileHorizontal:
		cell := wa.Width / count
		for i := range frames {
			width := cell
			if i == count-1 {
				width = wa.Width - cell*(count-1)
			}
			frames[i] = types.Rect{X: wa.X + i*cell, Y: wa.Y, Width: width, Height: wa.Height}
		}

	case types.ArrangeTileVertical:
		cell := wa.Height / count
		for i := range frames {
			height := cell
			if i == count-1 {
				height = wa.Height - cell*(count-1)
			}
			frames[i] = types.Rect{X: wa.X, Y: wa.Y + i*cell, Width: wa.Width, Height: height}
		}

	default:
		copy(frames, current)
	}

	return frames
}
