package geometry

import (
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
)

// ClampSize raises each dimension of size to at least minimum. The second result
// reports whether any dimension was raised.
func ClampSize(size, minimum types.WindowSize) (types.WindowSize, bool) {
	clamped := false
	if size.Width < minimum.Width {
		size.Width = minimum.Width
		clamped = true
	}
	if size.Height < minimum.Height {
		size.Height = minimum.Height
		clamped = true
	}
	return size, clamped
}

// WorkArea is the viewport minus the taskbar reserved at the bottom
func WorkArea(vp types.Viewport) types.Rect {
	height := vp.Height - vp.TaskbarHeight
	if height < 0 {
		height = 0
	}
	width := vp.Width
	if width < 0 {
		width = 0
	}
	return types.Rect{X: 0, Y: 0, Width: width, Height: height}
}

// Frame resolves the on-screen frame of bounds for the given viewport
func Frame(b types.Bounds, vp types.Viewport) types.Rect {
	switch v := b.(type) {
	case types.FreeBounds:
		return v.Frame
	case types.MaximizedBounds:
		return WorkArea(vp)
	case types.SnappedBounds:
		return ZoneRect(v.Zone, vp)
	default:
		return types.Rect{}
	}
}

// Center returns the integer center point of r
func Center(r types.Rect) (x, y int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// NearEdge reports whether any side of r lies within threshold pixels of,
// or beyond, the corresponding viewport edge.
func NearEdge(r types.Rect, vp types.Viewport, threshold int) bool {
	return r.X < threshold ||
		r.X+r.Width > vp.Width-threshold ||
		r.Y < threshold ||
		r.Y+r.Height > vp.Height-threshold
}

// Contains reports whether the point lies inside r
func Contains(r types.Rect, x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}
