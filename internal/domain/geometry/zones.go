package geometry

import (
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
)

// ZoneRect returns the frame of a snap zone: a half or a quarter of the work
// area. Odd pixels go to the right and bottom cells so adjacent zones tile
// the work area exactly. An unknown zone yields the whole work area.
func ZoneRect(zone types.SnapLayout, vp types.Viewport) types.Rect {
	wa := WorkArea(vp)
	halfW := wa.Width / 2
	halfH := wa.Height / 2
	restW := wa.Width - halfW
	restH := wa.Height - halfH

	switch zone {
	case types.SnapLeft:
		return types.Rect{X: wa.X, Y: wa.Y, Width: halfW, Height: wa.Height}
	case types.SnapRight:
		return types.Rect{X: wa.X + halfW, Y: wa.Y, Width: restW, Height: wa.Height}
	case types.SnapTop:
		return types.Rect{X: wa.X, Y: wa.Y, Width: wa.Width, Height: halfH}
	case types.SnapBottom:
		return types.Rect{X: wa.X, Y: wa.Y + halfH, Width: wa.Width, Height: restH}
	case types.SnapTopLeft:
		return types.Rect{X: wa.X, Y: wa.Y, Width: halfW, Height: halfH}
	case types.SnapTopRight:
		return types.Rect{X: wa.X + halfW, Y: wa.Y, Width: restW, Height: halfH}
	case types.SnapBottomLeft:
		return types.Rect{X: wa.X, Y: wa.Y + halfH, Width: halfW, Height: restH}
	case types.SnapBottomRight:
		return types.Rect{X: wa.X + halfW, Y: wa.Y + halfH, Width: restW, Height: restH}
	default:
		return wa
	}
}
