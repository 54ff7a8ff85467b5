package types

// SnapLayout names a snap zone of the work area
type SnapLayout string

const (
	SnapNone        SnapLayout = ""
	SnapLeft        SnapLayout = "left"
	SnapRight       SnapLayout = "right"
	SnapTop         SnapLayout = "top"
	SnapBottom      SnapLayout = "bottom"
	SnapTopLeft     SnapLayout = "top-left"
	SnapTopRight    SnapLayout = "top-right"
	SnapBottomLeft  SnapLayout = "bottom-left"
	SnapBottomRight SnapLayout = "bottom-right"
)

// SnapLayouts lists every zone in a stable order
var SnapLayouts = []SnapLayout{
	SnapLeft, SnapRight, SnapTop, SnapBottom,
	SnapTopLeft, SnapTopRight, SnapBottomLeft, SnapBottomRight,
}

// Valid reports whether the layout names a real zone
func (l SnapLayout) Valid() bool {
	for _, z := range SnapLayouts {
		if z == l {
			return true
		}
	}
	return false
}

// Viewport describes the host browser viewport
type Viewport struct {
	Width         int `json:"width"`
	Height        int `json:"height"`
	TaskbarHeight int `json:"taskbar_height"`
}

// Valid reports whether the viewport has a usable area
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0 && v.TaskbarHeight >= 0
}

// ArrangeLayout names a bulk window arrangement
type ArrangeLayout string

const (
	ArrangeCascade        ArrangeLayout = "cascade"
	ArrangeTileHorizontal ArrangeLayout = "tile-horizontal"
	ArrangeTileVertical   ArrangeLayout = "tile-vertical"
)

// Valid reports whether the arrangement is known
func (a ArrangeLayout) Valid() bool {
	switch a {
	case ArrangeCascade, ArrangeTileHorizontal, ArrangeTileVertical:
		return true
	}
	return false
}
