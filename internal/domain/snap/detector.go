package snap

import (
	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/geometry"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
)

// DefaultThreshold is the edge distance in pixels that arms the detector
const DefaultThreshold = 50

// Preview is a candidate zone shown while a drag is in progress
type Preview struct {
	Zone  types.SnapLayout `json:"zone"`
	Frame types.Rect       `json:"frame"`
}

// Detector classifies a dragged window frame into a snap zone. It never
// mutates window state.
type Detector struct {
	threshold int
}

// NewDetector creates a detector armed within threshold pixels of an edge
func NewDetector(threshold int) *Detector {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Detector{threshold: threshold}
}

// Threshold returns the arming distance
func (d *Detector) Threshold() int {
	return d.threshold
}

// Detect returns the zone for frame r, or false when r is not near an edge
// or its center falls in no zone.
func (d *Detector) Detect(r types.Rect, vp types.Viewport) (types.SnapLayout, bool) {
	if !vp.Valid() || !geometry.NearEdge(r, vp, d.threshold) {
		return types.SnapNone, false
	}
	cx, cy := geometry.Center(r)
	zone := Classify(cx, cy, vp)
	return zone, zone != types.SnapNone
}

// Preview returns the candidate zone with its frame
func (d *Detector) Preview(r types.Rect, vp types.Viewport) (Preview, bool) {
	zone, ok := d.Detect(r, vp)
	if !ok {
		return Preview{}, false
	}
	return Preview{Zone: zone, Frame: geometry.ZoneRect(zone, vp)}, true
}

// Classify maps a point to a zone by fractions of the viewport. The outer
// quarters pick a side column split into thirds (corner, side, corner); the
// middle half snaps to top or bottom only in the outer vertical quarters.
func Classify(x, y int, vp types.Viewport) types.SnapLayout {
	w, h := vp.Width, vp.Height
	if w <= 0 || h <= 0 {
		return types.SnapNone
	}

	switch {
	case x*4 < w:
		return column(y, h, types.SnapTopLeft, types.SnapLeft, types.SnapBottomLeft)
	case x*4 > w*3:
		return column(y, h, types.SnapTopRight, types.SnapRight, types.SnapBottomRight)
	case y*4 < h:
		return types.SnapTop
	case y*4 > h*3:
		return types.SnapBottom
	default:
		return types.SnapNone
	}
}

func column(y, h int, top, side, bottom types.SnapLayout) types.SnapLayout {
	switch {
	case y*3 < h:
		return top
	case y*3 > h*2:
		return bottom
	default:
		return side
	}
}
