package snap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/geometry"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
)

var hd = types.Viewport{Width: 1920, Height: 1080, TaskbarHeight: 48}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want types.SnapLayout
	}{
		{"left middle", 100, 540, types.SnapLeft},
		{"top left corner", 100, 100, types.SnapTopLeft},
		{"bottom left corner", 100, 1000, types.SnapBottomLeft},
		{"right middle", 1800, 540, types.SnapRight},
		{"top right corner", 1800, 50, types.SnapTopRight},
		{"bottom right corner", 1800, 900, types.SnapBottomRight},
		{"top centre", 960, 100, types.SnapTop},
		{"bottom centre", 960, 1000, types.SnapBottom},
		{"centre", 960, 540, types.SnapNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.x, tt.y, hd))
		})
	}
}

func TestClassifyBoundaries(t *testing.T) {
	// Exactly a quarter across is not in the left column
	assert.NotEqual(t, types.SnapLeft, Classify(480, 540, hd))
	assert.Equal(t, types.SnapLeft, Classify(479, 540, hd))
	assert.Equal(t, types.SnapNone, Classify(960, 540, types.Viewport{}))

	// Side columns split at exact thirds of the height
	assert.Equal(t, types.SnapTopLeft, Classify(100, 358, hd))
	assert.Equal(t, types.SnapLeft, Classify(100, 360, hd))
	assert.Equal(t, types.SnapLeft, Classify(100, 720, hd))
	assert.Equal(t, types.SnapBottomRight, Classify(1800, 721, hd))
}

func TestDetectRequiresEdgeProximity(t *testing.T) {
	d := NewDetector(DefaultThreshold)

	// Center is in the left column but the frame is far from every edge
	_, ok := d.Detect(types.Rect{X: 60, Y: 200, Width: 700, Height: 600}, hd)
	assert.False(t, ok)

	zone, ok := d.Detect(types.Rect{X: 0, Y: 100, Width: 800, Height: 600}, hd)
	assert.True(t, ok)
	assert.Equal(t, types.SnapLeft, zone)
}

func TestDetectNearEdgeWithoutZone(t *testing.T) {
	d := NewDetector(DefaultThreshold)

	// Wide window touching the left edge with its center in the middle band
	_, ok := d.Detect(types.Rect{X: 10, Y: 300, Width: 1900, Height: 400}, hd)
	assert.False(t, ok)
}

func TestPreview(t *testing.T) {
	d := NewDetector(0)
	assert.Equal(t, DefaultThreshold, d.Threshold())

	p, ok := d.Preview(types.Rect{X: 1500, Y: 0, Width: 400, Height: 300}, hd)
	assert.True(t, ok)
	assert.Equal(t, types.SnapTopRight, p.Zone)
	assert.Equal(t, geometry.ZoneRect(types.SnapTopRight, hd), p.Frame)
}
