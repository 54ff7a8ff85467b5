package types

import "time"

// Animation is a short-lived cosmetic tag on a window
type Animation string

const (
	AnimationNone       Animation = ""
	AnimationOpening    Animation = "opening"
	AnimationClosing    Animation = "closing"
	AnimationMinimizing Animation = "minimizing"
	AnimationMaximizing Animation = "maximizing"
	AnimationSnapping   Animation = "snapping"
	AnimationRestoring  Animation = "restoring"
)

// WindowPosition represents window position on screen
type WindowPosition struct {
	X int `json:"x" yaml:"x" toml:"x"`
	Y int `json:"y" yaml:"y" toml:"y"`
}

// WindowSize represents window dimensions
type WindowSize struct {
	Width  int `json:"width" yaml:"width" toml:"width"`
	Height int `json:"height" yaml:"height" toml:"height"`
}

// IsZero reports whether both dimensions are unset
func (s WindowSize) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Rect is a window frame in viewport pixels
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewRect builds a rect from a position and a size
func NewRect(pos WindowPosition, size WindowSize) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height}
}

// Position returns the top-left corner
func (r Rect) Position() WindowPosition {
	return WindowPosition{X: r.X, Y: r.Y}
}

// Size returns the dimensions
func (r Rect) Size() WindowSize {
	return WindowSize{Width: r.Width, Height: r.Height}
}

// WithPosition returns a copy moved to pos
func (r Rect) WithPosition(pos WindowPosition) Rect {
	r.X, r.Y = pos.X, pos.Y
	return r
}

// WithSize returns a copy resized to size
func (r Rect) WithSize(size WindowSize) Rect {
	r.Width, r.Height = size.Width, size.Height
	return r
}

// BoundsKind discriminates the Bounds variants
type BoundsKind string

const (
	BoundsFree      BoundsKind = "free"
	BoundsMaximized BoundsKind = "maximized"
	BoundsSnapped   BoundsKind = "snapped"
)

// Bounds is the geometry state of a window. Exactly one variant holds at a
// time, so a window can never be maximized and snapped together.
type Bounds interface {
	Kind() BoundsKind
	// RestoreRect is the last explicit free frame.
	RestoreRect() Rect
	bounds()
}

// FreeBounds places the window at an explicit frame
type FreeBounds struct {
	Frame Rect
}

// MaximizedBounds fills the work area and remembers the free frame
type MaximizedBounds struct {
	Restore Rect
}

// SnappedBounds occupies a snap zone and remembers the free frame
type SnappedBounds struct {
	Zone    SnapLayout
	Restore Rect
}

func (FreeBounds) Kind() BoundsKind      { return BoundsFree }
func (MaximizedBounds) Kind() BoundsKind { return BoundsMaximized }
func (SnappedBounds) Kind() BoundsKind   { return BoundsSnapped }

func (b FreeBounds) RestoreRect() Rect      { return b.Frame }
func (b MaximizedBounds) RestoreRect() Rect { return b.Restore }
func (b SnappedBounds) RestoreRect() Rect   { return b.Restore }

func (FreeBounds) bounds()      {}
func (MaximizedBounds) bounds() {}
func (SnappedBounds) bounds()   {}

// WindowRecord is the authoritative state of one open window
type WindowRecord struct {
	ID           string
	AppID        string
	Title        string
	Icon         string
	Bounds       Bounds
	MinSize      WindowSize
	ZIndex       int
	Minimized    bool
	AlwaysOnTop  bool
	Transparency float64
	Animation    Animation
	CreatedAt    time.Time
}

// IsMaximized reports whether the window fills the work area
func (w *WindowRecord) IsMaximized() bool {
	return w.Bounds.Kind() == BoundsMaximized
}

// IsSnapped reports whether the window occupies a snap zone
func (w *WindowRecord) IsSnapped() bool {
	return w.Bounds.Kind() == BoundsSnapped
}

// SnapLayout returns the occupied zone, or SnapNone
func (w *WindowRecord) SnapLayout() SnapLayout {
	if s, ok := w.Bounds.(SnappedBounds); ok {
		return s.Zone
	}
	return SnapNone
}

// WindowView is the read-only projection handed to the shell
type WindowView struct {
	ID           string         `json:"id"`
	AppID        string         `json:"app_id"`
	Title        string         `json:"title"`
	Icon         string         `json:"icon"`
	Position     WindowPosition `json:"position"`
	Size         WindowSize     `json:"size"`
	Restore      Rect           `json:"restore"`
	ZIndex       int            `json:"z_index"`
	IsActive     bool           `json:"is_active"`
	IsMinimized  bool           `json:"is_minimized"`
	IsMaximized  bool           `json:"is_maximized"`
	IsSnapped    bool           `json:"is_snapped"`
	SnapLayout   SnapLayout     `json:"snap_layout,omitempty"`
	AlwaysOnTop  bool           `json:"always_on_top"`
	Transparency float64        `json:"transparency"`
	Animation    Animation      `json:"animation,omitempty"`
	DesktopID    string         `json:"desktop_id,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// Stats contains window registry statistics
type Stats struct {
	TotalWindows     int     `json:"total_windows"`
	VisibleWindows   int     `json:"visible_windows"`
	MinimizedWindows int     `json:"minimized_windows"`
	TopZIndex        int     `json:"top_z_index"`
	ActiveWindowID   *string `json:"active_window_id,omitempty"`
}
