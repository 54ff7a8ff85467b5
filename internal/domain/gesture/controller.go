package gesture

import (
	"sync"

	"go.uber.org/zap"

	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/geometry"
	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/snap"
	"github.com/thekoushikdurgas/durgasos/backend/internal/infrastructure/monitoring"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
)

// Kind identifies the gesture in progress
type Kind string

const (
	KindNone   Kind = ""
	KindDrag   Kind = "drag"
	KindResize Kind = "resize"
)

// Windows is the slice of the window registry gestures drive
type Windows interface {
	Get(windowID string) (types.WindowRecord, bool)
	Focus(windowID string) types.Outcome
	Unsnap(windowID string) types.Outcome
	UpdatePosition(windowID string, pos types.WindowPosition) types.Outcome
	DragTo(windowID string, pos types.WindowPosition) types.Outcome
	ResizeTo(windowID string, size types.WindowSize) types.Outcome
	CommitSnap(windowID string, zone types.SnapLayout, restore types.Rect) types.Outcome
}

// ViewportSource returns the current viewport. It is queried on every use.
type ViewportSource func() types.Viewport

// Result reports what a pointer event did
type Result struct {
	Outcome   types.Outcome    `json:"outcome"`
	Gesture   Kind             `json:"gesture,omitempty"`
	WindowID  string           `json:"window_id,omitempty"`
	Preview   *snap.Preview    `json:"preview,omitempty"`
	Committed types.SnapLayout `json:"committed,omitempty"`
}

type dragState struct {
	windowID string
	offset   types.WindowPosition
	restore  types.Rect // free frame at pointer-down
}

type resizeState struct {
	windowID string
	start    types.WindowPosition
	initial  types.WindowSize
	origin   types.WindowPosition
	minSize  types.WindowSize
}

// Controller runs the drag and resize state machines for one input device.
// At most one gesture is active; a second pointer-down is a conflict.
type Controller struct {
	mu       sync.Mutex
	drag     *dragState         // Protected by mu
	resize   *resizeState       // Protected by mu
	capture  Capture            // Protected by mu
	preview  *snap.Preview      // Protected by mu
	windows  Windows
	detector *snap.Detector
	viewport ViewportSource
	capturer Capturer
	minSize  types.WindowSize
	logger   *zap.Logger
	metrics  *monitoring.Metrics
}

// Option configures a Controller
type Option func(*Controller)

// WithCapturer sets the host pointer-capture source
func WithCapturer(c Capturer) Option {
	return func(ctl *Controller) {
		if c != nil {
			ctl.capturer = c
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(ctl *Controller) {
		if logger != nil {
			ctl.logger = logger
		}
	}
}

// WithMetrics records gesture outcomes
func WithMetrics(m *monitoring.Metrics) Option {
	return func(ctl *Controller) {
		ctl.metrics = m
	}
}

// WithMinSize sets the live resize floor for windows without their own
func WithMinSize(size types.WindowSize) Option {
	return func(ctl *Controller) {
		if !size.IsZero() {
			ctl.minSize = size
		}
	}
}

// NewController creates an idle controller
func NewController(windows Windows, detector *snap.Detector, viewport ViewportSource, opts ...Option) *Controller {
	if detector == nil {
		detector = snap.NewDetector(snap.DefaultThreshold)
	}
	c := &Controller{
		windows:  windows,
		detector: detector,
		viewport: viewport,
		capturer: noopCapturer{},
		minSize:  types.WindowSize{Width: 400, Height: 300},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Active returns the gesture in progress
func (c *Controller) Active() Kind {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active()
}

// Handle routes a pointer event to the state machine
func (c *Controller) Handle(ev types.PointerEvent) Result {
	switch ev.Kind {
	case types.PointerDown:
		return c.Down(ev)
	case types.PointerMove:
		return c.Move(ev.X, ev.Y)
	case types.PointerUp:
		return c.Up()
	case types.PointerCancel:
		return c.Cancel()
	default:
		return Result{Outcome: types.OutcomeRejected}
	}
}

// Down focuses the target window and starts a gesture for title bar and
// grip hits. Controls and the body only focus.
func (c *Controller) Down(ev types.PointerEvent) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if kind := c.active(); kind != KindNone {
		c.logger.Debug("pointer down during gesture ignored",
			zap.String("gesture", string(kind)),
			zap.String("window_id", ev.WindowID),
		)
		c.recordGesture(kind, "conflict")
		return Result{Outcome: types.OutcomeConflict, Gesture: kind}
	}

	rec, ok := c.windows.Get(ev.WindowID)
	if !ok {
		return Result{Outcome: types.OutcomeMissing, WindowID: ev.WindowID}
	}

	c.windows.Focus(rec.ID)

	switch ev.Target {
	case types.HitTitleBar:
		return c.beginDrag(rec, ev.X, ev.Y)
	case types.HitGrip:
		return c.beginResize(rec, ev.X, ev.Y)
	default:
		return Result{Outcome: types.OutcomeApplied, WindowID: rec.ID}
	}
}

// beginDrag starts a drag unless the window is maximized. A snapped window
// is released first and keeps the pointer at the same fraction of the
// title bar (must hold lock).
func (c *Controller) beginDrag(rec types.WindowRecord, x, y int) Result {
	if rec.IsMaximized() {
		return Result{Outcome: types.OutcomeApplied, WindowID: rec.ID}
	}

	vp := c.viewport()
	frame := geometry.Frame(rec.Bounds, vp)
	offset := types.WindowPosition{X: x - frame.X, Y: y - frame.Y}
	restore := rec.Bounds.RestoreRect()

	if rec.IsSnapped() {
		if frame.Width > 0 {
			offset.X = offset.X * restore.Width / frame.Width
		}
		c.windows.Unsnap(rec.ID)
		c.windows.UpdatePosition(rec.ID, types.WindowPosition{X: x - offset.X, Y: y - offset.Y})
	}

	c.drag = &dragState{windowID: rec.ID, offset: offset, restore: restore}
	c.capture = c.capturer.Acquire(KindDrag, rec.ID)
	c.logger.Debug("drag started", zap.String("window_id", rec.ID))
	return Result{Outcome: types.OutcomeApplied, Gesture: KindDrag, WindowID: rec.ID}
}

// beginResize starts a resize only for free windows (must hold lock)
func (c *Controller) beginResize(rec types.WindowRecord, x, y int) Result {
	if rec.Bounds.Kind() != types.BoundsFree {
		return Result{Outcome: types.OutcomeRejected, WindowID: rec.ID}
	}

	frame := rec.Bounds.RestoreRect()
	minSize := rec.MinSize
	if minSize.IsZero() {
		minSize = c.minSize
	}
	c.resize = &resizeState{
		windowID: rec.ID,
		start:    types.WindowPosition{X: x, Y: y},
		initial:  frame.Size(),
		origin:   frame.Position(),
		minSize:  minSize,
	}
	c.capture = c.capturer.Acquire(KindResize, rec.ID)
	c.logger.Debug("resize started", zap.String("window_id", rec.ID))
	return Result{Outcome: types.OutcomeApplied, Gesture: KindResize, WindowID: rec.ID}
}

// Move advances the active gesture. Without one it does nothing. A window
// that was closed, or whose bounds changed state under the gesture, ends it.
func (c *Controller) Move(x, y int) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.drag != nil:
		d := c.drag
		pos := types.WindowPosition{X: x - d.offset.X, Y: y - d.offset.Y}
		outcome := c.windows.DragTo(d.windowID, pos)
		if interrupted(outcome) {
			c.end(endReason(outcome))
			return Result{Outcome: outcome, WindowID: d.windowID}
		}

		c.preview = nil
		if rec, ok := c.windows.Get(d.windowID); ok {
			if p, ok := c.detector.Preview(rec.Bounds.RestoreRect(), c.viewport()); ok {
				c.preview = &p
			}
		}
		return Result{Outcome: outcome, Gesture: KindDrag, WindowID: d.windowID, Preview: c.preview}

	case c.resize != nil:
		r := c.resize
		size := types.WindowSize{
			Width:  r.initial.Width + x - r.start.X,
			Height: r.initial.Height + y - r.start.Y,
		}
		size = c.fitWorkArea(size, r.origin, r.minSize)
		outcome := c.windows.ResizeTo(r.windowID, size)
		if interrupted(outcome) {
			c.end(endReason(outcome))
			return Result{Outcome: outcome, WindowID: r.windowID}
		}
		return Result{Outcome: outcome, Gesture: KindResize, WindowID: r.windowID}

	default:
		return Result{Outcome: types.OutcomeUnchanged}
	}
}

// fitWorkArea caps a live size at the work area edge, never below the
// minimum. The registry applies the minimum clamp itself (must hold lock).
func (c *Controller) fitWorkArea(size types.WindowSize, origin types.WindowPosition, minSize types.WindowSize) types.WindowSize {
	wa := geometry.WorkArea(c.viewport())
	if wa.Width <= 0 || wa.Height <= 0 {
		return size
	}
	if maxW := wa.X + wa.Width - origin.X; size.Width > maxW && maxW >= minSize.Width {
		size.Width = maxW
	}
	if maxH := wa.Y + wa.Height - origin.Y; size.Height > maxH && maxH >= minSize.Height {
		size.Height = maxH
	}
	return size
}

// Up finishes the gesture, committing a snap when a zone is armed. The
// snapped window remembers its frame from before the drag.
func (c *Controller) Up() Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	kind := c.active()
	if kind == KindNone {
		return Result{Outcome: types.OutcomeUnchanged}
	}

	res := Result{Outcome: types.OutcomeApplied, Gesture: kind}
	if c.drag != nil {
		res.WindowID = c.drag.windowID
		if c.preview != nil {
			res.Outcome = c.windows.CommitSnap(c.drag.windowID, c.preview.Zone, c.drag.restore)
			if res.Outcome.Success() {
				res.Committed = c.preview.Zone
			}
		}
	} else if c.resize != nil {
		res.WindowID = c.resize.windowID
	}

	if res.Committed != types.SnapNone {
		c.end("snapped")
	} else {
		c.end("released")
	}
	return res
}

// Cancel abandons the gesture, keeping the last written bounds
func (c *Controller) Cancel() Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	kind := c.active()
	if kind == KindNone {
		return Result{Outcome: types.OutcomeUnchanged}
	}
	c.end("cancelled")
	return Result{Outcome: types.OutcomeApplied, Gesture: kind}
}

// Close tears the controller down, releasing any held capture
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active() != KindNone {
		c.end("teardown")
	}
}

// end is the single exit of every gesture. It releases the capture exactly
// once (must hold lock).
func (c *Controller) end(result string) {
	kind := c.active()
	if c.capture != nil {
		c.capture.Release()
		c.capture = nil
	}
	c.drag = nil
	c.resize = nil
	c.preview = nil

	c.recordGesture(kind, result)
	c.logger.Debug("gesture ended", zap.String("gesture", string(kind)), zap.String("result", result))
}

// interrupted reports whether a gesture update found the window gone or
// no longer in a state the gesture applies to
func interrupted(outcome types.Outcome) bool {
	return outcome == types.OutcomeMissing || outcome == types.OutcomeRejected
}

func endReason(outcome types.Outcome) string {
	if outcome == types.OutcomeMissing {
		return "lost"
	}
	return "interrupted"
}

// active returns the current gesture kind (must hold lock)
func (c *Controller) active() Kind {
	switch {
	case c.drag != nil:
		return KindDrag
	case c.resize != nil:
		return KindResize
	default:
		return KindNone
	}
}

func (c *Controller) recordGesture(kind Kind, result string) {
	if c.metrics != nil && kind != KindNone {
		c.metrics.RecordGesture(string(kind), result)
	}
}
