package window

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/geometry"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
)

// manualScheduler queues callbacks until the test fires them
type manualScheduler struct {
	mu      sync.Mutex
	pending []*manualTimer
}

type manualTimer struct {
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	wasPending := !t.stopped
	t.stopped = true
	return wasPending
}

func (s *manualScheduler) AfterFunc(_ time.Duration, fn func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{fn: fn}
	s.pending = append(s.pending, t)
	return t
}

// fireAll runs every queued callback, including stopped ones, to prove
// stale callbacks are harmless.
func (s *manualScheduler) fireAll() {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()
	for _, t := range pending {
		t.fn()
	}
}

var (
	hd         = types.Viewport{Width: 1920, Height: 1080, TaskbarHeight: 48}
	calculator = types.AppDefinition{ID: "calculator", Title: "Calculator", DefaultSize: types.WindowSize{Width: 400, Height: 600}}
	notepad    = types.AppDefinition{ID: "notepad", Title: "Notepad", DefaultSize: types.WindowSize{Width: 600, Height: 500}}
)

func newTestManager() (*Manager, *manualScheduler) {
	sched := &manualScheduler{}
	return NewManager(DefaultConfig()).WithScheduler(sched), sched
}

func TestOpenCreatesWindow(t *testing.T) {
	m, _ := newTestManager()

	rec, created := m.Open(calculator, OpenOptions{})
	require.True(t, created)

	assert.Equal(t, "calculator", rec.AppID)
	assert.Equal(t, "Calculator", rec.Title)
	assert.Equal(t, types.AnimationOpening, rec.Animation)
	assert.Equal(t, 1, rec.ZIndex)
	assert.Equal(t, rec.ID, m.ActiveID())
	assert.Equal(t, types.FreeBounds{Frame: types.Rect{X: 50, Y: 50, Width: 400, Height: 600}}, rec.Bounds)
	assert.Equal(t, 1.0, rec.Transparency)
}

func TestOpenCascadesAndClamps(t *testing.T) {
	m, _ := newTestManager()

	m.Open(calculator, OpenOptions{})
	tiny := types.AppDefinition{ID: "tiny", DefaultSize: types.WindowSize{Width: 50, Height: 50}}
	rec, _ := m.Open(tiny, OpenOptions{})

	frame := rec.Bounds.RestoreRect()
	assert.Equal(t, types.WindowPosition{X: 80, Y: 80}, frame.Position())
	assert.Equal(t, types.WindowSize{Width: 400, Height: 300}, frame.Size())
}

func TestOpenHonoursPerAppMinimum(t *testing.T) {
	m, _ := newTestManager()

	app := types.AppDefinition{
		ID:          "widget",
		DefaultSize: types.WindowSize{Width: 250, Height: 150},
		MinSize:     &types.WindowSize{Width: 200, Height: 100},
	}
	rec, _ := m.Open(app, OpenOptions{})
	assert.Equal(t, types.WindowSize{Width: 250, Height: 150}, rec.Bounds.RestoreRect().Size())
}

var paint = types.AppDefinition{
	ID:            "paint",
	DefaultSize:   types.WindowSize{Width: 800, Height: 600},
	MinSize:       &types.WindowSize{Width: 700, Height: 500},
	MultiInstance: true,
}

func TestUpdateSizeHonoursPerAppMinimum(t *testing.T) {
	m, _ := newTestManager()

	big, _ := m.Open(paint, OpenOptions{})
	assert.Equal(t, types.WindowSize{Width: 700, Height: 500}, big.MinSize)
	assert.Equal(t, types.OutcomeClamped, m.UpdateSize(big.ID, types.WindowSize{Width: 50, Height: 50}))
	rec, _ := m.Get(big.ID)
	assert.Equal(t, types.WindowSize{Width: 700, Height: 500}, rec.Bounds.RestoreRect().Size())

	widget, _ := m.Open(types.AppDefinition{
		ID:          "widget",
		DefaultSize: types.WindowSize{Width: 250, Height: 150},
		MinSize:     &types.WindowSize{Width: 200, Height: 100},
	}, OpenOptions{})
	m.UpdateSize(widget.ID, types.WindowSize{Width: 50, Height: 50})
	rec, _ = m.Get(widget.ID)
	assert.Equal(t, types.WindowSize{Width: 200, Height: 100}, rec.Bounds.RestoreRect().Size())

	plain, _ := m.Open(calculator, OpenOptions{})
	m.UpdateSize(plain.ID, types.WindowSize{Width: 50, Height: 50})
	rec, _ = m.Get(plain.ID)
	assert.Equal(t, types.WindowSize{Width: DefaultMinWidth, Height: DefaultMinHeight}, rec.Bounds.RestoreRect().Size())
}

func TestArrangeHonoursPerAppMinimum(t *testing.T) {
	m, _ := newTestManager()

	ids := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		rec, _ := m.Open(paint, OpenOptions{ForceNew: true})
		ids = append(ids, rec.ID)
	}

	m.Arrange(types.ArrangeTileHorizontal, ids, hd)
	for _, wid := range ids {
		rec, _ := m.Get(wid)
		assert.Equal(t, 700, rec.Bounds.RestoreRect().Width)
	}
}

func TestOpenPlacesBeforeNotifying(t *testing.T) {
	m, _ := newTestManager()

	placed := map[string]bool{}
	var notified []bool
	m.Subscribe(func(ev Event) {
		if ev.Kind == EventOpened {
			notified = append(notified, placed[ev.WindowID])
		}
	})

	rec, created := m.Open(calculator, OpenOptions{Place: func(windowID string) { placed[windowID] = true }})
	require.True(t, created)
	assert.True(t, placed[rec.ID])
	assert.Equal(t, []bool{true}, notified)

	// Reuse does not place again
	placed = map[string]bool{}
	m.Open(calculator, OpenOptions{Place: func(windowID string) { placed[windowID] = true }})
	assert.Empty(t, placed)
}

func TestCommitSnapKeepsGivenRestore(t *testing.T) {
	m, _ := newTestManager()
	a, _ := m.Open(calculator, OpenOptions{})
	before := a.Bounds.RestoreRect()

	m.UpdatePosition(a.ID, types.WindowPosition{X: 5, Y: 300})
	assert.Equal(t, types.OutcomeApplied, m.CommitSnap(a.ID, types.SnapLeft, before))
	m.Unsnap(a.ID)

	rec, _ := m.Get(a.ID)
	assert.Equal(t, types.FreeBounds{Frame: before}, rec.Bounds)

	m.ToggleMaximize(a.ID)
	assert.Equal(t, types.OutcomeRejected, m.CommitSnap(a.ID, types.SnapRight, before))
	assert.Equal(t, types.OutcomeRejected, m.CommitSnap(a.ID, types.SnapNone, before))
	assert.Equal(t, types.OutcomeMissing, m.CommitSnap("win_missing", types.SnapLeft, before))
}

func TestGestureWritesRespectBoundsState(t *testing.T) {
	m, _ := newTestManager()
	a, _ := m.Open(calculator, OpenOptions{})

	assert.Equal(t, types.OutcomeApplied, m.DragTo(a.ID, types.WindowPosition{X: 70, Y: 80}))
	assert.Equal(t, types.OutcomeApplied, m.ResizeTo(a.ID, types.WindowSize{Width: 500, Height: 400}))

	m.Snap(a.ID, types.SnapLeft)
	assert.Equal(t, types.OutcomeRejected, m.ResizeTo(a.ID, types.WindowSize{Width: 600, Height: 400}))

	m.ToggleMaximize(a.ID)
	assert.Equal(t, types.OutcomeRejected, m.DragTo(a.ID, types.WindowPosition{X: 0, Y: 0}))
	rec, _ := m.Get(a.ID)
	assert.True(t, rec.IsMaximized())
	assert.Equal(t, types.Rect{X: 70, Y: 80, Width: 500, Height: 400}, rec.Bounds.RestoreRect())
}

func TestSingleInstanceIdempotence(t *testing.T) {
	m, _ := newTestManager()

	first, created := m.Open(calculator, OpenOptions{})
	require.True(t, created)
	m.Open(notepad, OpenOptions{})
	m.Minimize(first.ID)

	again, created := m.Open(calculator, OpenOptions{})
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)
	assert.False(t, again.Minimized)
	assert.Equal(t, m.Stats().TopZIndex, again.ZIndex)
	assert.Equal(t, first.ID, m.ActiveID())
	assert.Len(t, m.List(), 2)
}

func TestForceNewCreatesInstances(t *testing.T) {
	m, _ := newTestManager()

	a, _ := m.Open(calculator, OpenOptions{})
	b, created := m.Open(calculator, OpenOptions{ForceNew: true})
	require.True(t, created)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Greater(t, b.ZIndex, a.ZIndex)
	assert.Len(t, m.Instances("calculator"), 2)

	// Reuse picks the most recently raised instance
	m.Focus(a.ID)
	reused, _ := m.Open(calculator, OpenOptions{})
	assert.Equal(t, a.ID, reused.ID)
}

func TestZOrderMonotonicity(t *testing.T) {
	m, _ := newTestManager()

	a, _ := m.Open(calculator, OpenOptions{})
	b, _ := m.Open(notepad, OpenOptions{})
	m.Minimize(b.ID)

	m.Focus(a.ID)
	focused, _ := m.Get(a.ID)
	minimized, _ := m.Get(b.ID)

	// Focused window sits above every record, minimized ones included
	assert.Greater(t, focused.ZIndex, minimized.ZIndex)
	assert.True(t, minimized.Minimized)

	// Closing the top window never lets its z-index be handed out again
	top := m.Stats().TopZIndex
	m.Close(a.ID)
	m.Focus(b.ID)
	raised, _ := m.Get(b.ID)
	assert.Greater(t, raised.ZIndex, top)
}

func TestFocusLeavesOthersUntouched(t *testing.T) {
	m, _ := newTestManager()

	a, _ := m.Open(calculator, OpenOptions{})
	b, _ := m.Open(notepad, OpenOptions{})
	before, _ := m.Get(b.ID)

	assert.Equal(t, types.OutcomeApplied, m.Focus(a.ID))
	after, _ := m.Get(b.ID)
	assert.Equal(t, before.ZIndex, after.ZIndex)
	assert.Equal(t, before.Bounds, after.Bounds)

	assert.Equal(t, types.OutcomeMissing, m.Focus("win_missing"))
}

func TestMinimizeClearsActive(t *testing.T) {
	m, _ := newTestManager()

	a, _ := m.Open(calculator, OpenOptions{})
	b, _ := m.Open(notepad, OpenOptions{})

	assert.Equal(t, types.OutcomeApplied, m.Minimize(b.ID))
	assert.Equal(t, "", m.ActiveID())

	// No window is auto-selected
	rec, _ := m.Get(a.ID)
	assert.False(t, rec.Minimized)
	assert.Equal(t, types.OutcomeUnchanged, m.Minimize(b.ID))
}

func TestMinimizeAllThenRestore(t *testing.T) {
	m, _ := newTestManager()

	a, _ := m.Open(calculator, OpenOptions{})
	b, _ := m.Open(notepad, OpenOptions{})
	c, _ := m.Open(calculator, OpenOptions{ForceNew: true})
	m.UpdatePosition(b.ID, types.WindowPosition{X: 300, Y: 200})
	beforeB, _ := m.Get(b.ID)
	beforeC, _ := m.Get(c.ID)

	assert.Equal(t, 3, m.MinimizeAll())
	assert.Equal(t, "", m.ActiveID())
	for _, rec := range m.List() {
		assert.True(t, rec.Minimized)
	}

	m.Focus(a.ID)

	restored, _ := m.Get(a.ID)
	assert.False(t, restored.Minimized)

	afterB, _ := m.Get(b.ID)
	afterC, _ := m.Get(c.ID)
	assert.True(t, afterB.Minimized)
	assert.True(t, afterC.Minimized)
	assert.Equal(t, beforeB.Bounds, afterB.Bounds)
	assert.Equal(t, beforeC.Bounds, afterC.Bounds)
}

func TestCloseIdempotence(t *testing.T) {
	m, _ := newTestManager()

	a, _ := m.Open(calculator, OpenOptions{})
	b, _ := m.Open(notepad, OpenOptions{})

	assert.Equal(t, types.OutcomeApplied, m.Close(a.ID))
	snapshot := m.List()

	assert.Equal(t, types.OutcomeMissing, m.Close(a.ID))
	assert.Equal(t, snapshot, m.List())

	_, ok := m.Get(a.ID)
	assert.False(t, ok)
	_, ok = m.Get(b.ID)
	assert.True(t, ok)
}

func TestCloseActiveLeavesNoneActive(t *testing.T) {
	m, _ := newTestManager()

	m.Open(calculator, OpenOptions{})
	b, _ := m.Open(notepad, OpenOptions{})

	m.Close(b.ID)
	assert.Equal(t, "", m.ActiveID())
}

func TestToggleMaximize(t *testing.T) {
	m, _ := newTestManager()

	a, _ := m.Open(calculator, OpenOptions{})
	m.Open(notepad, OpenOptions{})
	original := a.Bounds.RestoreRect()

	assert.Equal(t, types.OutcomeApplied, m.ToggleMaximize(a.ID))
	rec, _ := m.Get(a.ID)
	assert.True(t, rec.IsMaximized())
	assert.False(t, rec.IsSnapped())
	assert.Equal(t, a.ID, m.ActiveID())
	assert.Equal(t, types.AnimationMaximizing, rec.Animation)

	assert.Equal(t, types.OutcomeApplied, m.ToggleMaximize(a.ID))
	rec, _ = m.Get(a.ID)
	assert.False(t, rec.IsMaximized())
	assert.Equal(t, types.FreeBounds{Frame: original}, rec.Bounds)
}

func TestMaximizeClearsSnap(t *testing.T) {
	m, _ := newTestManager()

	a, _ := m.Open(calculator, OpenOptions{})
	m.Snap(a.ID, types.SnapLeft)

	m.ToggleMaximize(a.ID)
	rec, _ := m.Get(a.ID)
	assert.True(t, rec.IsMaximized())
	assert.False(t, rec.IsSnapped())
	assert.Equal(t, types.SnapNone, rec.SnapLayout())
}

func TestSnapRoundTrip(t *testing.T) {
	m, _ := newTestManager()

	a, _ := m.Open(calculator, OpenOptions{})
	m.UpdatePosition(a.ID, types.WindowPosition{X: 100, Y: 100})
	m.UpdateSize(a.ID, types.WindowSize{Width: 800, Height: 600})

	assert.Equal(t, types.OutcomeApplied, m.Snap(a.ID, types.SnapLeft))
	rec, _ := m.Get(a.ID)
	assert.True(t, rec.IsSnapped())
	assert.Equal(t, types.SnapLeft, rec.SnapLayout())
	assert.Equal(t, geometry.ZoneRect(types.SnapLeft, hd), geometry.Frame(rec.Bounds, hd))

	assert.Equal(t, types.OutcomeApplied, m.Unsnap(a.ID))
	rec, _ = m.Get(a.ID)
	assert.False(t, rec.IsSnapped())
	assert.Equal(t, types.FreeBounds{Frame: types.Rect{X: 100, Y: 100, Width: 800, Height: 600}}, rec.Bounds)

	assert.Equal(t, types.OutcomeUnchanged, m.Unsnap(a.ID))
	assert.Equal(t, types.OutcomeRejected, m.Snap(a.ID, "middle"))
}

func TestResnapKeepsOriginalRestore(t *testing.T) {
	m, _ := newTestManager()

	a, _ := m.Open(calculator, OpenOptions{})
	original := a.Bounds.RestoreRect()

	m.Snap(a.ID, types.SnapLeft)
	m.Snap(a.ID, types.SnapTopRight)
	assert.Equal(t, types.OutcomeUnchanged, m.Snap(a.ID, types.SnapTopRight))

	m.Unsnap(a.ID)
	rec, _ := m.Get(a.ID)
	assert.Equal(t, types.FreeBounds{Frame: original}, rec.Bounds)
}

func TestUpdatePositionOnSnappedFreesWindow(t *testing.T) {
	m, _ := newTestManager()

	a, _ := m.Open(calculator, OpenOptions{})
	m.Snap(a.ID, types.SnapRight)

	m.UpdatePosition(a.ID, types.WindowPosition{X: 500, Y: 40})
	rec, _ := m.Get(a.ID)
	assert.Equal(t, types.FreeBounds{Frame: types.Rect{X: 500, Y: 40, Width: 400, Height: 600}}, rec.Bounds)
}

func TestUpdatePositionOnMaximizedUpdatesRestore(t *testing.T) {
	m, _ := newTestManager()

	a, _ := m.Open(calculator, OpenOptions{})
	m.ToggleMaximize(a.ID)
	m.UpdatePosition(a.ID, types.WindowPosition{X: 10, Y: 20})

	rec, _ := m.Get(a.ID)
	assert.True(t, rec.IsMaximized())
	assert.Equal(t, types.WindowPosition{X: 10, Y: 20}, rec.Bounds.RestoreRect().Position())
}

func TestResizeClamp(t *testing.T) {
	m, _ := newTestManager()

	a, _ := m.Open(notepad, OpenOptions{})

	assert.Equal(t, types.OutcomeClamped, m.UpdateSize(a.ID, types.WindowSize{Width: 10, Height: 10}))
	rec, _ := m.Get(a.ID)
	assert.Equal(t, types.WindowSize{Width: 400, Height: 300}, rec.Bounds.RestoreRect().Size())

	assert.Equal(t, types.OutcomeClamped, m.UpdateSize(a.ID, types.WindowSize{Width: 1, Height: 1}))
	assert.Equal(t, types.OutcomeApplied, m.UpdateSize(a.ID, types.WindowSize{Width: 900, Height: 700}))
	assert.Equal(t, types.OutcomeUnchanged, m.UpdateSize(a.ID, types.WindowSize{Width: 900, Height: 700}))
	assert.Equal(t, types.OutcomeMissing, m.UpdateSize("win_missing", types.WindowSize{Width: 900, Height: 700}))
}

func TestRestore(t *testing.T) {
	m, _ := newTestManager()

	a, _ := m.Open(calculator, OpenOptions{})
	m.ToggleMaximize(a.ID)
	m.Minimize(a.ID)

	assert.Equal(t, types.OutcomeApplied, m.Restore(a.ID))
	rec, _ := m.Get(a.ID)
	assert.False(t, rec.Minimized)
	assert.False(t, rec.IsMaximized())
	assert.Equal(t, a.ID, m.ActiveID())
}

func TestSetTitleSanitizes(t *testing.T) {
	m, _ := newTestManager()

	a, _ := m.Open(notepad, OpenOptions{})
	assert.Equal(t, types.OutcomeApplied, m.SetTitle(a.ID, "<i>todo.txt</i>"))
	rec, _ := m.Get(a.ID)
	assert.Equal(t, "todo.txt", rec.Title)

	assert.Equal(t, types.OutcomeUnchanged, m.SetTitle(a.ID, "todo.txt"))
	assert.Equal(t, types.OutcomeRejected, m.SetTitle(a.ID, "<b></b>"))
}

func TestSetTransparencyClamps(t *testing.T) {
	m, _ := newTestManager()

	a, _ := m.Open(notepad, OpenOptions{})
	assert.Equal(t, types.OutcomeClamped, m.SetTransparency(a.ID, 0))
	rec, _ := m.Get(a.ID)
	assert.Equal(t, MinTransparency, rec.Transparency)

	assert.Equal(t, types.OutcomeApplied, m.SetTransparency(a.ID, 0.5))
	assert.Equal(t, types.OutcomeClamped, m.SetTransparency(a.ID, 3))
	rec, _ = m.Get(a.ID)
	assert.Equal(t, MaxTransparency, rec.Transparency)
}

func TestAlwaysOnTopPaintOrder(t *testing.T) {
	m, _ := newTestManager()

	a, _ := m.Open(calculator, OpenOptions{})
	b, _ := m.Open(notepad, OpenOptions{})

	m.ToggleAlwaysOnTop(a.ID)
	list := m.List()
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID)
	assert.Equal(t, a.ID, list[1].ID)

	// z-index itself is untouched
	rec, _ := m.Get(a.ID)
	assert.Equal(t, a.ZIndex, rec.ZIndex)
}

func TestArrange(t *testing.T) {
	m, _ := newTestManager()

	a, _ := m.Open(calculator, OpenOptions{})
	b, _ := m.Open(notepad, OpenOptions{})
	c, _ := m.Open(calculator, OpenOptions{ForceNew: true})
	d, _ := m.Open(notepad, OpenOptions{ForceNew: true})
	m.Minimize(c.ID)
	m.ToggleMaximize(d.ID)
	m.Snap(b.ID, types.SnapRight)

	n := m.Arrange(types.ArrangeTileHorizontal, []string{a.ID, b.ID, c.ID, d.ID, "win_missing"}, hd)
	assert.Equal(t, 2, n)

	ra, _ := m.Get(a.ID)
	rb, _ := m.Get(b.ID)
	assert.Equal(t, types.FreeBounds{Frame: types.Rect{X: 0, Y: 0, Width: 960, Height: 1032}}, ra.Bounds)
	assert.Equal(t, types.FreeBounds{Frame: types.Rect{X: 960, Y: 0, Width: 960, Height: 1032}}, rb.Bounds)
	assert.Greater(t, rb.ZIndex, ra.ZIndex)
	assert.Equal(t, b.ID, m.ActiveID())

	rd, _ := m.Get(d.ID)
	assert.True(t, rd.IsMaximized())

	assert.Equal(t, 0, m.Arrange("spiral", []string{a.ID}, hd))
}

func TestArrangeClampsTinyTiles(t *testing.T) {
	m, _ := newTestManager()

	ids := make([]string, 0, 6)
	for i := 0; i < 6; i++ {
		rec, _ := m.Open(calculator, OpenOptions{ForceNew: true})
		ids = append(ids, rec.ID)
	}

	m.Arrange(types.ArrangeTileHorizontal, ids, hd)
	for _, wid := range ids {
		rec, _ := m.Get(wid)
		assert.GreaterOrEqual(t, rec.Bounds.RestoreRect().Width, DefaultMinWidth)
	}
}

func TestAnimationClears(t *testing.T) {
	m, sched := newTestManager()

	a, _ := m.Open(calculator, OpenOptions{})
	assert.Equal(t, types.AnimationOpening, a.Animation)

	sched.fireAll()
	rec, _ := m.Get(a.ID)
	assert.Equal(t, types.AnimationNone, rec.Animation)
}

func TestSupersededAnimationTimerIsNoop(t *testing.T) {
	m, sched := newTestManager()

	a, _ := m.Open(calculator, OpenOptions{})
	m.Snap(a.ID, types.SnapLeft)

	// Fire only the first (opening) timer; the snapping tag must survive
	sched.mu.Lock()
	first := sched.pending[0]
	sched.pending = sched.pending[1:]
	sched.mu.Unlock()
	first.fn()

	rec, _ := m.Get(a.ID)
	assert.Equal(t, types.AnimationSnapping, rec.Animation)
}

func TestAnimationTimerAfterCloseIsNoop(t *testing.T) {
	m, sched := newTestManager()

	a, _ := m.Open(calculator, OpenOptions{})
	var events []Event
	m.Subscribe(func(ev Event) { events = append(events, ev) })

	m.Close(a.ID)
	assert.NotPanics(t, sched.fireAll)

	_, ok := m.Get(a.ID)
	assert.False(t, ok)
	require.Len(t, events, 1)
	assert.Equal(t, EventClosed, events[0].Kind)
}

func TestZeroAnimationDurationSkipsTimers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AnimationDuration = 0
	sched := &manualScheduler{}
	m := NewManager(cfg).WithScheduler(sched)

	a, _ := m.Open(calculator, OpenOptions{})
	assert.Equal(t, types.AnimationNone, a.Animation)
	assert.Empty(t, sched.pending)
}

func TestObserverReceivesChanges(t *testing.T) {
	m, _ := newTestManager()

	var kinds []EventKind
	cancel := m.Subscribe(func(ev Event) {
		// Observers run after the lock is released, so reading is safe
		m.Stats()
		kinds = append(kinds, ev.Kind)
	})

	a, _ := m.Open(calculator, OpenOptions{})
	m.Focus(a.ID)
	m.Close("win_missing")
	cancel()
	m.Close(a.ID)

	assert.Equal(t, []EventKind{EventOpened, EventFocused}, kinds)
}

func TestConcurrentOperations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AnimationDuration = 0
	m := NewManager(cfg)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, _ := m.Open(calculator, OpenOptions{ForceNew: true})
			m.Focus(rec.ID)
			m.UpdatePosition(rec.ID, types.WindowPosition{X: 1, Y: 2})
			m.List()
		}()
	}
	wg.Wait()

	list := m.List()
	assert.Len(t, list, 20)

	seen := make(map[int]bool)
	for _, rec := range list {
		assert.False(t, seen[rec.ZIndex], "z-index %d reused", rec.ZIndex)
		seen[rec.ZIndex] = true
	}
}

func TestView(t *testing.T) {
	m, _ := newTestManager()

	a, _ := m.Open(calculator, OpenOptions{})
	m.Snap(a.ID, types.SnapBottomRight)
	rec, _ := m.Get(a.ID)

	v := View(rec, hd, m.ActiveID())
	assert.Equal(t, geometry.ZoneRect(types.SnapBottomRight, hd).Position(), v.Position)
	assert.True(t, v.IsSnapped)
	assert.True(t, v.IsActive)
	assert.Equal(t, types.SnapBottomRight, v.SnapLayout)
	assert.Equal(t, types.Rect{X: 50, Y: 50, Width: 400, Height: 600}, v.Restore)
}
