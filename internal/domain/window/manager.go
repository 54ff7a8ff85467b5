package window

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/focus"
	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/geometry"
	"github.com/thekoushikdurgas/durgasos/backend/internal/infrastructure/monitoring"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/id"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/utils"
)

// OpenOptions controls instance reuse on open
type OpenOptions struct {
	ForceNew bool

	// Place runs under the registry lock before a new record is visible to
	// readers or observers. It must not call back into the Manager.
	Place func(windowID string)
}

// Manager is the authoritative window registry
type Manager struct {
	mu         sync.RWMutex
	windows    map[string]*types.WindowRecord // Protected by mu
	arbiter    *focus.Arbiter                 // Protected by mu
	animations map[string]animation           // Protected by mu
	generation uint64                         // Protected by mu

	cfg       Config
	scheduler Scheduler
	logger    *zap.Logger
	metrics   *monitoring.Metrics

	observersMu sync.RWMutex
	observers   map[int]Observer
	nextObs     int
}

// NewManager creates a new window registry
func NewManager(cfg Config) *Manager {
	if cfg.MinSize.IsZero() {
		cfg.MinSize = DefaultConfig().MinSize
	}
	if cfg.DefaultSize.IsZero() {
		cfg.DefaultSize = cfg.MinSize
	}
	return &Manager{
		windows:    make(map[string]*types.WindowRecord),
		arbiter:    focus.NewArbiter(),
		animations: make(map[string]animation),
		cfg:        cfg,
		scheduler:  SystemScheduler{},
		logger:     zap.NewNop(),
		observers:  make(map[int]Observer),
	}
}

// WithMetrics adds metrics tracking to the manager
func (m *Manager) WithMetrics(metrics *monitoring.Metrics) *Manager {
	m.metrics = metrics
	return m
}

// WithLogger sets the logger
func (m *Manager) WithLogger(logger *zap.Logger) *Manager {
	if logger != nil {
		m.logger = logger
	}
	return m
}

// WithScheduler replaces the animation scheduler
func (m *Manager) WithScheduler(s Scheduler) *Manager {
	if s != nil {
		m.scheduler = s
	}
	return m
}

// Config returns the registry configuration
func (m *Manager) Config() Config {
	return m.cfg
}

// Subscribe registers an observer and returns its cancel function
func (m *Manager) Subscribe(obs Observer) func() {
	m.observersMu.Lock()
	key := m.nextObs
	m.nextObs++
	m.observers[key] = obs
	m.observersMu.Unlock()

	return func() {
		m.observersMu.Lock()
		delete(m.observers, key)
		m.observersMu.Unlock()
	}
}

// emit notifies observers; callers must not hold mu
func (m *Manager) emit(events ...Event) {
	if len(events) == 0 {
		return
	}
	m.observersMu.RLock()
	observers := make([]Observer, 0, len(m.observers))
	for _, obs := range m.observers {
		observers = append(observers, obs)
	}
	m.observersMu.RUnlock()

	for _, ev := range events {
		for _, obs := range observers {
			obs(ev)
		}
	}
}

// record logs and counts a finished operation
func (m *Manager) record(op, windowID string, outcome types.Outcome) {
	m.logger.Debug("window operation",
		zap.String("op", op),
		zap.String("window_id", windowID),
		zap.String("outcome", string(outcome)),
	)
	if m.metrics != nil {
		m.metrics.RecordWindowOp(op, string(outcome))
	}
}

// finish records the operation and emits a change event when state moved
func (m *Manager) finish(op, windowID string, kind EventKind, outcome types.Outcome) types.Outcome {
	m.record(op, windowID, outcome)
	if outcome.Changed() {
		m.emit(Event{Kind: kind, WindowID: windowID, Op: op, Outcome: outcome})
	}
	return outcome
}

// Open creates a window for app, or focuses the most recently raised
// existing instance unless ForceNew is set. The bool reports whether a new
// record was created.
func (m *Manager) Open(app types.AppDefinition, opts OpenOptions) (types.WindowRecord, bool) {
	m.mu.Lock()

	if !opts.ForceNew {
		if top := m.topInstance(app.ID); top != nil {
			m.raise(top)
			rec := *top
			m.mu.Unlock()

			m.finish("open", rec.ID, EventFocused, types.OutcomeApplied)
			return rec, false
		}
	}

	size := app.DefaultSize
	if size.IsZero() {
		size = m.cfg.DefaultSize
	}
	minSize := m.cfg.minSizeFor(app)
	size, _ = geometry.ClampSize(size, minSize)
	pos := geometry.CascadeOffset(len(m.windows), m.cfg.Cascade)

	winID := string(id.NewWindowID())
	rec := &types.WindowRecord{
		ID:           winID,
		AppID:        app.ID,
		Title:        app.Title,
		Icon:         app.Icon,
		Bounds:       types.FreeBounds{Frame: types.NewRect(pos, size)},
		MinSize:      minSize,
		Transparency: MaxTransparency,
		CreatedAt:    time.Now(),
	}
	rec.ZIndex = m.arbiter.Raise(winID)
	if opts.Place != nil {
		opts.Place(winID)
	}
	m.windows[winID] = rec
	m.animate(rec, types.AnimationOpening)

	out := *rec
	count := len(m.windows)
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.IncWindowsTotal()
		m.metrics.SetWindowsOpen(count)
	}
	m.logger.Info("window opened",
		zap.String("window_id", winID),
		zap.String("app_id", app.ID),
		zap.Bool("force_new", opts.ForceNew),
	)
	m.finish("open", winID, EventOpened, types.OutcomeApplied)
	return out, true
}

// Close removes a window. Closing an unknown id is a no-op. No other window
// is activated in its place.
func (m *Manager) Close(windowID string) types.Outcome {
	m.mu.Lock()
	if _, ok := m.windows[windowID]; !ok {
		m.mu.Unlock()
		return m.finish("close", windowID, EventClosed, types.OutcomeMissing)
	}

	delete(m.windows, windowID)
	m.cancelAnimation(windowID)
	m.arbiter.Release(windowID)
	count := len(m.windows)
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.SetWindowsOpen(count)
	}
	m.logger.Info("window closed", zap.String("window_id", windowID))
	return m.finish("close", windowID, EventClosed, types.OutcomeApplied)
}

// Minimize hides a window and clears it as active. No replacement is
// activated.
func (m *Manager) Minimize(windowID string) types.Outcome {
	return m.mutate("minimize", windowID, func(rec *types.WindowRecord) types.Outcome {
		if rec.Minimized {
			return types.OutcomeUnchanged
		}
		rec.Minimized = true
		m.arbiter.Release(rec.ID)
		m.animate(rec, types.AnimationMinimizing)
		return types.OutcomeApplied
	})
}

// MinimizeAll hides every window and clears the active window
func (m *Manager) MinimizeAll() int {
	m.mu.Lock()
	var changed []Event
	for _, rec := range m.windows {
		if rec.Minimized {
			continue
		}
		rec.Minimized = true
		m.animate(rec, types.AnimationMinimizing)
		changed = append(changed, Event{Kind: EventChanged, WindowID: rec.ID, Op: "minimize_all", Outcome: types.OutcomeApplied})
	}
	m.arbiter.ReleaseAll()
	m.mu.Unlock()

	m.record("minimize_all", "", types.OutcomeApplied)
	m.emit(changed...)
	return len(changed)
}

// Focus raises a window above all others, un-minimizes it and makes it
// active. No other window is touched.
func (m *Manager) Focus(windowID string) types.Outcome {
	m.mu.Lock()
	rec, ok := m.windows[windowID]
	if !ok {
		m.mu.Unlock()
		return m.finish("focus", windowID, EventFocused, types.OutcomeMissing)
	}
	m.raise(rec)
	m.mu.Unlock()

	return m.finish("focus", windowID, EventFocused, types.OutcomeApplied)
}

// ToggleMaximize flips the maximized state and re-focuses the window.
// Entering maximize drops any snap; leaving it restores the free frame.
func (m *Manager) ToggleMaximize(windowID string) types.Outcome {
	return m.mutate("toggle_maximize", windowID, func(rec *types.WindowRecord) types.Outcome {
		if rec.IsMaximized() {
			rec.Bounds = types.FreeBounds{Frame: rec.Bounds.RestoreRect()}
			m.animate(rec, types.AnimationRestoring)
		} else {
			rec.Bounds = types.MaximizedBounds{Restore: rec.Bounds.RestoreRect()}
			m.animate(rec, types.AnimationMaximizing)
		}
		m.raise(rec)
		return types.OutcomeApplied
	})
}

// Restore leaves maximized or snapped state, un-minimizes and focuses
func (m *Manager) Restore(windowID string) types.Outcome {
	return m.mutate("restore", windowID, func(rec *types.WindowRecord) types.Outcome {
		if rec.Bounds.Kind() != types.BoundsFree {
			rec.Bounds = types.FreeBounds{Frame: rec.Bounds.RestoreRect()}
			m.animate(rec, types.AnimationRestoring)
		}
		m.raise(rec)
		return types.OutcomeApplied
	})
}

// UpdatePosition writes a raw position. A snapped window becomes free at
// its remembered size; a maximized window only updates its restore frame.
func (m *Manager) UpdatePosition(windowID string, pos types.WindowPosition) types.Outcome {
	return m.mutate("update_position", windowID, func(rec *types.WindowRecord) types.Outcome {
		return setPosition(rec, pos)
	})
}

// DragTo is UpdatePosition for a pointer drag. A window maximized since
// the drag began is left alone and the outcome is rejected.
func (m *Manager) DragTo(windowID string, pos types.WindowPosition) types.Outcome {
	return m.mutate("drag", windowID, func(rec *types.WindowRecord) types.Outcome {
		if rec.IsMaximized() {
			return types.OutcomeRejected
		}
		return setPosition(rec, pos)
	})
}

func setPosition(rec *types.WindowRecord, pos types.WindowPosition) types.Outcome {
	switch b := rec.Bounds.(type) {
	case types.FreeBounds:
		if b.Frame.Position() == pos {
			return types.OutcomeUnchanged
		}
		rec.Bounds = types.FreeBounds{Frame: b.Frame.WithPosition(pos)}
	case types.MaximizedBounds:
		rec.Bounds = types.MaximizedBounds{Restore: b.Restore.WithPosition(pos)}
	case types.SnappedBounds:
		rec.Bounds = types.FreeBounds{Frame: b.Restore.WithPosition(pos)}
	}
	return types.OutcomeApplied
}

// UpdateSize writes a raw size clamped to the window's minimum. The outcome
// is clamped when either dimension was raised.
func (m *Manager) UpdateSize(windowID string, size types.WindowSize) types.Outcome {
	return m.mutate("update_size", windowID, func(rec *types.WindowRecord) types.Outcome {
		return m.setSize(rec, size)
	})
}

// ResizeTo is UpdateSize for a pointer resize, which only applies to free
// windows. Any other bounds state is rejected.
func (m *Manager) ResizeTo(windowID string, size types.WindowSize) types.Outcome {
	return m.mutate("resize", windowID, func(rec *types.WindowRecord) types.Outcome {
		if rec.Bounds.Kind() != types.BoundsFree {
			return types.OutcomeRejected
		}
		return m.setSize(rec, size)
	})
}

// setSize applies size under the record's floor (must hold lock)
func (m *Manager) setSize(rec *types.WindowRecord, size types.WindowSize) types.Outcome {
	clampedSize, wasClamped := geometry.ClampSize(size, m.floor(rec))
	switch b := rec.Bounds.(type) {
	case types.FreeBounds:
		if b.Frame.Size() == clampedSize {
			if wasClamped {
				return types.OutcomeClamped
			}
			return types.OutcomeUnchanged
		}
		rec.Bounds = types.FreeBounds{Frame: b.Frame.WithSize(clampedSize)}
	case types.MaximizedBounds:
		rec.Bounds = types.MaximizedBounds{Restore: b.Restore.WithSize(clampedSize)}
	case types.SnappedBounds:
		rec.Bounds = types.FreeBounds{Frame: b.Restore.WithSize(clampedSize)}
	}
	if wasClamped {
		return types.OutcomeClamped
	}
	return types.OutcomeApplied
}

// floor returns the minimum size of rec (must hold lock)
func (m *Manager) floor(rec *types.WindowRecord) types.WindowSize {
	if rec.MinSize.IsZero() {
		return m.cfg.MinSize
	}
	return rec.MinSize
}

// Snap places a window in a zone, remembering its free frame
func (m *Manager) Snap(windowID string, zone types.SnapLayout) types.Outcome {
	if !zone.Valid() {
		m.record("snap", windowID, types.OutcomeRejected)
		return types.OutcomeRejected
	}
	return m.mutate("snap", windowID, func(rec *types.WindowRecord) types.Outcome {
		return m.snap(rec, zone, rec.Bounds.RestoreRect())
	})
}

// CommitSnap ends a drag in a zone. restore is the frame the window had
// when the drag began, so unsnapping returns it there. A window maximized
// since the drag began is left alone and the outcome is rejected.
func (m *Manager) CommitSnap(windowID string, zone types.SnapLayout, restore types.Rect) types.Outcome {
	if !zone.Valid() {
		m.record("commit_snap", windowID, types.OutcomeRejected)
		return types.OutcomeRejected
	}
	return m.mutate("commit_snap", windowID, func(rec *types.WindowRecord) types.Outcome {
		if rec.IsMaximized() {
			return types.OutcomeRejected
		}
		return m.snap(rec, zone, restore)
	})
}

// snap moves rec into zone (must hold lock)
func (m *Manager) snap(rec *types.WindowRecord, zone types.SnapLayout, restore types.Rect) types.Outcome {
	if rec.SnapLayout() == zone {
		return types.OutcomeUnchanged
	}
	rec.Bounds = types.SnappedBounds{Zone: zone, Restore: restore}
	m.animate(rec, types.AnimationSnapping)
	return types.OutcomeApplied
}

// Unsnap returns a snapped window to its pre-snap frame
func (m *Manager) Unsnap(windowID string) types.Outcome {
	return m.mutate("unsnap", windowID, func(rec *types.WindowRecord) types.Outcome {
		s, ok := rec.Bounds.(types.SnappedBounds)
		if !ok {
			return types.OutcomeUnchanged
		}
		rec.Bounds = types.FreeBounds{Frame: s.Restore}
		m.animate(rec, types.AnimationRestoring)
		return types.OutcomeApplied
	})
}

// SetTitle replaces the title with a markup-free version of title
func (m *Manager) SetTitle(windowID, title string) types.Outcome {
	clean := utils.SanitizeText(title)
	if clean == "" {
		m.record("set_title", windowID, types.OutcomeRejected)
		return types.OutcomeRejected
	}
	return m.mutate("set_title", windowID, func(rec *types.WindowRecord) types.Outcome {
		if rec.Title == clean {
			return types.OutcomeUnchanged
		}
		rec.Title = clean
		return types.OutcomeApplied
	})
}

// ToggleAlwaysOnTop flips the paint-order boost. The z counter is untouched.
func (m *Manager) ToggleAlwaysOnTop(windowID string) types.Outcome {
	return m.mutate("toggle_always_on_top", windowID, func(rec *types.WindowRecord) types.Outcome {
		rec.AlwaysOnTop = !rec.AlwaysOnTop
		return types.OutcomeApplied
	})
}

// SetTransparency sets window opacity clamped to [0.1, 1.0]
func (m *Manager) SetTransparency(windowID string, value float64) types.Outcome {
	clamped := value
	if clamped < MinTransparency {
		clamped = MinTransparency
	}
	if clamped > MaxTransparency {
		clamped = MaxTransparency
	}
	return m.mutate("set_transparency", windowID, func(rec *types.WindowRecord) types.Outcome {
		if rec.Transparency == clamped {
			return types.OutcomeUnchanged
		}
		rec.Transparency = clamped
		if clamped != value {
			return types.OutcomeClamped
		}
		return types.OutcomeApplied
	})
}

// Arrange lays out the given windows. Minimized and maximized windows are
// skipped and snapped ones become free. Windows keep their relative stacking
// and the topmost arranged window becomes active.
func (m *Manager) Arrange(layout types.ArrangeLayout, windowIDs []string, vp types.Viewport) int {
	if !layout.Valid() {
		m.record("arrange", "", types.OutcomeRejected)
		return 0
	}

	m.mu.Lock()
	targets := make([]*types.WindowRecord, 0, len(windowIDs))
	for _, wid := range windowIDs {
		rec, ok := m.windows[wid]
		if !ok || rec.Minimized || rec.IsMaximized() {
			continue
		}
		targets = append(targets, rec)
	}
	sort.Slice(targets, func(i, j int) bool {
		return targets[i].ZIndex < targets[j].ZIndex
	})

	current := make([]types.Rect, len(targets))
	for i, rec := range targets {
		current[i] = geometry.Frame(rec.Bounds, vp)
	}
	frames := geometry.Arrange(layout, current, vp, m.cfg.Cascade)

	events := make([]Event, 0, len(targets))
	for i, rec := range targets {
		size, _ := geometry.ClampSize(frames[i].Size(), m.floor(rec))
		rec.Bounds = types.FreeBounds{Frame: frames[i].WithSize(size)}
		if i == len(targets)-1 {
			rec.ZIndex = m.arbiter.Raise(rec.ID)
		} else {
			rec.ZIndex = m.arbiter.Reserve()
		}
		events = append(events, Event{Kind: EventChanged, WindowID: rec.ID, Op: "arrange", Outcome: types.OutcomeApplied})
	}
	m.mu.Unlock()

	m.record("arrange", "", types.OutcomeApplied)
	m.emit(events...)
	return len(events)
}

// Get retrieves a window by ID
func (m *Manager) Get(windowID string) (types.WindowRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.windows[windowID]
	if !ok {
		return types.WindowRecord{}, false
	}

	// Return a copy to prevent external modifications
	return *rec, true
}

// List returns copies of every window in paint order, bottom first.
// Always-on-top windows paint above the rest regardless of z-index.
func (m *Manager) List() []types.WindowRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := make([]types.WindowRecord, 0, len(m.windows))
	for _, rec := range m.windows {
		list = append(list, *rec)
	}
	SortPaintOrder(list)
	return list
}

// Instances returns copies of every window opened from appID
func (m *Manager) Instances(appID string) []types.WindowRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []types.WindowRecord
	for _, rec := range m.windows {
		if rec.AppID == appID {
			out = append(out, *rec)
		}
	}
	return out
}

// ActiveID returns the active window id, or "" when none is active
func (m *Manager) ActiveID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.arbiter.Active()
}

// Stats returns manager statistics
func (m *Manager) Stats() types.Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var visible, minimized int
	for _, rec := range m.windows {
		if rec.Minimized {
			minimized++
		} else {
			visible++
		}
	}

	var activeID *string
	if active := m.arbiter.Active(); active != "" {
		activeID = &active
	}

	return types.Stats{
		TotalWindows:     len(m.windows),
		VisibleWindows:   visible,
		MinimizedWindows: minimized,
		TopZIndex:        m.arbiter.Top(),
		ActiveWindowID:   activeID,
	}
}

// mutate applies fn to one window under the lock and emits a change event
// when fn reports a change.
func (m *Manager) mutate(op, windowID string, fn func(rec *types.WindowRecord) types.Outcome) types.Outcome {
	m.mu.Lock()
	rec, ok := m.windows[windowID]
	if !ok {
		m.mu.Unlock()
		return m.finish(op, windowID, EventChanged, types.OutcomeMissing)
	}
	outcome := fn(rec)
	m.mu.Unlock()

	return m.finish(op, windowID, EventChanged, outcome)
}

// raise gives rec the next z-index, un-minimizes it and makes it active
// (must hold lock)
func (m *Manager) raise(rec *types.WindowRecord) {
	rec.ZIndex = m.arbiter.Raise(rec.ID)
	rec.Minimized = false
}

// topInstance finds the highest instance of appID (must hold lock)
func (m *Manager) topInstance(appID string) *types.WindowRecord {
	var top *types.WindowRecord
	for _, rec := range m.windows {
		if rec.AppID == appID && (top == nil || rec.ZIndex > top.ZIndex) {
			top = rec
		}
	}
	return top
}

// animate sets a transient tag and schedules its clear (must hold lock)
func (m *Manager) animate(rec *types.WindowRecord, tag types.Animation) {
	m.cancelAnimation(rec.ID)
	if m.cfg.AnimationDuration <= 0 {
		rec.Animation = types.AnimationNone
		return
	}

	rec.Animation = tag
	m.generation++
	gen := m.generation
	windowID := rec.ID
	timer := m.scheduler.AfterFunc(m.cfg.AnimationDuration, func() {
		m.clearAnimation(windowID, gen)
	})
	m.animations[windowID] = animation{generation: gen, timer: timer}
}

// cancelAnimation stops a pending clear (must hold lock)
func (m *Manager) cancelAnimation(windowID string) {
	if a, ok := m.animations[windowID]; ok {
		a.timer.Stop()
		delete(m.animations, windowID)
	}
}

// clearAnimation runs from the scheduler. It does nothing if the window is
// gone or a newer animation replaced the one that scheduled it.
func (m *Manager) clearAnimation(windowID string, gen uint64) {
	m.mu.Lock()
	a, ok := m.animations[windowID]
	if !ok || a.generation != gen {
		m.mu.Unlock()
		return
	}
	delete(m.animations, windowID)

	rec, ok := m.windows[windowID]
	if !ok {
		m.mu.Unlock()
		return
	}
	rec.Animation = types.AnimationNone
	m.mu.Unlock()

	m.emit(Event{Kind: EventChanged, WindowID: windowID, Op: "animation_end", Outcome: types.OutcomeApplied})
}
