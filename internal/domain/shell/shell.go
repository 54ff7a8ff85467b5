package shell

import (
	"sync"

	"go.uber.org/zap"

	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/desktop"
	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/registry"
	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/snap"
	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/window"
	"github.com/thekoushikdurgas/durgasos/backend/internal/infrastructure/monitoring"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
)

// Source names the component a change came from
type Source string

const (
	SourceWindow  Source = "window"
	SourceDesktop Source = "desktop"
)

// Change is a committed state change that sessions should re-render
type Change struct {
	Source    Source
	Op        string
	WindowID  string
	DesktopID string
}

// Listener receives changes after all locks are released
type Listener func(Change)

// Shell is the contract the browser shell drives. It composes the window
// registry, the desktop manager and the app catalogue.
type Shell struct {
	windows   *window.Manager
	desktops  *desktop.Manager
	catalogue *registry.Manager
	detector  *snap.Detector
	viewport  types.Viewport

	logger  *zap.Logger
	metrics *monitoring.Metrics

	listenersMu sync.RWMutex
	listeners   map[int]Listener
	nextID      int
}

// Config holds shell construction parameters
type Config struct {
	Viewport      types.Viewport
	SnapThreshold int
}

// New creates a shell over the given components
func New(windows *window.Manager, desktops *desktop.Manager, catalogue *registry.Manager, cfg Config) *Shell {
	s := &Shell{
		windows:   windows,
		desktops:  desktops,
		catalogue: catalogue,
		detector:  snap.NewDetector(cfg.SnapThreshold),
		viewport:  cfg.Viewport,
		logger:    zap.NewNop(),
		listeners: make(map[int]Listener),
	}
	windows.Subscribe(func(ev window.Event) {
		s.notify(Change{Source: SourceWindow, Op: ev.Op, WindowID: ev.WindowID})
	})
	return s
}

// WithLogger sets the logger
func (s *Shell) WithLogger(logger *zap.Logger) *Shell {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// WithMetrics adds operation timing
func (s *Shell) WithMetrics(metrics *monitoring.Metrics) *Shell {
	s.metrics = metrics
	return s
}

// Windows returns the window registry
func (s *Shell) Windows() *window.Manager {
	return s.windows
}

// Desktops returns the desktop manager
func (s *Shell) Desktops() *desktop.Manager {
	return s.desktops
}

// Catalogue returns the app catalogue
func (s *Shell) Catalogue() *registry.Manager {
	return s.catalogue
}

// Detector returns the snap detector shared by gesture controllers
func (s *Shell) Detector() *snap.Detector {
	return s.detector
}

// DefaultViewport is used when a caller supplies none
func (s *Shell) DefaultViewport() types.Viewport {
	return s.viewport
}

// Subscribe registers a change listener and returns its cancel function
func (s *Shell) Subscribe(l Listener) func() {
	s.listenersMu.Lock()
	key := s.nextID
	s.nextID++
	s.listeners[key] = l
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, key)
		s.listenersMu.Unlock()
	}
}

func (s *Shell) notify(c Change) {
	s.listenersMu.RLock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenersMu.RUnlock()

	for _, l := range listeners {
		l(c)
	}
}

// desktopChanged notifies listeners when a desktop operation moved state
func (s *Shell) desktopChanged(op, desktopID string, outcome types.Outcome) types.Outcome {
	if outcome.Changed() {
		s.notify(Change{Source: SourceDesktop, Op: op, DesktopID: desktopID})
	}
	return outcome
}

// resolve falls back to the default viewport for an invalid one
func (s *Shell) resolve(vp *types.Viewport) types.Viewport {
	if vp == nil || !vp.Valid() {
		return s.viewport
	}
	return *vp
}

func (s *Shell) timer(method string) *monitoring.Timer {
	return monitoring.NewTimer(s.metrics, "shell", method)
}

// Health summarises every component
type Health struct {
	Windows  types.Stats         `json:"windows"`
	Desktops types.DesktopStats  `json:"desktops"`
	Apps     types.RegistryStats `json:"apps"`
}

// Health returns component statistics
func (s *Shell) Health() Health {
	return Health{
		Windows:  s.windows.Stats(),
		Desktops: s.desktops.Stats(),
		Apps:     s.catalogue.Stats(),
	}
}

// Snapshot returns the full state for vp
func (s *Shell) Snapshot(vp *types.Viewport) types.Snapshot {
	resolved := s.resolve(vp)
	all := s.windows.List()
	ids := make([]string, len(all))
	for i, rec := range all {
		ids[i] = rec.ID
	}

	activeDesktop := s.desktops.ActiveID()
	activeWindow := s.windows.ActiveID()
	views := make([]types.WindowView, 0, len(all))
	for _, rec := range all {
		desk := s.desktops.DesktopOf(rec.ID)
		if desk != activeDesktop {
			continue
		}
		v := window.View(rec, resolved, activeWindow)
		v.DesktopID = desk
		views = append(views, v)
	}

	return types.Snapshot{
		Windows:         views,
		Desktops:        s.desktops.List(ids),
		ActiveDesktopID: activeDesktop,
		ActiveWindowID:  activeWindow,
		Overview:        s.desktops.Overview(),
		Viewport:        resolved,
	}
}
