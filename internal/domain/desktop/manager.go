package desktop

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/thekoushikdurgas/durgasos/backend/internal/infrastructure/monitoring"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/id"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/utils"
)

// Manager partitions windows into virtual desktops. Membership is exclusive:
// a window belongs to its assigned desktop, or to the first desktop when it
// was never assigned.
type Manager struct {
	mu         sync.RWMutex
	desktops   []types.VirtualDesktop // Protected by mu, ordered
	activeID   string                 // Protected by mu
	membership map[string]string      // Protected by mu, window id -> desktop id
	overview   bool                   // Protected by mu

	logger  *zap.Logger
	metrics *monitoring.Metrics
}

// NewManager creates a manager holding a single "Desktop 1"
func NewManager() *Manager {
	first := types.VirtualDesktop{ID: string(id.NewDesktopID()), Name: defaultName(1)}
	return &Manager{
		desktops:   []types.VirtualDesktop{first},
		activeID:   first.ID,
		membership: make(map[string]string),
		logger:     zap.NewNop(),
	}
}

// WithLogger sets the logger
func (m *Manager) WithLogger(logger *zap.Logger) *Manager {
	if logger != nil {
		m.logger = logger
	}
	return m
}

// WithMetrics adds metrics tracking to the manager
func (m *Manager) WithMetrics(metrics *monitoring.Metrics) *Manager {
	m.metrics = metrics
	if metrics != nil {
		metrics.SetDesktops(len(m.desktops))
	}
	return m
}

func defaultName(n int) string {
	return fmt.Sprintf("Desktop %d", n)
}

// Create appends a desktop and makes it active. An empty name becomes
// "Desktop N" where N is the new desktop count.
func (m *Manager) Create(name string) types.VirtualDesktop {
	m.mu.Lock()
	name = utils.SanitizeText(name)
	if name == "" {
		name = defaultName(len(m.desktops) + 1)
	}
	d := types.VirtualDesktop{ID: string(id.NewDesktopID()), Name: name}
	m.desktops = append(m.desktops, d)
	m.activeID = d.ID
	count := len(m.desktops)
	m.mu.Unlock()

	m.updateMetrics(count)
	m.logger.Debug("desktop created", zap.String("desktop_id", d.ID), zap.String("name", name))
	return d
}

// Duplicate creates an empty desktop named after src and makes it active.
// Windows are not copied.
func (m *Manager) Duplicate(srcID, name string) (types.VirtualDesktop, types.Outcome) {
	m.mu.RLock()
	src, ok := m.find(srcID)
	m.mu.RUnlock()
	if !ok {
		return types.VirtualDesktop{}, types.OutcomeMissing
	}
	if utils.SanitizeText(name) == "" {
		name = src.Name + " Copy"
	}
	return m.Create(name), types.OutcomeApplied
}

// Switch changes the active desktop. Only the visible subset changes.
func (m *Manager) Switch(desktopID string) types.Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.find(desktopID); !ok {
		return types.OutcomeMissing
	}
	if m.activeID == desktopID {
		return types.OutcomeUnchanged
	}
	m.activeID = desktopID
	m.logger.Debug("desktop switched", zap.String("desktop_id", desktopID))
	return types.OutcomeApplied
}

// Close removes a desktop. Unknown ids and the last remaining desktop are
// left alone. Members move to reassignTo when it names another desktop,
// otherwise to the desktop that becomes active. Closing the active desktop
// activates the first remaining one.
func (m *Manager) Close(desktopID, reassignTo string) types.Outcome {
	m.mu.Lock()

	idx := m.index(desktopID)
	if idx < 0 {
		m.mu.Unlock()
		return types.OutcomeMissing
	}
	if len(m.desktops) == 1 {
		m.mu.Unlock()
		return types.OutcomeRejected
	}

	m.desktops = append(m.desktops[:idx:idx], m.desktops[idx+1:]...)
	if m.activeID == desktopID {
		m.activeID = m.desktops[0].ID
	}

	target := m.activeID
	if reassignTo != desktopID && m.index(reassignTo) >= 0 {
		target = reassignTo
	}

	moved := 0
	for wid, did := range m.membership {
		if did == desktopID {
			m.membership[wid] = target
			moved++
		}
	}
	count := len(m.desktops)
	m.mu.Unlock()

	m.updateMetrics(count)
	m.logger.Debug("desktop closed",
		zap.String("desktop_id", desktopID),
		zap.String("reassigned_to", target),
		zap.Int("moved", moved),
	)
	return types.OutcomeApplied
}

// Rename changes a desktop's display name
func (m *Manager) Rename(desktopID, name string) types.Outcome {
	clean := utils.SanitizeText(name)
	if clean == "" {
		return types.OutcomeRejected
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.index(desktopID)
	if idx < 0 {
		return types.OutcomeMissing
	}
	if m.desktops[idx].Name == clean {
		return types.OutcomeUnchanged
	}
	m.desktops[idx].Name = clean
	return types.OutcomeApplied
}

// Assign places a new window on the active desktop
func (m *Manager) Assign(windowID string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.membership[windowID] = m.activeID
	return m.activeID
}

// MoveWindow re-homes a window on another desktop
func (m *Manager) MoveWindow(windowID, desktopID string) types.Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.index(desktopID) < 0 {
		return types.OutcomeMissing
	}
	if m.desktopOf(windowID) == desktopID {
		return types.OutcomeUnchanged
	}
	m.membership[windowID] = desktopID
	return types.OutcomeApplied
}

// Forget drops a closed window's membership
func (m *Manager) Forget(windowID string) {
	m.mu.Lock()
	delete(m.membership, windowID)
	m.mu.Unlock()
}

// DesktopOf returns the desktop a window belongs to
func (m *Manager) DesktopOf(windowID string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.desktopOf(windowID)
}

// Members filters windowIDs down to those on desktopID, keeping their order
func (m *Manager) Members(desktopID string, windowIDs []string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(windowIDs))
	for _, wid := range windowIDs {
		if m.desktopOf(wid) == desktopID {
			out = append(out, wid)
		}
	}
	return out
}

// Exists reports whether desktopID is a known desktop
func (m *Manager) Exists(desktopID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.index(desktopID) >= 0
}

// ActiveID returns the active desktop id
func (m *Manager) ActiveID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.activeID
}

// List returns every desktop in order with its members drawn from windowIDs
func (m *Manager) List(windowIDs []string) []types.DesktopView {
	m.mu.RLock()
	defer m.mu.RUnlock()

	views := make([]types.DesktopView, len(m.desktops))
	index := make(map[string]int, len(m.desktops))
	for i, d := range m.desktops {
		views[i] = types.DesktopView{ID: d.ID, Name: d.Name, IsActive: d.ID == m.activeID, WindowIDs: []string{}}
		index[d.ID] = i
	}
	for _, wid := range windowIDs {
		i := index[m.desktopOf(wid)]
		views[i].WindowIDs = append(views[i].WindowIDs, wid)
	}
	return views
}

// ToggleOverview flips the task view flag and returns the new value
func (m *Manager) ToggleOverview() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overview = !m.overview
	return m.overview
}

// SetOverview sets the task view flag
func (m *Manager) SetOverview(on bool) types.Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.overview == on {
		return types.OutcomeUnchanged
	}
	m.overview = on
	return types.OutcomeApplied
}

// Overview reports whether task view is showing
func (m *Manager) Overview() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.overview
}

// Stats returns desktop statistics
func (m *Manager) Stats() types.DesktopStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return types.DesktopStats{
		TotalDesktops:   len(m.desktops),
		ActiveDesktopID: m.activeID,
		Overview:        m.overview,
	}
}

// desktopOf resolves membership with the first-desktop fallback (must hold lock)
func (m *Manager) desktopOf(windowID string) string {
	if did, ok := m.membership[windowID]; ok {
		return did
	}
	return m.desktops[0].ID
}

// index finds a desktop's position (must hold lock)
func (m *Manager) index(desktopID string) int {
	for i, d := range m.desktops {
		if d.ID == desktopID {
			return i
		}
	}
	return -1
}

// find returns a copy of a desktop (must hold lock)
func (m *Manager) find(desktopID string) (types.VirtualDesktop, bool) {
	if i := m.index(desktopID); i >= 0 {
		return m.desktops[i], true
	}
	return types.VirtualDesktop{}, false
}

func (m *Manager) updateMetrics(count int) {
	if m.metrics != nil {
		m.metrics.SetDesktops(count)
	}
}
