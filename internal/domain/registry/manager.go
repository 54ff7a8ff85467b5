package registry

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/thekoushikdurgas/durgasos/backend/internal/infrastructure/monitoring"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/utils"
)

// Manager is the application catalogue. Definitions are registered during
// startup and treated as immutable afterwards.
type Manager struct {
	apps    sync.Map // app id -> types.AppDefinition
	count   int64    // Atomic counter of registered apps
	order   []string // registration order, guarded by orderMu
	orderMu sync.RWMutex
	metrics *monitoring.Metrics
}

// NewManager creates an empty catalogue
func NewManager() *Manager {
	return &Manager{}
}

// NewDefaultManager creates a catalogue holding the built-in apps
func NewDefaultManager() *Manager {
	m := NewManager()
	for _, app := range Builtins() {
		// Builtins are known valid
		_ = m.Register(app)
	}
	return m
}

// WithMetrics adds metrics tracking to the catalogue
func (m *Manager) WithMetrics(metrics *monitoring.Metrics) *Manager {
	m.metrics = metrics
	m.updateMetrics()
	return m
}

// Register validates and stores a definition. Registering an id twice
// replaces the earlier definition.
func (m *Manager) Register(app types.AppDefinition) error {
	if err := Validate(app); err != nil {
		return err
	}
	if app.Title == "" {
		app.Title = app.ID
	}

	if _, existed := m.apps.Swap(app.ID, app); !existed {
		atomic.AddInt64(&m.count, 1)
		m.orderMu.Lock()
		m.order = append(m.order, app.ID)
		m.orderMu.Unlock()
	}
	m.updateMetrics()
	return nil
}

// Validate checks a definition before it enters the catalogue
func Validate(app types.AppDefinition) error {
	if err := utils.ValidateID(app.ID, "app_id", true); err != nil {
		return err
	}
	if len(app.Title) > utils.MaxTitleLength {
		return fmt.Errorf("app %s: title must not exceed %d characters", app.ID, utils.MaxTitleLength)
	}
	if err := utils.ValidateCategory(app.Category, false); err != nil {
		return fmt.Errorf("app %s: %w", app.ID, err)
	}
	if app.DefaultSize.Width < 0 || app.DefaultSize.Height < 0 {
		return fmt.Errorf("app %s: default size must not be negative", app.ID)
	}
	if app.MinSize != nil && (app.MinSize.Width < 0 || app.MinSize.Height < 0) {
		return fmt.Errorf("app %s: min size must not be negative", app.ID)
	}
	return nil
}

// Get returns a definition by id
func (m *Manager) Get(appID string) (types.AppDefinition, bool) {
	v, ok := m.apps.Load(appID)
	if !ok {
		return types.AppDefinition{}, false
	}
	return v.(types.AppDefinition), true
}

// Exists checks if an app is registered
func (m *Manager) Exists(appID string) bool {
	_, ok := m.apps.Load(appID)
	return ok
}

// List returns definitions in registration order, optionally filtered by
// category
func (m *Manager) List(category *string) []types.AppDefinition {
	m.orderMu.RLock()
	ids := make([]string, len(m.order))
	copy(ids, m.order)
	m.orderMu.RUnlock()

	apps := make([]types.AppDefinition, 0, len(ids))
	for _, appID := range ids {
		app, ok := m.Get(appID)
		if !ok {
			continue
		}
		if category == nil || app.Category == *category {
			apps = append(apps, app)
		}
	}
	return apps
}

// Pinned returns the taskbar-pinned apps
func (m *Manager) Pinned() []types.AppDefinition {
	var pinned []types.AppDefinition
	for _, app := range m.List(nil) {
		if app.Pinned {
			pinned = append(pinned, app)
		}
	}
	return pinned
}

// Categories returns the distinct categories, sorted
func (m *Manager) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, app := range m.List(nil) {
		if app.Category != "" && !seen[app.Category] {
			seen[app.Category] = true
			out = append(out, app.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Stats returns catalogue statistics
func (m *Manager) Stats() types.RegistryStats {
	stats := types.RegistryStats{Categories: make(map[string]int)}
	for _, app := range m.List(nil) {
		stats.TotalApps++
		if app.Pinned {
			stats.Pinned++
		}
		stats.Categories[app.Category]++
	}
	return stats
}

func (m *Manager) updateMetrics() {
	if m.metrics != nil {
		m.metrics.SetRegistryApps(int(atomic.LoadInt64(&m.count)))
	}
}
