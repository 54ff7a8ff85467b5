package shell

import (
	"go.uber.org/zap"

	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/focus"
	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/window"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
)

// OpenResult describes the window an open request landed on
type OpenResult struct {
	Outcome   types.Outcome `json:"outcome"`
	WindowID  string        `json:"window_id,omitempty"`
	Created   bool          `json:"created"`
	DesktopID string        `json:"desktop_id,omitempty"`
}

// OpenApp opens appID or focuses its most recent instance. Reusing an
// instance on another desktop switches to that desktop first. New windows
// join the active desktop.
func (s *Shell) OpenApp(appID string, forceNew bool) OpenResult {
	t := s.timer("open_app")

	app, ok := s.catalogue.Get(appID)
	if !ok {
		t.Stop("missing")
		s.logger.Debug("open of unknown app", zap.String("app_id", appID))
		return OpenResult{Outcome: types.OutcomeMissing}
	}

	if !forceNew {
		if top, ok := focus.Top(window.Candidates(s.windows.Instances(appID))); ok {
			s.followWindow(top.ID)
		}
	}

	var assigned string
	rec, created := s.windows.Open(app, window.OpenOptions{
		ForceNew: forceNew,
		Place:    func(windowID string) { assigned = s.desktops.Assign(windowID) },
	})
	desk := assigned
	if !created {
		desk = s.desktops.DesktopOf(rec.ID)
	}

	t.Stop("applied")
	return OpenResult{Outcome: types.OutcomeApplied, WindowID: rec.ID, Created: created, DesktopID: desk}
}

// followWindow makes the desktop holding windowID active
func (s *Shell) followWindow(windowID string) {
	desk := s.desktops.DesktopOf(windowID)
	s.desktopChanged("switch", desk, s.desktops.Switch(desk))
}

// CloseWindow removes a window and its desktop membership
func (s *Shell) CloseWindow(windowID string) types.Outcome {
	outcome := s.windows.Close(windowID)
	if outcome == types.OutcomeApplied {
		s.desktops.Forget(windowID)
	}
	return outcome
}

// MinimizeWindow hides a window
func (s *Shell) MinimizeWindow(windowID string) types.Outcome {
	return s.windows.Minimize(windowID)
}

// ToggleMaximize flips a window between maximized and its restore frame
func (s *Shell) ToggleMaximize(windowID string) types.Outcome {
	return s.windows.ToggleMaximize(windowID)
}

// RestoreWindow leaves maximized or snapped state and focuses
func (s *Shell) RestoreWindow(windowID string) types.Outcome {
	return s.windows.Restore(windowID)
}

// FocusWindow raises a window, switching to its desktop when hidden there
func (s *Shell) FocusWindow(windowID string) types.Outcome {
	if _, ok := s.windows.Get(windowID); !ok {
		return s.windows.Focus(windowID)
	}
	s.followWindow(windowID)
	return s.windows.Focus(windowID)
}

// UpdatePosition writes a window position
func (s *Shell) UpdatePosition(windowID string, pos types.WindowPosition) types.Outcome {
	return s.windows.UpdatePosition(windowID, pos)
}

// UpdateSize writes a window size, clamped to the minimum
func (s *Shell) UpdateSize(windowID string, size types.WindowSize) types.Outcome {
	return s.windows.UpdateSize(windowID, size)
}

// SnapWindow places a window in a zone
func (s *Shell) SnapWindow(windowID string, zone types.SnapLayout) types.Outcome {
	return s.windows.Snap(windowID, zone)
}

// UnsnapWindow releases a window from its zone
func (s *Shell) UnsnapWindow(windowID string) types.Outcome {
	return s.windows.Unsnap(windowID)
}

// SetTitle renames a window
func (s *Shell) SetTitle(windowID, title string) types.Outcome {
	return s.windows.SetTitle(windowID, title)
}

// ToggleAlwaysOnTop flips a window's paint-order boost
func (s *Shell) ToggleAlwaysOnTop(windowID string) types.Outcome {
	return s.windows.ToggleAlwaysOnTop(windowID)
}

// SetTransparency sets a window's opacity
func (s *Shell) SetTransparency(windowID string, value float64) types.Outcome {
	return s.windows.SetTransparency(windowID, value)
}

// MinimizeAll hides every window and returns how many changed
func (s *Shell) MinimizeAll() int {
	return s.windows.MinimizeAll()
}

// ListWindows returns the windows of desktopID in paint order. An empty
// desktopID means the active desktop; an unknown one yields nothing.
func (s *Shell) ListWindows(desktopID string, vp *types.Viewport) []types.WindowView {
	if desktopID == "" {
		desktopID = s.desktops.ActiveID()
	}
	resolved := s.resolve(vp)
	activeWindow := s.windows.ActiveID()

	views := []types.WindowView{}
	for _, rec := range s.windows.List() {
		if s.desktops.DesktopOf(rec.ID) != desktopID {
			continue
		}
		v := window.View(rec, resolved, activeWindow)
		v.DesktopID = desktopID
		views = append(views, v)
	}
	return views
}

// GetWindow returns the view of one window
func (s *Shell) GetWindow(windowID string, vp *types.Viewport) (types.WindowView, bool) {
	rec, ok := s.windows.Get(windowID)
	if !ok {
		return types.WindowView{}, false
	}
	v := window.View(rec, s.resolve(vp), s.windows.ActiveID())
	v.DesktopID = s.desktops.DesktopOf(windowID)
	return v, true
}

// activeDesktopRecords returns the records on the active desktop
func (s *Shell) activeDesktopRecords() []types.WindowRecord {
	active := s.desktops.ActiveID()
	var out []types.WindowRecord
	for _, rec := range s.windows.List() {
		if s.desktops.DesktopOf(rec.ID) == active {
			out = append(out, rec)
		}
	}
	return out
}

// Arrange lays out the windows of the active desktop
func (s *Shell) Arrange(layout types.ArrangeLayout, vp *types.Viewport) (int, types.Outcome) {
	if !layout.Valid() {
		return 0, types.OutcomeRejected
	}
	recs := s.activeDesktopRecords()
	ids := make([]string, len(recs))
	for i, rec := range recs {
		ids[i] = rec.ID
	}
	n := s.windows.Arrange(layout, ids, s.resolve(vp))
	if n == 0 {
		return 0, types.OutcomeUnchanged
	}
	return n, types.OutcomeApplied
}

// TaskbarResult reports what a taskbar click did
type TaskbarResult struct {
	Decision focus.Decision `json:"decision"`
	Outcome  types.Outcome  `json:"outcome"`
	WindowID string         `json:"window_id,omitempty"`
}

// TaskbarClick resolves a click on an app's taskbar button. With forceNew
// a new instance always opens.
func (s *Shell) TaskbarClick(appID string, forceNew bool) TaskbarResult {
	if !s.catalogue.Exists(appID) {
		return TaskbarResult{Outcome: types.OutcomeMissing}
	}

	decision := focus.Decision{Action: focus.ActionOpen}
	if !forceNew {
		instances := window.Candidates(s.windows.Instances(appID))
		decision = focus.TaskbarClick(instances, s.windows.ActiveID())
	}

	switch decision.Action {
	case focus.ActionMinimize:
		return TaskbarResult{Decision: decision, Outcome: s.MinimizeWindow(decision.WindowID), WindowID: decision.WindowID}
	case focus.ActionFocus:
		return TaskbarResult{Decision: decision, Outcome: s.FocusWindow(decision.WindowID), WindowID: decision.WindowID}
	default:
		res := s.OpenApp(appID, forceNew)
		return TaskbarResult{Decision: decision, Outcome: res.Outcome, WindowID: res.WindowID}
	}
}

// Mount returns what the host needs to render a window's app body
func (s *Shell) Mount(windowID string) (types.MountSpec, bool) {
	rec, ok := s.windows.Get(windowID)
	if !ok {
		return types.MountSpec{}, false
	}
	spec := types.MountSpec{
		WindowID: rec.ID,
		AppID:    rec.AppID,
		IsActive: s.windows.ActiveID() == rec.ID,
	}
	if app, ok := s.catalogue.Get(rec.AppID); ok {
		spec.Renderer = app.Renderer
	}
	return spec, true
}
