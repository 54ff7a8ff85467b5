package shell

import (
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
)

// DesktopResult carries the desktop an operation created or touched
type DesktopResult struct {
	Outcome types.Outcome        `json:"outcome"`
	Desktop types.VirtualDesktop `json:"desktop,omitempty"`
}

// ListDesktops returns every desktop with its members
func (s *Shell) ListDesktops() []types.DesktopView {
	all := s.windows.List()
	ids := make([]string, len(all))
	for i, rec := range all {
		ids[i] = rec.ID
	}
	return s.desktops.List(ids)
}

// CreateDesktop adds a desktop and switches to it
func (s *Shell) CreateDesktop(name string) DesktopResult {
	d := s.desktops.Create(name)
	s.desktopChanged("create", d.ID, types.OutcomeApplied)
	return DesktopResult{Outcome: types.OutcomeApplied, Desktop: d}
}

// DuplicateDesktop adds an empty desktop named after srcID
func (s *Shell) DuplicateDesktop(srcID, name string) DesktopResult {
	d, outcome := s.desktops.Duplicate(srcID, name)
	s.desktopChanged("duplicate", d.ID, outcome)
	return DesktopResult{Outcome: outcome, Desktop: d}
}

// SwitchDesktop changes the visible desktop
func (s *Shell) SwitchDesktop(desktopID string) types.Outcome {
	return s.desktopChanged("switch", desktopID, s.desktops.Switch(desktopID))
}

// CloseDesktop removes a desktop, moving its windows to reassignTo or the
// desktop that becomes active
func (s *Shell) CloseDesktop(desktopID, reassignTo string) types.Outcome {
	return s.desktopChanged("close", desktopID, s.desktops.Close(desktopID, reassignTo))
}

// RenameDesktop changes a desktop's name
func (s *Shell) RenameDesktop(desktopID, name string) types.Outcome {
	return s.desktopChanged("rename", desktopID, s.desktops.Rename(desktopID, name))
}

// MoveWindowToDesktop re-homes a window
func (s *Shell) MoveWindowToDesktop(windowID, desktopID string) types.Outcome {
	if _, ok := s.windows.Get(windowID); !ok {
		return types.OutcomeMissing
	}
	return s.desktopChanged("move_window", desktopID, s.desktops.MoveWindow(windowID, desktopID))
}

// ToggleOverview flips the task view
func (s *Shell) ToggleOverview() bool {
	on := s.desktops.ToggleOverview()
	s.desktopChanged("overview", "", types.OutcomeApplied)
	return on
}
