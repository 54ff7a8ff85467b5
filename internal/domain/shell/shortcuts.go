package shell

import (
	"go.uber.org/zap"

	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/focus"
	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/window"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
)

// Action is a named keyboard shortcut
type Action string

const (
	ActionToggleTaskView    Action = "toggle-task-view"
	ActionMinimizeAll       Action = "minimize-all"
	ActionSnapLeft          Action = "snap-left"
	ActionSnapRight         Action = "snap-right"
	ActionMaximize          Action = "maximize"
	ActionRestoreOrMinimize Action = "restore-or-minimize"
	ActionCycleWindows      Action = "cycle-windows"
	ActionCloseActive       Action = "close-active"
	ActionCascade           Action = "cascade"
	ActionTileHorizontal    Action = "tile-horizontal"
	ActionTileVertical      Action = "tile-vertical"
)

// Actions lists every shortcut in display order
var Actions = []Action{
	ActionToggleTaskView,
	ActionMinimizeAll,
	ActionSnapLeft,
	ActionSnapRight,
	ActionMaximize,
	ActionRestoreOrMinimize,
	ActionCycleWindows,
	ActionCloseActive,
	ActionCascade,
	ActionTileHorizontal,
	ActionTileVertical,
}

// Valid reports whether a is a known shortcut
func (a Action) Valid() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}

// ShortcutResult reports what a shortcut did
type ShortcutResult struct {
	Action   Action        `json:"action"`
	Outcome  types.Outcome `json:"outcome"`
	WindowID string        `json:"window_id,omitempty"`
	Count    int           `json:"count,omitempty"`
}

// Dispatch runs a shortcut. Shortcuts that target the active window are
// unchanged when there is none.
func (s *Shell) Dispatch(action Action, vp *types.Viewport) ShortcutResult {
	res := ShortcutResult{Action: action}
	t := s.timer("dispatch")
	defer func() { t.Stop(string(res.Outcome)) }()

	switch action {
	case ActionToggleTaskView:
		s.ToggleOverview()
		res.Outcome = types.OutcomeApplied

	case ActionMinimizeAll:
		res.Count = s.MinimizeAll()
		res.Outcome = countOutcome(res.Count)

	case ActionCascade, ActionTileHorizontal, ActionTileVertical:
		res.Count, res.Outcome = s.Arrange(types.ArrangeLayout(action), vp)

	case ActionCycleWindows:
		candidates := window.Candidates(s.activeDesktopRecords())
		next, ok := focus.CycleNext(candidates, s.windows.ActiveID())
		if !ok {
			res.Outcome = types.OutcomeUnchanged
			break
		}
		res.WindowID = next
		res.Outcome = s.FocusWindow(next)

	case ActionSnapLeft, ActionSnapRight, ActionMaximize, ActionRestoreOrMinimize, ActionCloseActive:
		res.WindowID = s.windows.ActiveID()
		if res.WindowID == "" {
			res.Outcome = types.OutcomeUnchanged
			break
		}
		res.Outcome = s.applyToActive(action, res.WindowID)

	default:
		res.Outcome = types.OutcomeRejected
	}

	s.logger.Debug("shortcut dispatched",
		zap.String("action", string(action)),
		zap.String("outcome", string(res.Outcome)),
	)
	return res
}

// applyToActive runs a shortcut that targets one window
func (s *Shell) applyToActive(action Action, windowID string) types.Outcome {
	rec, ok := s.windows.Get(windowID)
	if !ok {
		return types.OutcomeMissing
	}

	switch action {
	case ActionSnapLeft:
		return s.SnapWindow(windowID, types.SnapLeft)
	case ActionSnapRight:
		return s.SnapWindow(windowID, types.SnapRight)
	case ActionMaximize:
		if rec.IsMaximized() {
			return types.OutcomeUnchanged
		}
		return s.ToggleMaximize(windowID)
	case ActionRestoreOrMinimize:
		if rec.Bounds.Kind() != types.BoundsFree {
			return s.RestoreWindow(windowID)
		}
		return s.MinimizeWindow(windowID)
	case ActionCloseActive:
		return s.CloseWindow(windowID)
	default:
		return types.OutcomeRejected
	}
}

func countOutcome(n int) types.Outcome {
	if n == 0 {
		return types.OutcomeUnchanged
	}
	return types.OutcomeApplied
}
