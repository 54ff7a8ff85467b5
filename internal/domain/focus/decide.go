package focus

import "sort"

// Candidate is the slice of window state focus decisions depend on
type Candidate struct {
	ID        string
	ZIndex    int
	Minimized bool
}

// Action is what a taskbar click resolves to
type Action string

const (
	ActionOpen     Action = "open"
	ActionFocus    Action = "focus"
	ActionMinimize Action = "minimize"
)

// Decision is the resolved action and the window it applies to
type Decision struct {
	Action   Action `json:"action"`
	WindowID string `json:"window_id,omitempty"`
}

// Top returns the candidate with the highest z-index
func Top(candidates []Candidate) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.ZIndex > best.ZIndex {
			best = c
		}
	}
	return best, true
}

// TaskbarClick decides what a click on an app's taskbar button does, given
// the app's open instances. A visible active instance is minimized; anything
// else brings the most recently raised instance forward. With no instances
// the app is opened.
func TaskbarClick(instances []Candidate, activeID string) Decision {
	if len(instances) == 0 {
		return Decision{Action: ActionOpen}
	}

	for _, c := range instances {
		if c.ID == activeID && !c.Minimized {
			return Decision{Action: ActionMinimize, WindowID: c.ID}
		}
	}

	top, _ := Top(instances)
	return Decision{Action: ActionFocus, WindowID: top.ID}
}

// CycleNext returns the visible window that should be raised next when
// cycling. Raising the lowest window each time walks through every visible
// window in turn.
func CycleNext(candidates []Candidate, activeID string) (string, bool) {
	visible := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if !c.Minimized && c.ID != activeID {
			visible = append(visible, c)
		}
	}
	if len(visible) == 0 {
		return "", false
	}

	sort.Slice(visible, func(i, j int) bool {
		return visible[i].ZIndex < visible[j].ZIndex
	})
	return visible[0].ID, true
}
