package window

import "github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"

// EventKind classifies a registry change
type EventKind string

const (
	EventOpened  EventKind = "opened"
	EventClosed  EventKind = "closed"
	EventChanged EventKind = "changed"
	EventFocused EventKind = "focused"
)

// Event describes one committed registry change
type Event struct {
	Kind     EventKind
	WindowID string
	Op       string
	Outcome  types.Outcome
}

// Observer receives events after the registry lock is released
type Observer func(Event)
