package session

import (
	"sync"
	"time"

	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/gesture"
	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/shell"
	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/snap"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
)

// Outbound message types
const (
	TypeSnapshot = "snapshot"
	TypePreview  = "preview"
	TypeCapture  = "capture"
	TypeShortcut = "shortcut"
	TypePong     = "pong"
	TypeError    = "error"
)

// CaptureState tells the host to hold or drop its global pointer listeners
type CaptureState struct {
	Active   bool         `json:"active"`
	Gesture  gesture.Kind `json:"gesture"`
	WindowID string       `json:"window_id"`
}

// Message is a server-to-shell message
type Message struct {
	Type      string                `json:"type"`
	Snapshot  *types.Snapshot       `json:"snapshot,omitempty"`
	Preview   *snap.Preview         `json:"preview,omitempty"`
	Capture   *CaptureState         `json:"capture,omitempty"`
	Shortcut  *shell.ShortcutResult `json:"shortcut,omitempty"`
	Gesture   *gesture.Result       `json:"gesture,omitempty"`
	Message   string                `json:"message,omitempty"`
	Timestamp int64                 `json:"timestamp"`
}

// Session is one connected shell: one input device, one viewport. Snapshot
// requests coalesce into a single pending signal; other messages queue in
// order and are dropped when the queue is full.
type Session struct {
	ID          string
	ConnectedAt time.Time

	mu       sync.RWMutex
	viewport types.Viewport // Protected by mu

	gestures *gesture.Controller
	outbox   chan Message
	dirty    chan struct{}
	done     chan struct{}
	once     sync.Once
}

func newSession(sessionID string, vp types.Viewport, queue int) *Session {
	return &Session{
		ID:          sessionID,
		ConnectedAt: time.Now(),
		viewport:    vp,
		outbox:      make(chan Message, queue),
		dirty:       make(chan struct{}, 1),
		done:        make(chan struct{}),
	}
}

// Viewport returns the latest viewport reported by the shell
func (s *Session) Viewport() types.Viewport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewport
}

func (s *Session) setViewport(vp types.Viewport) {
	s.mu.Lock()
	s.viewport = vp
	s.mu.Unlock()
}

// Gestures returns the session's drag and resize controller
func (s *Session) Gestures() *gesture.Controller {
	return s.gestures
}

// Outbox delivers queued messages to the writer
func (s *Session) Outbox() <-chan Message {
	return s.outbox
}

// Dirty signals that a fresh snapshot should be written
func (s *Session) Dirty() <-chan struct{} {
	return s.dirty
}

// Done is closed when the session is detached
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// MarkDirty requests a snapshot without blocking
func (s *Session) MarkDirty() {
	select {
	case s.dirty <- struct{}{}:
	default:
	}
}

// Send queues a message without blocking. It reports false when the
// session is closed or its queue is full.
func (s *Session) Send(msg Message) bool {
	if msg.Timestamp == 0 {
		msg.Timestamp = time.Now().Unix()
	}
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.outbox <- msg:
		return true
	default:
		return false
	}
}

// SendError queues an error message
func (s *Session) SendError(text string) bool {
	return s.Send(Message{Type: TypeError, Message: text})
}

func (s *Session) close() {
	s.once.Do(func() {
		close(s.done)
		s.gestures.Close()
	})
}

// capturer forwards capture transitions to the shell
func (s *Session) capturer() gesture.Capturer {
	return gesture.CapturerFunc(func(kind gesture.Kind, windowID string) gesture.Capture {
		s.Send(Message{Type: TypeCapture, Capture: &CaptureState{Active: true, Gesture: kind, WindowID: windowID}})
		return gesture.ReleaseFunc(func() {
			s.Send(Message{Type: TypeCapture, Capture: &CaptureState{Active: false, Gesture: kind, WindowID: windowID}})
		})
	})
}
