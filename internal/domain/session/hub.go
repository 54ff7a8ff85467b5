package session

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/gesture"
	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/shell"
	"github.com/thekoushikdurgas/durgasos/backend/internal/infrastructure/monitoring"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/utils"
)

// DefaultQueueSize bounds each session's outbound message queue
const DefaultQueueSize = 64

// Hub tracks connected sessions and fans shell changes out to them
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*Session // Protected by mu

	shell       *shell.Shell
	queue       int
	logger      *zap.Logger
	metrics     *monitoring.Metrics
	unsubscribe func()
}

// NewHub creates a hub subscribed to shell changes
func NewHub(sh *shell.Shell, logger *zap.Logger, metrics *monitoring.Metrics) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Hub{
		sessions: make(map[string]*Session),
		shell:    sh,
		queue:    DefaultQueueSize,
		logger:   logger,
		metrics:  metrics,
	}
	h.unsubscribe = sh.Subscribe(func(shell.Change) { h.Broadcast() })
	return h
}

// Shell returns the shell sessions drive
func (h *Hub) Shell() *shell.Shell {
	return h.shell
}

// Attach registers a new session. An invalid viewport falls back to the
// shell default.
func (h *Hub) Attach(vp *types.Viewport) *Session {
	initial := h.shell.DefaultViewport()
	if vp != nil && utils.ValidateViewport(*vp) == nil {
		initial = *vp
	}

	s := newSession(uuid.NewString(), initial, h.queue)
	s.gestures = gesture.NewController(
		h.shell.Windows(),
		h.shell.Detector(),
		s.Viewport,
		gesture.WithCapturer(s.capturer()),
		gesture.WithLogger(h.logger.With(zap.String("session_id", s.ID))),
		gesture.WithMetrics(h.metrics),
		gesture.WithMinSize(h.shell.Windows().Config().MinSize),
	)

	h.mu.Lock()
	h.sessions[s.ID] = s
	count := len(h.sessions)
	h.mu.Unlock()

	h.updateMetrics(count)
	h.logger.Info("session attached", zap.String("session_id", s.ID), zap.Int("sessions", count))
	s.MarkDirty()
	return s
}

// Detach removes a session, ending any gesture it holds
func (h *Hub) Detach(sessionID string) {
	h.mu.Lock()
	s, ok := h.sessions[sessionID]
	delete(h.sessions, sessionID)
	count := len(h.sessions)
	h.mu.Unlock()

	if !ok {
		return
	}
	s.close()
	h.updateMetrics(count)
	h.logger.Info("session detached", zap.String("session_id", sessionID), zap.Int("sessions", count))
}

// Get returns a session by id
func (h *Hub) Get(sessionID string) (*Session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s, ok := h.sessions[sessionID]
	return s, ok
}

// Count returns the number of connected sessions
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Info is the public view of a session
type Info struct {
	ID       string         `json:"id"`
	Viewport types.Viewport `json:"viewport"`
	Gesture  gesture.Kind   `json:"gesture,omitempty"`
}

// List returns every session ordered by connection time
func (h *Hub) List() []Info {
	h.mu.RLock()
	sessions := make([]*Session, 0, len(h.sessions))
	for _, s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.mu.RUnlock()

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].ConnectedAt.Before(sessions[j].ConnectedAt)
	})
	out := make([]Info, len(sessions))
	for i, s := range sessions {
		out[i] = Info{ID: s.ID, Viewport: s.Viewport(), Gesture: s.gestures.Active()}
	}
	return out
}

// Broadcast asks every session for a fresh snapshot
func (h *Hub) Broadcast() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, s := range h.sessions {
		s.MarkDirty()
	}
}

// Snapshot builds the state a session should render
func (h *Hub) Snapshot(s *Session) types.Snapshot {
	vp := s.Viewport()
	return h.shell.Snapshot(&vp)
}

// Handle applies one inbound message and queues any direct reply
func (h *Hub) Handle(s *Session, msg types.WSMessage) error {
	h.recordMessage("in", msg.Type)

	switch msg.Type {
	case "pointer":
		if msg.Pointer == nil {
			s.SendError("pointer message without pointer")
			return fmt.Errorf("pointer message without pointer")
		}
		res := s.gestures.Handle(*msg.Pointer)
		if res.Gesture == gesture.KindDrag && msg.Pointer.Kind == types.PointerMove {
			s.Send(Message{Type: TypePreview, Preview: res.Preview})
		}
		if res.Outcome == types.OutcomeConflict || res.Outcome == types.OutcomeRejected {
			s.Send(Message{Type: TypeError, Message: "pointer " + string(res.Outcome), Gesture: &res})
		}

	case "viewport":
		if msg.Viewport == nil {
			s.SendError("viewport message without viewport")
			return fmt.Errorf("viewport message without viewport")
		}
		if err := utils.ValidateViewport(*msg.Viewport); err != nil {
			s.SendError(err.Error())
			return err
		}
		s.setViewport(*msg.Viewport)
		s.MarkDirty()

	case "shortcut":
		action := shell.Action(msg.Action)
		if !action.Valid() {
			s.SendError("unknown shortcut " + msg.Action)
			return fmt.Errorf("unknown shortcut %q", msg.Action)
		}
		vp := s.Viewport()
		res := h.shell.Dispatch(action, &vp)
		s.Send(Message{Type: TypeShortcut, Shortcut: &res})

	case "snapshot":
		s.MarkDirty()

	case "ping":
		s.Send(Message{Type: TypePong})

	default:
		s.SendError("unknown message type")
		return fmt.Errorf("unknown message type %q", msg.Type)
	}
	return nil
}

// Close detaches every session and stops listening to the shell
func (h *Hub) Close() {
	h.unsubscribe()

	h.mu.Lock()
	sessions := h.sessions
	h.sessions = make(map[string]*Session)
	h.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}
	h.updateMetrics(0)
}

func (h *Hub) recordMessage(direction, msgType string) {
	if h.metrics != nil {
		h.metrics.RecordWSMessage(direction, msgType)
	}
}

// RecordOutbound counts a message written by a transport
func (h *Hub) RecordOutbound(msgType string) {
	h.recordMessage("out", msgType)
}

func (h *Hub) updateMetrics(count int) {
	if h.metrics != nil {
		h.metrics.SetSessionsActive(count)
	}
}
