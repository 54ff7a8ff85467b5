package ws

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/session"
	"github.com/thekoushikdurgas/durgasos/backend/internal/infrastructure/monitoring"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
)

// Connection timing defaults
const (
	DefaultWriteTimeout = 10 * time.Second
	DefaultPongTimeout  = 60 * time.Second
	maxMessageSize      = 64 << 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // The shell may be served from any origin in dev
	},
}

// Handler manages WebSocket connections
type Handler struct {
	hub          *session.Hub
	logger       *zap.Logger
	metrics      *monitoring.Metrics
	writeTimeout time.Duration
	pongTimeout  time.Duration
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *session.Hub, logger *zap.Logger, metrics *monitoring.Metrics) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		hub:          hub,
		logger:       logger,
		metrics:      metrics,
		writeTimeout: DefaultWriteTimeout,
		pongTimeout:  DefaultPongTimeout,
	}
}

// HandleConnection upgrades the request and serves one shell session until
// the socket closes. The initial viewport may be passed as width, height
// and taskbar query parameters.
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	if h.metrics != nil {
		h.metrics.IncWSConnections()
		defer h.metrics.DecWSConnections()
	}

	sess := h.hub.Attach(viewportFromQuery(c))
	defer h.hub.Detach(sess.ID)
	log := h.logger.With(zap.String("session_id", sess.ID))

	stop := make(chan struct{})
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		h.writeLoop(conn, sess, stop, log)
		// Unblocks the reader when the writer stops first
		conn.Close()
	}()

	h.readLoop(conn, sess, log)
	close(stop)
	<-writerDone
}

func (h *Handler) readLoop(conn *websocket.Conn, sess *session.Session, log *zap.Logger) {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(h.pongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.pongTimeout))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("websocket read error", zap.Error(err))
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(h.pongTimeout))

		var msg types.WSMessage
		if err := sonic.Unmarshal(data, &msg); err != nil {
			sess.SendError("malformed message")
			continue
		}
		if err := h.hub.Handle(sess, msg); err != nil {
			log.Debug("message rejected", zap.String("type", msg.Type), zap.Error(err))
		}
	}
}

// writeLoop is the only writer on conn. Queued messages keep their order;
// snapshot requests collapse into one frame per wake-up.
func (h *Handler) writeLoop(conn *websocket.Conn, sess *session.Session, stop <-chan struct{}, log *zap.Logger) {
	ping := time.NewTicker(h.pongTimeout * 9 / 10)
	defer ping.Stop()

	for {
		select {
		case msg := <-sess.Outbox():
			if err := h.send(conn, msg); err != nil {
				log.Debug("websocket write failed", zap.Error(err))
				return
			}

		case <-sess.Dirty():
			snap := h.hub.Snapshot(sess)
			if err := h.send(conn, session.Message{Type: session.TypeSnapshot, Snapshot: &snap}); err != nil {
				log.Debug("websocket write failed", zap.Error(err))
				return
			}

		case <-ping.C:
			deadline := time.Now().Add(h.writeTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}

		case <-stop:
			return
		case <-sess.Done():
			return
		}
	}
}

func (h *Handler) send(conn *websocket.Conn, msg session.Message) error {
	if msg.Timestamp == 0 {
		msg.Timestamp = time.Now().Unix()
	}
	data, err := sonic.Marshal(msg)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return err
	}
	h.hub.RecordOutbound(msg.Type)
	return nil
}

// viewportFromQuery reads an optional initial viewport. Missing or
// malformed values leave the choice to the hub.
func viewportFromQuery(c *gin.Context) *types.Viewport {
	width, errW := strconv.Atoi(c.Query("width"))
	height, errH := strconv.Atoi(c.Query("height"))
	if errW != nil || errH != nil {
		return nil
	}
	taskbar, _ := strconv.Atoi(c.Query("taskbar"))
	return &types.Viewport{Width: width, Height: height, TaskbarHeight: taskbar}
}
