package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/session"
	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/shell"
	"github.com/thekoushikdurgas/durgasos/backend/internal/infrastructure/monitoring"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/utils"
)

// Version is reported by the root banner
const Version = "0.1.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	shell   *shell.Shell
	hub     *session.Hub
	metrics *monitoring.Metrics
	logger  *zap.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(sh *shell.Shell, hub *session.Hub, metrics *monitoring.Metrics, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		shell:   sh,
		hub:     hub,
		metrics: metrics,
		logger:  logger,
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "DurgasOS Window Manager",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	health := h.shell.Health()
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"windows":  health.Windows,
		"desktops": health.Desktops,
		"apps":     health.Apps,
		"sessions": h.hub.Count(),
	})
}

// ListApps lists the app catalogue, optionally filtered by category
func (h *Handlers) ListApps(c *gin.Context) {
	categoryStr := c.Query("category")

	// Validate category if provided
	if categoryStr != "" {
		if err := utils.ValidateCategory(categoryStr, false); err != nil {
			badRequest(c, err)
			return
		}
	}

	var category *string
	if categoryStr != "" {
		category = &categoryStr
	}

	catalogue := h.shell.Catalogue()
	c.JSON(http.StatusOK, gin.H{
		"apps":       catalogue.List(category),
		"pinned":     catalogue.Pinned(),
		"categories": catalogue.Categories(),
		"stats":      catalogue.Stats(),
	})
}

// ListSessions lists connected shells
func (h *Handlers) ListSessions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sessions": h.hub.List(),
	})
}

// MetricsJSON returns request counters plus component statistics
func (h *Handlers) MetricsJSON(c *gin.Context) {
	body := gin.H{
		"components": h.shell.Health(),
		"sessions":   h.hub.Count(),
	}
	if h.metrics != nil {
		body["backend"] = h.metrics.Snapshot()
	}
	c.JSON(http.StatusOK, body)
}

// pathID reads and validates a path parameter
func pathID(c *gin.Context, param, field string) (string, bool) {
	value := c.Param(param)
	if err := utils.ValidateID(value, field, true); err != nil {
		badRequest(c, err)
		return "", false
	}
	return value, true
}

// bind decodes an optional JSON body. An empty body leaves req untouched.
func bind(c *gin.Context, req interface{}) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(req); err != nil {
		badRequest(c, err)
		return false
	}
	return true
}

// bindRequired decodes a JSON body that must be present
func bindRequired(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		badRequest(c, err)
		return false
	}
	return true
}

// viewport validates an optional request viewport
func viewport(c *gin.Context, vp *types.Viewport) bool {
	if vp == nil {
		return true
	}
	if err := utils.ValidateViewport(*vp); err != nil {
		badRequest(c, err)
		return false
	}
	return true
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
