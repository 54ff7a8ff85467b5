package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/shell"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
)

// TaskbarClick resolves a click on an app's taskbar button
func (h *Handlers) TaskbarClick(c *gin.Context) {
	appID, ok := pathID(c, "app_id", "app_id")
	if !ok {
		return
	}
	var req types.TaskbarClickRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.shell.TaskbarClick(appID, req.ForceNew))
}

// ListShortcuts lists the named shortcut actions
func (h *Handlers) ListShortcuts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"actions": shell.Actions})
}

// Shortcut runs a named keyboard shortcut
func (h *Handlers) Shortcut(c *gin.Context) {
	action := shell.Action(c.Param("action"))
	if !action.Valid() {
		badRequest(c, fmt.Errorf("unknown shortcut %q", action))
		return
	}
	var req types.ShortcutRequest
	if !bind(c, &req) {
		return
	}
	if !viewport(c, req.Viewport) {
		return
	}
	c.JSON(http.StatusOK, h.shell.Dispatch(action, req.Viewport))
}
