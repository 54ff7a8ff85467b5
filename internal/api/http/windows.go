package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/utils"
)

// windowOutcome writes the result of a single-window operation. Missing
// windows are a no-op, not an error.
func windowOutcome(c *gin.Context, windowID string, outcome types.Outcome) {
	c.JSON(http.StatusOK, gin.H{
		"outcome":   outcome,
		"window_id": windowID,
	})
}

// ListWindows lists one desktop's windows in paint order
func (h *Handlers) ListWindows(c *gin.Context) {
	desktopID := c.Query("desktop")
	if err := utils.ValidateID(desktopID, "desktop", false); err != nil {
		badRequest(c, err)
		return
	}

	windows := h.shell.ListWindows(desktopID, nil)
	c.JSON(http.StatusOK, gin.H{
		"windows": windows,
		"stats":   h.shell.Windows().Stats(),
	})
}

// OpenWindow opens an app or focuses its existing instance
func (h *Handlers) OpenWindow(c *gin.Context) {
	var req types.OpenRequest
	if !bindRequired(c, &req) {
		return
	}
	if err := utils.ValidateID(req.AppID, "app_id", true); err != nil {
		badRequest(c, err)
		return
	}

	res := h.shell.OpenApp(req.AppID, req.ForceNew)
	body := gin.H{
		"outcome":    res.Outcome,
		"window_id":  res.WindowID,
		"created":    res.Created,
		"desktop_id": res.DesktopID,
	}
	if view, ok := h.shell.GetWindow(res.WindowID, nil); ok {
		body["window"] = view
	}
	c.JSON(http.StatusOK, body)
}

// GetWindow returns one window's view
func (h *Handlers) GetWindow(c *gin.Context) {
	windowID, ok := pathID(c, "id", "window_id")
	if !ok {
		return
	}
	view, found := h.shell.GetWindow(windowID, nil)
	if !found {
		windowOutcome(c, windowID, types.OutcomeMissing)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"outcome": types.OutcomeApplied,
		"window":  view,
	})
}

// CloseWindow removes a window
func (h *Handlers) CloseWindow(c *gin.Context) {
	h.simple(c, h.shell.CloseWindow)
}

// FocusWindow raises a window
func (h *Handlers) FocusWindow(c *gin.Context) {
	h.simple(c, h.shell.FocusWindow)
}

// MinimizeWindow hides a window
func (h *Handlers) MinimizeWindow(c *gin.Context) {
	h.simple(c, h.shell.MinimizeWindow)
}

// MaximizeWindow toggles maximized state
func (h *Handlers) MaximizeWindow(c *gin.Context) {
	h.simple(c, h.shell.ToggleMaximize)
}

// RestoreWindow returns a window to its free bounds
func (h *Handlers) RestoreWindow(c *gin.Context) {
	h.simple(c, h.shell.RestoreWindow)
}

// UnsnapWindow releases a snapped window
func (h *Handlers) UnsnapWindow(c *gin.Context) {
	h.simple(c, h.shell.UnsnapWindow)
}

// ToggleAlwaysOnTop flips a window's paint-order boost
func (h *Handlers) ToggleAlwaysOnTop(c *gin.Context) {
	h.simple(c, h.shell.ToggleAlwaysOnTop)
}

func (h *Handlers) simple(c *gin.Context, op func(string) types.Outcome) {
	windowID, ok := pathID(c, "id", "window_id")
	if !ok {
		return
	}
	windowOutcome(c, windowID, op(windowID))
}

// UpdatePosition writes a window position
func (h *Handlers) UpdatePosition(c *gin.Context) {
	windowID, ok := pathID(c, "id", "window_id")
	if !ok {
		return
	}
	var req types.PositionRequest
	if !bindRequired(c, &req) {
		return
	}
	windowOutcome(c, windowID, h.shell.UpdatePosition(windowID, types.WindowPosition{X: req.X, Y: req.Y}))
}

// UpdateSize writes a window size; undersized requests are clamped
func (h *Handlers) UpdateSize(c *gin.Context) {
	windowID, ok := pathID(c, "id", "window_id")
	if !ok {
		return
	}
	var req types.SizeRequest
	if !bindRequired(c, &req) {
		return
	}
	windowOutcome(c, windowID, h.shell.UpdateSize(windowID, types.WindowSize{Width: req.Width, Height: req.Height}))
}

// SnapWindow places a window in a zone
func (h *Handlers) SnapWindow(c *gin.Context) {
	windowID, ok := pathID(c, "id", "window_id")
	if !ok {
		return
	}
	var req types.SnapRequest
	if !bindRequired(c, &req) {
		return
	}
	if err := utils.ValidateSnapLayout(req.Zone); err != nil {
		badRequest(c, err)
		return
	}
	if !viewport(c, req.Viewport) {
		return
	}

	outcome := h.shell.SnapWindow(windowID, req.Zone)
	body := gin.H{"outcome": outcome, "window_id": windowID}
	if view, found := h.shell.GetWindow(windowID, req.Viewport); found {
		body["window"] = view
	}
	c.JSON(http.StatusOK, body)
}

// SetTitle renames a window
func (h *Handlers) SetTitle(c *gin.Context) {
	windowID, ok := pathID(c, "id", "window_id")
	if !ok {
		return
	}
	var req types.TitleRequest
	if !bindRequired(c, &req) {
		return
	}
	if err := utils.ValidateTitle(req.Title); err != nil {
		badRequest(c, err)
		return
	}
	windowOutcome(c, windowID, h.shell.SetTitle(windowID, req.Title))
}

// SetTransparency sets a window's opacity
func (h *Handlers) SetTransparency(c *gin.Context) {
	windowID, ok := pathID(c, "id", "window_id")
	if !ok {
		return
	}
	var req types.TransparencyRequest
	if !bindRequired(c, &req) {
		return
	}
	windowOutcome(c, windowID, h.shell.SetTransparency(windowID, req.Value))
}

// MoveToDesktop re-homes a window on another desktop
func (h *Handlers) MoveToDesktop(c *gin.Context) {
	windowID, ok := pathID(c, "id", "window_id")
	if !ok {
		return
	}
	var req types.MoveDesktopRequest
	if !bindRequired(c, &req) {
		return
	}
	if err := utils.ValidateID(req.DesktopID, "desktop_id", true); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"outcome":    h.shell.MoveWindowToDesktop(windowID, req.DesktopID),
		"window_id":  windowID,
		"desktop_id": req.DesktopID,
	})
}

// Mount returns the renderer spec for a window's app body
func (h *Handlers) Mount(c *gin.Context) {
	windowID, ok := pathID(c, "id", "window_id")
	if !ok {
		return
	}
	spec, found := h.shell.Mount(windowID)
	if !found {
		windowOutcome(c, windowID, types.OutcomeMissing)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"outcome": types.OutcomeApplied,
		"mount":   spec,
	})
}

// MinimizeAll hides every window
func (h *Handlers) MinimizeAll(c *gin.Context) {
	count := h.shell.MinimizeAll()
	outcome := types.OutcomeApplied
	if count == 0 {
		outcome = types.OutcomeUnchanged
	}
	c.JSON(http.StatusOK, gin.H{
		"outcome": outcome,
		"count":   count,
	})
}

// Arrange lays out the active desktop's windows
func (h *Handlers) Arrange(c *gin.Context) {
	var req types.ArrangeRequest
	if !bindRequired(c, &req) {
		return
	}
	if !req.Layout.Valid() {
		badRequest(c, fmt.Errorf("unknown layout %q", req.Layout))
		return
	}
	if !viewport(c, req.Viewport) {
		return
	}

	count, outcome := h.shell.Arrange(req.Layout, req.Viewport)
	c.JSON(http.StatusOK, gin.H{
		"outcome": outcome,
		"count":   count,
		"windows": h.shell.ListWindows("", req.Viewport),
	})
}
