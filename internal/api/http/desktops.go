package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/utils"
)

func desktopOutcome(c *gin.Context, desktopID string, outcome types.Outcome) {
	c.JSON(http.StatusOK, gin.H{
		"outcome":    outcome,
		"desktop_id": desktopID,
	})
}

// ListDesktops lists desktops with their members
func (h *Handlers) ListDesktops(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"desktops":  h.shell.ListDesktops(),
		"active_id": h.shell.Desktops().ActiveID(),
		"overview":  h.shell.Desktops().Overview(),
		"stats":     h.shell.Desktops().Stats(),
	})
}

// CreateDesktop adds a desktop and switches to it
func (h *Handlers) CreateDesktop(c *gin.Context) {
	var req types.DesktopRequest
	if !bind(c, &req) {
		return
	}
	if err := utils.ValidateName(req.Name, false); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.shell.CreateDesktop(req.Name))
}

// DuplicateDesktop adds an empty desktop named after another
func (h *Handlers) DuplicateDesktop(c *gin.Context) {
	desktopID, ok := pathID(c, "id", "desktop_id")
	if !ok {
		return
	}
	var req types.DesktopRequest
	if !bind(c, &req) {
		return
	}
	if err := utils.ValidateName(req.Name, false); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.shell.DuplicateDesktop(desktopID, req.Name))
}

// SwitchDesktop changes the visible desktop
func (h *Handlers) SwitchDesktop(c *gin.Context) {
	desktopID, ok := pathID(c, "id", "desktop_id")
	if !ok {
		return
	}
	desktopOutcome(c, desktopID, h.shell.SwitchDesktop(desktopID))
}

// RenameDesktop changes a desktop's name
func (h *Handlers) RenameDesktop(c *gin.Context) {
	desktopID, ok := pathID(c, "id", "desktop_id")
	if !ok {
		return
	}
	var req types.DesktopRequest
	if !bindRequired(c, &req) {
		return
	}
	if err := utils.ValidateName(req.Name, true); err != nil {
		badRequest(c, err)
		return
	}
	desktopOutcome(c, desktopID, h.shell.RenameDesktop(desktopID, req.Name))
}

// CloseDesktop removes a desktop; ?reassign picks where its windows go
func (h *Handlers) CloseDesktop(c *gin.Context) {
	desktopID, ok := pathID(c, "id", "desktop_id")
	if !ok {
		return
	}
	reassign := c.Query("reassign")
	if err := utils.ValidateID(reassign, "reassign", false); err != nil {
		badRequest(c, err)
		return
	}
	desktopOutcome(c, desktopID, h.shell.CloseDesktop(desktopID, reassign))
}

// ToggleOverview flips the task view
func (h *Handlers) ToggleOverview(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"outcome":  types.OutcomeApplied,
		"overview": h.shell.ToggleOverview(),
	})
}
