package http

import "github.com/gin-gonic/gin"

// Register mounts every REST route on r
func (h *Handlers) Register(r gin.IRouter) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/metrics/json", h.MetricsJSON)

	// App catalogue
	r.GET("/apps", h.ListApps)

	// Windows
	r.GET("/windows", h.ListWindows)
	r.POST("/windows", h.OpenWindow)
	r.POST("/windows/minimize-all", h.MinimizeAll)
	r.POST("/windows/arrange", h.Arrange)
	r.GET("/windows/:id", h.GetWindow)
	r.DELETE("/windows/:id", h.CloseWindow)
	r.POST("/windows/:id/focus", h.FocusWindow)
	r.POST("/windows/:id/minimize", h.MinimizeWindow)
	r.POST("/windows/:id/maximize", h.MaximizeWindow)
	r.POST("/windows/:id/restore", h.RestoreWindow)
	r.POST("/windows/:id/unsnap", h.UnsnapWindow)
	r.POST("/windows/:id/snap", h.SnapWindow)
	r.POST("/windows/:id/always-on-top", h.ToggleAlwaysOnTop)
	r.PUT("/windows/:id/position", h.UpdatePosition)
	r.PUT("/windows/:id/size", h.UpdateSize)
	r.PUT("/windows/:id/title", h.SetTitle)
	r.PUT("/windows/:id/transparency", h.SetTransparency)
	r.PUT("/windows/:id/desktop", h.MoveToDesktop)
	r.GET("/windows/:id/mount", h.Mount)

	// Taskbar and shortcuts
	r.POST("/taskbar/:app_id/click", h.TaskbarClick)
	r.GET("/shortcuts", h.ListShortcuts)
	r.POST("/shortcuts/:action", h.Shortcut)

	// Desktops
	r.GET("/desktops", h.ListDesktops)
	r.POST("/desktops", h.CreateDesktop)
	r.POST("/desktops/overview", h.ToggleOverview)
	r.POST("/desktops/:id/switch", h.SwitchDesktop)
	r.POST("/desktops/:id/duplicate", h.DuplicateDesktop)
	r.PUT("/desktops/:id", h.RenameDesktop)
	r.DELETE("/desktops/:id", h.CloseDesktop)

	// Sessions
	r.GET("/sessions", h.ListSessions)
}
