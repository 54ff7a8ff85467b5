package types

// VirtualDesktop is a named partition of the window set
type VirtualDesktop struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DesktopView is a desktop with its derived membership
type DesktopView struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	IsActive  bool     `json:"is_active"`
	WindowIDs []string `json:"window_ids"`
}

// DesktopStats contains desktop manager statistics
type DesktopStats struct {
	TotalDesktops   int    `json:"total_desktops"`
	ActiveDesktopID string `json:"active_desktop_id"`
	Overview        bool   `json:"overview"`
}

// Snapshot is the full shell state pushed to a session
type Snapshot struct {
	Windows         []WindowView  `json:"windows"`
	Desktops        []DesktopView `json:"desktops"`
	ActiveDesktopID string        `json:"active_desktop_id"`
	ActiveWindowID  string        `json:"active_window_id,omitempty"`
	Overview        bool          `json:"overview"`
	Viewport        Viewport      `json:"viewport"`
}
