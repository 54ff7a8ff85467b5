package types

// OpenRequest represents an open-app request
type OpenRequest struct {
	AppID    string `json:"app_id" binding:"required"`
	ForceNew bool   `json:"force_new"`
}

// PositionRequest represents a raw position write
type PositionRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SizeRequest represents a raw size write
type SizeRequest struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SnapRequest represents a programmatic snap
type SnapRequest struct {
	Zone     SnapLayout `json:"zone" binding:"required"`
	Viewport *Viewport  `json:"viewport,omitempty"`
}

// TitleRequest represents a window title change
type TitleRequest struct {
	Title string `json:"title" binding:"required"`
}

// TransparencyRequest represents a window opacity change
type TransparencyRequest struct {
	Value float64 `json:"value"`
}

// MoveDesktopRequest moves a window to another desktop
type MoveDesktopRequest struct {
	DesktopID string `json:"desktop_id" binding:"required"`
}

// DesktopRequest creates or renames a desktop
type DesktopRequest struct {
	Name string `json:"name"`
}

// ArrangeRequest represents a bulk arrangement
type ArrangeRequest struct {
	Layout   ArrangeLayout `json:"layout" binding:"required"`
	Viewport *Viewport     `json:"viewport,omitempty"`
}

// TaskbarClickRequest represents a taskbar button click
type TaskbarClickRequest struct {
	ForceNew bool `json:"force_new"`
}

// ShortcutRequest carries an optional viewport for a shortcut chord
type ShortcutRequest struct {
	Viewport *Viewport `json:"viewport,omitempty"`
}

// PointerKind is the phase of a pointer event
type PointerKind string

const (
	PointerDown   PointerKind = "down"
	PointerMove   PointerKind = "move"
	PointerUp     PointerKind = "up"
	PointerCancel PointerKind = "cancel"
)

// HitTarget is the window region under the pointer at pointer-down
type HitTarget string

const (
	HitTitleBar HitTarget = "titlebar"
	HitControl  HitTarget = "control"
	HitGrip     HitTarget = "grip"
	HitBody     HitTarget = "body"
)

// PointerEvent is a single pointer sample from the host
type PointerEvent struct {
	Kind     PointerKind `json:"kind"`
	X        int         `json:"x"`
	Y        int         `json:"y"`
	Target   HitTarget   `json:"target,omitempty"`
	WindowID string      `json:"window_id,omitempty"`
}

// WSMessage represents a WebSocket message from the shell
type WSMessage struct {
	Type     string        `json:"type"`
	Pointer  *PointerEvent `json:"pointer,omitempty"`
	Viewport *Viewport     `json:"viewport,omitempty"`
	Action   string        `json:"action,omitempty"`
}
