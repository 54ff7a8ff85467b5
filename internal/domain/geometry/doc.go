// Package geometry holds the pure rectangle math of the window manager.
//
// Nothing here touches window state. Callers pass a viewport on every call,
// and the viewport is never cached, so a browser resize is picked up by the
// next computation.
//
// Components:
//   - ClampSize: Enforces the minimum window size
//   - WorkArea: Viewport minus the reserved taskbar strip
//   - ZoneRect: Half and quarter snap zones of the work area
//   - Frame: Resolves a Bounds variant to an on-screen rect
//   - CascadeOffset, Arrange: Placement of new and rearranged windows
package geometry
