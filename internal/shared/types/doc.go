// Package types provides shared data structures for the window manager backend.
//
// This package defines core types used across all backend components,
// ensuring type safety and consistent data structures.
//
// Core Types:
//   - WindowRecord: Authoritative state of an open window
//   - Bounds: Free, Maximized or Snapped geometry variant
//   - AppDefinition: Immutable launchable application
//   - VirtualDesktop: Named partition of the window set
//   - Outcome: Typed operation result
//
// Geometry:
//   - WindowPosition, WindowSize, Rect: Window geometry
//   - Viewport: Host viewport with reserved taskbar height
//   - SnapLayout: Half and quarter zones
//
// Request Types:
//   - OpenRequest, PositionRequest, SizeRequest: REST bodies
//   - WSMessage, PointerEvent: WebSocket communication
//
// Example Usage:
//
//	rec := &types.WindowRecord{
//	    ID:     string(id.NewWindowID()),
//	    AppID:  "calculator",
//	    Bounds: types.FreeBounds{Frame: types.Rect{X: 50, Y: 50, Width: 400, Height: 600}},
//	}
package types
