// Package session tracks connected browser shells.
//
// Each Session owns one gesture controller and the viewport last reported by
// its shell. The Hub subscribes to shell changes and marks every session
// dirty; transports write a fresh snapshot per dirty signal, so bursts of
// changes coalesce into one frame.
//
// Inbound message types:
//   - pointer: down, move, up or cancel routed to the gesture controller
//   - viewport: replaces the session viewport
//   - shortcut: runs a named keyboard shortcut
//   - snapshot: requests a full state frame
//   - ping
//
// Example Usage:
//
//	hub := session.NewHub(sh, logger, metrics)
//	s := hub.Attach(&vp)
//	defer hub.Detach(s.ID)
//	err := hub.Handle(s, msg)
package session
