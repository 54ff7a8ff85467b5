// Package ws serves the shell's WebSocket stream.
//
// Every connection is one session: one input device with its own gesture
// controller and viewport. A reader goroutine decodes messages with sonic and
// hands them to the session hub in arrival order; a single writer goroutine
// owns the socket and writes queued replies plus a full snapshot whenever
// the session is marked dirty.
//
// Client messages: pointer, viewport, shortcut, snapshot, ping.
// Server messages: snapshot, preview, capture, shortcut, pong, error.
package ws
