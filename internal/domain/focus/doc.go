// Package focus implements z-order and focus arbitration.
//
// Components:
//   - Arbiter: Monotonic z counter plus the active window id
//   - TaskbarClick: Pure decision for a taskbar button click
//   - CycleNext: Pure choice of the next window when cycling
//
// Focusing a window never touches any other window's z-index or minimized
// flag.
package focus
