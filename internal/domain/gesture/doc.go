// Package gesture implements the pointer-driven drag and resize state
// machines.
//
// A Controller belongs to one input device. Pointer-down on a title bar or
// resize grip acquires host pointer capture; the capture is released by a
// single exit path on pointer-up, cancel, window loss or teardown. Snap
// previews are computed on every drag move and committed on release.
package gesture
