// Package window implements the authoritative window registry.
//
// The Manager owns every WindowRecord, the shared z counter and the active
// window id. All mutations go through it and are atomic under one lock;
// observers are notified after the lock is released.
//
// Features:
//   - Single-instance reuse unless ForceNew is requested
//   - Cascade placement and minimum-size clamping on open
//   - Free, Maximized and Snapped bounds with a remembered restore frame
//   - Transient animation tags cleared by a generation-checked timer
//   - Bulk arrangement (cascade, tile horizontally, tile vertically)
//
// Unknown ids are reported as types.OutcomeMissing and never mutate state.
//
// Example Usage:
//
//	reg := window.NewManager(window.DefaultConfig()).WithLogger(logger)
//	rec, created := reg.Open(app, window.OpenOptions{})
//	reg.Snap(rec.ID, types.SnapLeft)
//	reg.Unsnap(rec.ID)
package window
