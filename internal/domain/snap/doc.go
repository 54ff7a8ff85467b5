// Package snap classifies a dragged window into an edge snap zone.
//
// The Detector only answers "which zone, if any". Committing a snap is the
// window registry's job.
package snap
