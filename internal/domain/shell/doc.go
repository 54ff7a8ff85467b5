// Package shell is the operation surface the browser shell drives.
//
// A Shell composes the window registry, the virtual desktop manager and the
// app catalogue. It owns cross-component rules: new windows join the active
// desktop, reusing an instance follows it to its desktop, taskbar clicks and
// keyboard shortcuts resolve to registry operations. Every committed change
// is reported to listeners so connected sessions can re-render.
package shell
