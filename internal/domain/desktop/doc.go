// Package desktop partitions windows into ordered virtual desktops.
//
// Each window belongs to exactly one desktop. Windows are assigned to the
// active desktop when they open and never migrate unless moved explicitly or
// their desktop is closed. The last desktop cannot be closed.
package desktop
