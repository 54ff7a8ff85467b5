package window

import "time"

// Timer is a pending scheduled callback
type Timer interface {
	Stop() bool
}

// Scheduler runs a callback after a delay. Implementations must run f on a
// separate goroutine, never inside AfterFunc itself.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemScheduler schedules on the runtime timer heap
type SystemScheduler struct{}

// AfterFunc wraps time.AfterFunc
func (SystemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// animation tracks the pending clear of a window's transient tag. The
// generation lets a stale callback recognise it has been superseded.
type animation struct {
	generation uint64
	timer      Timer
}
