package focus

// Arbiter owns the shared z-order counter and the active window id. The
// counter only grows over the lifetime of the arbiter, so a raised window
// always ends up above every other window, including minimized and closed
// ones. Arbiter is not safe for concurrent use; its owner serialises access.
type Arbiter struct {
	top    int
	active string
}

// NewArbiter creates an arbiter with no windows raised
func NewArbiter() *Arbiter {
	return &Arbiter{}
}

// Raise hands out the next z-index and makes id active
func (a *Arbiter) Raise(id string) int {
	a.top++
	a.active = id
	return a.top
}

// Reserve hands out the next z-index without changing the active window
func (a *Arbiter) Reserve() int {
	a.top++
	return a.top
}

// Top returns the highest z-index handed out so far
func (a *Arbiter) Top() int {
	return a.top
}

// Active returns the active window id, or "" when none is active
func (a *Arbiter) Active() string {
	return a.active
}

// Release clears the active window if it is id. No other window is picked.
func (a *Arbiter) Release(id string) bool {
	if a.active == "" || a.active != id {
		return false
	}
	a.active = ""
	return true
}

// ReleaseAll clears the active window
func (a *Arbiter) ReleaseAll() {
	a.active = ""
}
