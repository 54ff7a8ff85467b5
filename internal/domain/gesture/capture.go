package gesture

// Capture is a host pointer listener held for the duration of a gesture
type Capture interface {
	Release()
}

// Capturer acquires pointer capture when a gesture starts
type Capturer interface {
	Acquire(kind Kind, windowID string) Capture
}

// CapturerFunc adapts a function to Capturer
type CapturerFunc func(kind Kind, windowID string) Capture

// Acquire calls f
func (f CapturerFunc) Acquire(kind Kind, windowID string) Capture {
	return f(kind, windowID)
}

// ReleaseFunc adapts a function to Capture
type ReleaseFunc func()

// Release calls f
func (f ReleaseFunc) Release() {
	f()
}

type noopCapturer struct{}

func (noopCapturer) Acquire(Kind, string) Capture { return ReleaseFunc(func() {}) }
