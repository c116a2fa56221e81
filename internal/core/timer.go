package core

// FrameCounter gates an update so it runs once every n frames.
type FrameCounter struct {
	every     int
	remaining int
}

// NewFrameCounter constructs a counter that fires on every n-th frame.
func NewFrameCounter(n int) *FrameCounter {
	fc := &FrameCounter{}
	fc.SetEvery(n)
	return fc
}

// SetEvery changes the frame interval and re-arms the countdown.
func (f *FrameCounter) SetEvery(n int) {
	if n <= 0 {
		n = 1
	}
	f.every = n
	f.remaining = n
}

// Every returns the configured frame interval.
func (f *FrameCounter) Every() int { return f.every }

// Remaining returns how many frames are left before the next firing.
func (f *FrameCounter) Remaining() int { return f.remaining }

// Advance counts one frame and reports whether the update is due.
func (f *FrameCounter) Advance() bool {
	f.remaining--
	if f.remaining > 0 {
		return false
	}
	f.remaining = f.every
	return true
}
