package loop

// Throttle turns a host's presentation frames into simulation ticks: every
// divisor-th frame is a tick.
type Throttle struct {
	divisor uint64
	frames  uint64
}

// NewThrottle returns a throttle firing once per divisor frames.
// A divisor below 1 fires on every frame.
func NewThrottle(divisor int) *Throttle {
	if divisor < 1 {
		divisor = 1
	}
	return &Throttle{divisor: uint64(divisor)}
}

// Frame counts one host frame and reports whether it is a tick.
func (t *Throttle) Frame() bool {
	t.frames++
	return t.frames%t.divisor == 0
}

// Frames returns the number of host frames counted so far.
func (t *Throttle) Frames() uint64 {
	return t.frames
}

// TickRate returns the simulation rate for a host presenting frameRate
// frames per second.
func (t *Throttle) TickRate(frameRate float64) float64 {
	return frameRate / float64(t.divisor)
}
