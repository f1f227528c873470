package core

import "time"

// Clock supplies monotonic time readings and blocking sleeps.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock reads the OS clock. time.Now carries a monotonic reading, so
// differences between two Now values are immune to wall-clock jumps.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep blocks for d.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// FramePacer holds each frame to a fixed budget by sleeping whatever is left
// of it once the frame's work is done. Late frames are not made up.
type FramePacer struct {
	clock  Clock
	budget time.Duration
	start  time.Time
	last   time.Duration
}

// NewFramePacer constructs a FramePacer targeting the given frames per second.
func NewFramePacer(fps int, clock Clock) *FramePacer {
	if clock == nil {
		clock = SystemClock{}
	}
	fp := &FramePacer{clock: clock}
	fp.SetFPS(fps)
	return fp
}

// SetFPS changes the frame budget. Non-positive values fall back to 8 FPS.
func (f *FramePacer) SetFPS(fps int) {
	if fps <= 0 {
		fps = 8
	}
	f.budget = time.Second / time.Duration(fps)
}

// Budget returns the duration allotted to one frame.
func (f *FramePacer) Budget() time.Duration { return f.budget }

// Begin records the start of a frame.
func (f *FramePacer) Begin() {
	f.start = f.clock.Now()
}

// Finish measures the frame and sleeps the remainder of the budget. It
// returns the measured work time.
func (f *FramePacer) Finish() time.Duration {
	elapsed := f.clock.Now().Sub(f.start)
	f.last = elapsed
	if elapsed < f.budget {
		f.clock.Sleep(f.budget - elapsed)
	}
	return elapsed
}

// Last returns the work time measured by the previous Finish.
func (f *FramePacer) Last() time.Duration { return f.last }
