package tetris

import "time"

// Scheduler turns fixed-length platform frames into gravity ticks. It keeps
// an accumulator of elapsed frame time and releases one tick per elapsed
// interval, capped per frame so a tiny interval cannot stall the UI.
type Scheduler struct {
	frame    time.Duration
	interval time.Duration
	acc      time.Duration
	maxTicks int
}

// NewScheduler creates a scheduler for the given frame rate (frames per
// second) and initial gravity interval.
func NewScheduler(frameRate int, interval time.Duration, maxTicks int) *Scheduler {
	if frameRate <= 0 {
		frameRate = 60
	}
	s := &Scheduler{
		frame:    time.Second / time.Duration(frameRate),
		maxTicks: max(maxTicks, 1),
	}
	s.SetInterval(interval)
	return s
}

// SetInterval changes the gravity interval. Time already accumulated is kept,
// so shortening the interval takes effect on the next frame.
func (s *Scheduler) SetInterval(d time.Duration) {
	if d <= 0 {
		d = time.Nanosecond
	}
	s.interval = d
}

// Interval returns the current gravity interval.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Advance accounts for one frame and returns how many ticks are due.
// When the cap is hit the backlog is dropped.
func (s *Scheduler) Advance() int {
	s.acc += s.frame
	n := 0
	for s.acc >= s.interval && n < s.maxTicks {
		s.acc -= s.interval
		n++
	}
	if s.acc >= s.interval {
		s.acc = 0
	}
	return n
}

// Reset clears accumulated time.
func (s *Scheduler) Reset() {
	s.acc = 0
}
