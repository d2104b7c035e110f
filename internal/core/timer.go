package core

import "time"

// Clock returns the current time. Tests substitute a manual clock.
type Clock func() time.Time

// FixedStep accumulates elapsed wall time and releases one step per interval.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         Clock
}

// NewFixedStep constructs a FixedStep that fires every interval.
func NewFixedStep(interval time.Duration, now Clock) *FixedStep {
	if now == nil {
		now = time.Now
	}
	fs := &FixedStep{now: now}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the step length. Non-positive values fall back to 100ms.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	f.step = interval
}

// ShouldStep reports whether a full interval has elapsed since the last step.
// At most one step is released per call so a stalled loop does not burst.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}

// Scheduler runs repeating jobs from its owner's loop. Jobs only fire inside
// Advance, so they never race with the owner's other work.
type Scheduler struct {
	now  Clock
	jobs []*Interval
}

// NewScheduler creates a scheduler reading time from now (time.Now when nil).
func NewScheduler(now Clock) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{now: now}
}

// Interval is the handle of a repeating job.
type Interval struct {
	step    *FixedStep
	fn      func()
	stopped bool
}

// Every registers fn to run once per interval, starting one interval from now.
func (s *Scheduler) Every(interval time.Duration, fn func()) *Interval {
	iv := &Interval{step: NewFixedStep(interval, s.now), fn: fn}
	iv.step.ShouldStep()
	s.jobs = append(s.jobs, iv)
	return iv
}

// Advance runs every job whose interval has elapsed and forgets stopped ones.
// Jobs registered by a running job start on the next Advance.
func (s *Scheduler) Advance() {
	jobs := s.jobs
	s.jobs = nil
	for _, iv := range jobs {
		if !iv.stopped && iv.step.ShouldStep() {
			iv.fn()
		}
	}
	live := make([]*Interval, 0, len(jobs)+len(s.jobs))
	for _, iv := range append(jobs, s.jobs...) {
		if !iv.stopped {
			live = append(live, iv)
		}
	}
	s.jobs = live
}

// Active counts the registered jobs that have not been stopped.
func (s *Scheduler) Active() int {
	n := 0
	for _, iv := range s.jobs {
		if !iv.stopped {
			n++
		}
	}
	return n
}

// Stop cancels the job. Stopping twice is harmless.
func (iv *Interval) Stop() { iv.stopped = true }

// Stopped reports whether Stop was called.
func (iv *Interval) Stopped() bool { return iv.stopped }
