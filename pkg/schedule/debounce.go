package schedule

import (
	"sync"
	"time"
)

// Debouncer runs at most one pending task. Each Trigger bumps a generation
// counter and cancels the previous task; a task whose generation is no
// longer current is dropped even if its timer already fired, so the last
// write wins.
type Debouncer struct {
	mu         sync.Mutex
	sched      Scheduler
	generation uint64
	cancel     Cancel
}

// NewDebouncer returns a Debouncer backed by s. A nil s uses [Real].
func NewDebouncer(s Scheduler) *Debouncer {
	if s == nil {
		s = Real
	}
	return &Debouncer{sched: s}
}

// Trigger schedules fn to run after delay, superseding any pending task.
func (d *Debouncer) Trigger(delay time.Duration, fn func()) {
	d.Schedule(delay, func(uint64) { fn() })
}

// Schedule is like Trigger but passes fn the generation it was scheduled
// under, and returns it. A Stop can land after the timer fired but before
// fn runs, so callers that issue Schedule and Stop under their own lock
// must confirm the generation with Current under that lock before applying
// the task.
func (d *Debouncer) Schedule(delay time.Duration, fn func(gen uint64)) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.generation++
	gen := d.generation
	if d.cancel != nil {
		d.cancel()
	}
	d.cancel = d.sched.AfterFunc(delay, func() {
		d.mu.Lock()
		current := gen == d.generation
		if current {
			d.cancel = nil
		}
		d.mu.Unlock()
		if current {
			fn(gen)
		}
	})
	return gen
}

// Current reports whether gen is still the latest generation, that is, no
// Trigger, Schedule or Stop happened since the task for gen was scheduled.
func (d *Debouncer) Current(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return gen == d.generation
}

// Stop cancels the pending task, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.generation++
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

// Pending reports whether a task is scheduled and has not yet run.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancel != nil
}

// Generation returns the number of Trigger, Schedule and Stop calls so far.
func (d *Debouncer) Generation() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.generation
}
