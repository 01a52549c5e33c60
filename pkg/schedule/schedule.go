// Package schedule runs the short, fire-and-forget delays used by the
// pickers: letting a wheel settle before a derived index is recomputed, and
// re-centering a wheel after it is hidden.
//
// Delayed work is posted back to the UI thread through the function
// registered with [RegisterDispatch]. A [Debouncer] guarantees that only
// the most recently scheduled task runs.
package schedule

import (
	"sync"
	"time"
)

// Cancel stops a scheduled task. Calling it after the task ran is a no-op.
type Cancel func()

// Scheduler runs fn once after d elapses. Implementations must not run fn
// synchronously from within AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Cancel
}

// Real is the wall-clock scheduler. Tasks fire on a timer goroutine and are
// handed to the registered dispatcher, or run on the timer goroutine when
// none is registered.
var Real Scheduler = realScheduler{}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, fn func()) Cancel {
	t := time.AfterFunc(d, func() {
		if !Dispatch(fn) {
			fn()
		}
	})
	return func() { t.Stop() }
}

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// RegisterDispatch sets the function used to run scheduled callbacks on the
// UI thread. Pass nil to run callbacks on the timer goroutine.
func RegisterDispatch(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// Dispatch schedules a callback to run on the UI thread.
// Returns true if the callback was handed off, false if no dispatch function
// is registered or the callback is nil.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}
