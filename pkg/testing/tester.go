package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/pickers/pkg/calendar"
	"github.com/go-drift/pickers/pkg/schedule"
)

// DefaultTestTime is the instant a PickerTester pins "now" to: Saturday
// 10 February 2024, 09:30 UTC.
var DefaultTestTime = time.Date(2024, time.February, 10, 9, 30, 0, 0, time.UTC)

// FrameDuration is how far PumpAndSettle advances the clock per frame.
const FrameDuration = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: pickers did not settle")

// PickerTester provides an isolated environment for picker tests. It pins
// the calendar clock to a FakeClock, which also serves as the scheduler for
// delayed work, and queues callbacks posted through schedule.Dispatch until
// the next Pump.
type PickerTester struct {
	clock      *FakeClock
	prevClock  calendar.Clock
	dispatches []func()
}

// NewPickerTester creates a tester with the clock at DefaultTestTime.
// Call Cleanup when done, or use NewPickerTesterWithT instead.
func NewPickerTester() *PickerTester {
	clk := NewFakeClockAt(DefaultTestTime)
	t := &PickerTester{clock: clk}
	t.prevClock = calendar.SetClock(clk)
	schedule.RegisterDispatch(t.Dispatch)
	return t
}

// NewPickerTesterWithT creates a tester that cleans up via t.Cleanup.
func NewPickerTesterWithT(t *testing.T) *PickerTester {
	tester := NewPickerTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the calendar clock and the dispatcher.
func (t *PickerTester) Cleanup() {
	calendar.SetClock(t.prevClock)
	schedule.RegisterDispatch(nil)
}

// Clock returns the fake clock for advancing time in tests.
func (t *PickerTester) Clock() *FakeClock {
	return t.clock
}

// Scheduler returns the scheduler pickers under test should use.
func (t *PickerTester) Scheduler() schedule.Scheduler {
	return t.clock
}

// SetNow moves the clock to now. Pickers created afterwards treat its date
// as today.
func (t *PickerTester) SetNow(now time.Time) {
	t.clock.Set(now)
}

// Dispatch queues a callback for the next Pump.
func (t *PickerTester) Dispatch(fn func()) {
	t.dispatches = append(t.dispatches, fn)
}

// Pump runs the callbacks queued by Dispatch.
func (t *PickerTester) Pump() {
	dispatches := t.dispatches
	t.dispatches = nil
	for _, fn := range dispatches {
		fn()
	}
}

// PumpAndSettle pumps and advances the clock by FrameDuration until no
// dispatches or timers are pending. It returns ErrSettleTimeout if that
// takes longer than timeout.
func (t *PickerTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.Pump()
		if !t.needsWork() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

func (t *PickerTester) needsWork() bool {
	return len(t.dispatches) > 0 || t.clock.Pending() > 0
}
