package testing

import (
	"testing"
	"time"

	"github.com/go-drift/pickers/pkg/calendar"
	"github.com/go-drift/pickers/pkg/schedule"
)

func TestNewPickerTester_PinsToday(t *testing.T) {
	tester := NewPickerTesterWithT(t)

	if tester.Clock() == nil {
		t.Fatal("expected fake clock to be set")
	}
	if got := calendar.Today(); got != calendar.MustDate(2024, 1, 10) {
		t.Errorf("Today() = %v", got)
	}
	if got := calendar.CurrentTime(); got != (calendar.ClockTime{Hour: 9, Minute: 30}) {
		t.Errorf("CurrentTime() = %v", got)
	}
}

func TestPickerTester_CleanupRestoresClock(t *testing.T) {
	tester := NewPickerTester()
	tester.Cleanup()

	if calendar.Now().Equal(DefaultTestTime) {
		t.Error("calendar clock still pinned after Cleanup")
	}
	if schedule.Dispatch(func() {}) {
		t.Error("dispatcher still registered after Cleanup")
	}
}

func TestPickerTester_SetNow(t *testing.T) {
	tester := NewPickerTesterWithT(t)
	tester.SetNow(time.Date(2030, time.December, 31, 23, 59, 0, 0, time.UTC))

	if got := calendar.Today(); got != calendar.MustDate(2030, 11, 31) {
		t.Errorf("Today() = %v", got)
	}
}

func TestPumpAndSettle_Idle(t *testing.T) {
	tester := NewPickerTesterWithT(t)

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Errorf("expected settle with nothing pending, got: %v", err)
	}
}

func TestPumpAndSettle_RunsTimers(t *testing.T) {
	tester := NewPickerTesterWithT(t)

	fired := false
	d := schedule.NewDebouncer(tester.Scheduler())
	d.Trigger(250*time.Millisecond, func() { fired = true })

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}
	if !fired {
		t.Error("timer did not fire")
	}
}

func TestPumpAndSettle_Timeout(t *testing.T) {
	tester := NewPickerTesterWithT(t)

	var reschedule func()
	reschedule = func() { tester.Clock().AfterFunc(time.Millisecond, reschedule) }
	reschedule()

	if err := tester.PumpAndSettle(100 * time.Millisecond); err != ErrSettleTimeout {
		t.Errorf("expected ErrSettleTimeout, got %v", err)
	}
}

func TestDispatch(t *testing.T) {
	tester := NewPickerTesterWithT(t)

	called := false
	if !schedule.Dispatch(func() { called = true }) {
		t.Fatal("dispatch not registered")
	}

	if called {
		t.Error("dispatch should not run until Pump")
	}

	tester.Pump()

	if !called {
		t.Error("dispatch should have run after Pump")
	}
}
