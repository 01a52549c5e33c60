package datepicker

import (
	"runtime"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/go-drift/pickers/pkg/calendar"
	"github.com/go-drift/pickers/pkg/errors"
	"github.com/go-drift/pickers/pkg/schedule"
	pickertest "github.com/go-drift/pickers/pkg/testing"
)

// newTestState pins "today" to 10 February 2024, so the year window is
// [1924, 2123].
func newTestState(t *testing.T, opts ...Option) (*State, *pickertest.FakeClock) {
	t.Helper()
	clk := pickertest.NewFakeClockAt(time.Date(2024, time.February, 10, 9, 30, 0, 0, time.UTC))
	prev := calendar.SetClock(clk)
	t.Cleanup(func() { calendar.SetClock(prev) })

	s, err := New(append([]Option{WithScheduler(clk)}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(s.Dispose)
	return s, clk
}

func TestNewStartsToday(t *testing.T) {
	s, _ := newTestState(t)
	snap := s.Snapshot()

	if snap.Selected != calendar.MustDate(2024, 1, 10) {
		t.Errorf("Selected = %v", snap.Selected)
	}
	if snap.VisibleYear != 2024 || snap.VisibleMonth.Ordinal != 1 {
		t.Errorf("visible = %d/%d", snap.VisibleYear, snap.VisibleMonth.Ordinal)
	}
	if snap.MonthYearPickerVisible {
		t.Error("month-year picker should start hidden")
	}
	if snap.YearIndex != YearWindow/2 {
		t.Errorf("YearIndex = %d, want %d", snap.YearIndex, YearWindow/2)
	}
	if snap.MonthIndex != 12*(MonthRepetition/2)+1 {
		t.Errorf("MonthIndex = %d, want centered February", snap.MonthIndex)
	}
	years := s.Years()
	if years[0] != 1924 || years[len(years)-1] != 2123 {
		t.Errorf("year window = [%d, %d]", years[0], years[len(years)-1])
	}
}

func TestNewRejectsInvalidInitialDate(t *testing.T) {
	clk := pickertest.NewFakeClockAt(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC))
	prev := calendar.SetClock(clk)
	defer calendar.SetClock(prev)

	tests := []struct {
		date calendar.CalendarDate
		want error
	}{
		{calendar.CalendarDate{Year: 1923, Month: 0, Day: 1}, errors.ErrYearOutOfRange},
		{calendar.CalendarDate{Year: 2124, Month: 0, Day: 1}, errors.ErrYearOutOfRange},
		{calendar.CalendarDate{Year: 2024, Month: 12, Day: 1}, errors.ErrMonthOutOfRange},
		{calendar.CalendarDate{Year: 2023, Month: 1, Day: 29}, errors.ErrDayOutOfRange},
		{calendar.CalendarDate{Year: 2024, Month: 3, Day: 0}, errors.ErrDayOutOfRange},
	}
	for _, tt := range tests {
		if _, err := New(WithDate(tt.date), WithScheduler(clk)); !errors.Is(err, tt.want) {
			t.Errorf("New(%v) err = %v, want %v", tt.date, err, tt.want)
		}
	}
}

func TestSetDateRejectsWithoutMutation(t *testing.T) {
	s, _ := newTestState(t)
	before := s.Snapshot()

	err := s.SetDate(calendar.CalendarDate{Year: 2024, Month: 3, Day: 31})
	if !errors.Is(err, errors.ErrDayOutOfRange) {
		t.Fatalf("err = %v", err)
	}
	if after := s.Snapshot(); after != before {
		t.Errorf("state changed on rejected SetDate: %+v -> %+v", before, after)
	}
}

func TestSetDate(t *testing.T) {
	s, _ := newTestState(t)
	if err := s.SetDate(calendar.MustDate(2030, 6, 4)); err != nil {
		t.Fatal(err)
	}
	snap := s.Snapshot()
	if snap.VisibleYear != 2030 || snap.VisibleMonth.Ordinal != 6 || snap.Selected.Day != 4 {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.YearIndex != 2030-1924 {
		t.Errorf("YearIndex = %d", snap.YearIndex)
	}
}

func TestSelectDayValidatesAgainstVisibleMonth(t *testing.T) {
	s, _ := newTestState(t)
	s.NextMonth() // March 2024
	if err := s.SelectDay(31); err != nil {
		t.Fatalf("SelectDay(31) in March: %v", err)
	}
	if got, want := s.Selected(), calendar.MustDate(2024, 2, 31); got != want {
		t.Errorf("Selected = %v, want %v", got, want)
	}

	s.NextMonth() // April 2024
	before := s.Selected()
	if err := s.SelectDay(31); !errors.Is(err, errors.ErrDayOutOfRange) {
		t.Fatalf("SelectDay(31) in April err = %v", err)
	}
	if s.Selected() != before {
		t.Error("rejected SelectDay changed the selection")
	}
}

// The state does not consult a limiter: a day the limiter rejects can still
// be selected through SelectDay. The picker controller is what gates taps.
func TestSelectDayIgnoresLimiter(t *testing.T) {
	s, _ := newTestState(t)
	limiter := calendar.NewLimiter(calendar.WithLowerBound(calendar.MustDate(2024, 1, 20)))

	if limiter.IsSelectable(calendar.MustDate(2024, 1, 5)) {
		t.Fatal("precondition: 5 February should be disabled")
	}
	if err := s.SelectDay(5); err != nil {
		t.Fatalf("SelectDay(5): %v", err)
	}
	if s.Selected() != calendar.MustDate(2024, 1, 5) {
		t.Errorf("Selected = %v", s.Selected())
	}
}

func TestAdvanceMonthTwelveTimesAddsAYear(t *testing.T) {
	s, _ := newTestState(t)
	for start := 0; start < 12; start++ {
		if err := s.SetDate(calendar.MustDate(2024, start, 1)); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 12; i++ {
			if !s.NextMonth() {
				t.Fatalf("NextMonth %d from month %d failed", i, start)
			}
		}
		snap := s.Snapshot()
		if snap.VisibleMonth.Ordinal != start || snap.VisibleYear != 2025 {
			t.Errorf("from month %d: visible %d/%d", start, snap.VisibleYear, snap.VisibleMonth.Ordinal)
		}
		if snap.MonthIndex != 12*(MonthRepetition/2)+start {
			t.Errorf("from month %d: MonthIndex = %d", start, snap.MonthIndex)
		}
	}
}

func TestAdvanceMonthStopsAtCeiling(t *testing.T) {
	s, _ := newTestState(t)
	if err := s.SetDate(calendar.MustDate(2123, 0, 15)); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 11; i++ {
		if !s.NextMonth() {
			t.Fatalf("NextMonth %d failed before December", i)
		}
	}
	eleventh := s.Snapshot()
	if eleventh.VisibleMonth.Ordinal != 11 {
		t.Fatalf("expected December, got %d", eleventh.VisibleMonth.Ordinal)
	}
	if s.NextMonth() {
		t.Error("12th NextMonth should be a no-op at the ceiling")
	}
	if got := s.Snapshot(); got != eleventh {
		t.Errorf("state changed: %+v -> %+v", eleventh, got)
	}
}

func TestPreviousMonthRollsAndStopsAtFloor(t *testing.T) {
	s, _ := newTestState(t)
	if err := s.SetDate(calendar.MustDate(1925, 0, 1)); err != nil {
		t.Fatal(err)
	}
	if !s.PreviousMonth() {
		t.Fatal("PreviousMonth from January 1925 should roll to December 1924")
	}
	snap := s.Snapshot()
	if snap.VisibleYear != 1924 || snap.VisibleMonth.Ordinal != 11 {
		t.Errorf("visible = %d/%d", snap.VisibleYear, snap.VisibleMonth.Ordinal)
	}
	if moved := s.AdvanceMonth(-20); moved != -11 {
		t.Errorf("AdvanceMonth(-20) moved %d, want -11", moved)
	}
	if s.PreviousMonth() {
		t.Error("PreviousMonth at January 1924 should be a no-op")
	}
}

func TestNavigationKeepsSelection(t *testing.T) {
	s, _ := newTestState(t)
	s.AdvanceMonth(3)
	if s.Selected() != calendar.MustDate(2024, 1, 10) {
		t.Errorf("navigation changed selection to %v", s.Selected())
	}
}

func TestJumpToYearIndexKeepsMonth(t *testing.T) {
	s, _ := newTestState(t)
	if err := s.JumpToYearIndex(0); err != nil {
		t.Fatal(err)
	}
	snap := s.Snapshot()
	if snap.VisibleYear != 1924 || snap.VisibleMonth.Ordinal != 1 {
		t.Errorf("visible = %d/%d", snap.VisibleYear, snap.VisibleMonth.Ordinal)
	}
	if snap.VisibleMonth.DayCount != 29 {
		t.Errorf("February 1924 day count = %d, want 29", snap.VisibleMonth.DayCount)
	}
	if err := s.JumpToYearIndex(YearWindow); !errors.Is(err, errors.ErrIndexOutOfRange) {
		t.Errorf("JumpToYearIndex(out of range) err = %v", err)
	}
}

func TestJumpToMonthIndexWhileHidden(t *testing.T) {
	s, _ := newTestState(t)
	if err := s.JumpToMonthIndex(12*150 + 8); err != nil {
		t.Fatal(err)
	}
	snap := s.Snapshot()
	if snap.VisibleMonth.Ordinal != 8 {
		t.Errorf("visible month = %d, want 8", snap.VisibleMonth.Ordinal)
	}
	if snap.MonthIndex != 12*(MonthRepetition/2)+8 {
		t.Errorf("MonthIndex = %d, want centered", snap.MonthIndex)
	}
}

func TestToggleHideRecentersAfterDelay(t *testing.T) {
	s, clk := newTestState(t)
	s.ToggleMonthYearPicker()
	if !s.Snapshot().MonthYearPickerVisible {
		t.Fatal("expected picker visible")
	}

	drifted := 12*160 + 4
	if err := s.JumpToMonthIndex(drifted); err != nil {
		t.Fatal(err)
	}
	if s.Snapshot().MonthIndex != drifted {
		t.Fatalf("open wheel should keep the scrolled index")
	}

	s.ToggleMonthYearPicker()
	if s.Snapshot().MonthYearPickerVisible {
		t.Fatal("expected picker hidden")
	}
	if s.Snapshot().MonthIndex != drifted {
		t.Error("re-centering must wait for the delay")
	}

	clk.Advance(RecenterDelay - time.Millisecond)
	if s.Snapshot().MonthIndex != drifted {
		t.Error("re-centered too early")
	}
	clk.Advance(time.Millisecond)
	if got, want := s.Snapshot().MonthIndex, 12*(MonthRepetition/2)+4; got != want {
		t.Errorf("MonthIndex = %d, want %d", got, want)
	}
}

func TestToggleShowCancelsPendingRecenter(t *testing.T) {
	s, clk := newTestState(t)
	s.ToggleMonthYearPicker() // show
	drifted := 12*170 + 2
	_ = s.JumpToMonthIndex(drifted)
	s.ToggleMonthYearPicker() // hide, schedules re-center
	s.ToggleMonthYearPicker() // show again before it fires

	clk.Advance(time.Second)
	if s.Snapshot().MonthIndex != drifted {
		t.Errorf("stale re-center moved the open wheel to %d", s.Snapshot().MonthIndex)
	}
	if clk.Pending() != 0 {
		t.Errorf("%d tasks still pending", clk.Pending())
	}
}

func TestListenersSeeDelayedChanges(t *testing.T) {
	s, clk := newTestState(t)
	calls := 0
	remove := s.AddListener(func() { calls++ })

	s.ToggleMonthYearPicker()
	s.ToggleMonthYearPicker()
	clk.Advance(RecenterDelay)
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}

	remove()
	s.NextMonth()
	if calls != 3 {
		t.Error("removed listener was called")
	}
}

func TestSetLocaleKeepsPositions(t *testing.T) {
	s, _ := newTestState(t)
	s.ToggleMonthYearPicker()
	_ = s.JumpToMonthIndex(12*130 + 2)
	before := s.Snapshot()

	s.SetLocale(language.German)
	after := s.Snapshot()
	if after.MonthIndex != before.MonthIndex || after.YearIndex != before.YearIndex || after.Selected != before.Selected {
		t.Errorf("locale change moved the wheels: %+v -> %+v", before, after)
	}
	if after.VisibleMonth.Name != "März" {
		t.Errorf("visible month name = %q", after.VisibleMonth.Name)
	}
	if got := s.Title(); got != "März 2024" {
		t.Errorf("Title() = %q", got)
	}
	if items := s.MonthWindow(1); items[0].Label != "März" {
		t.Errorf("month wheel label = %q", items[0].Label)
	}
}

// firedScheduler holds the last task instead of timing it. Its cancel does
// nothing, like a timer that has already fired.
type firedScheduler struct{ task func() }

func (f *firedScheduler) AfterFunc(_ time.Duration, fn func()) schedule.Cancel {
	f.task = fn
	return func() {}
}

func TestShowWinsOverRecenterAlreadyFiring(t *testing.T) {
	sched := &firedScheduler{}
	s, _ := newTestState(t, WithScheduler(sched))
	s.ToggleMonthYearPicker()
	drifted := 12*170 + 2
	_ = s.JumpToMonthIndex(drifted)
	s.ToggleMonthYearPicker()

	// Let the fired task pass the debouncer while the state is locked,
	// then show the sub-picker again before the task can apply.
	s.mu.Lock()
	done := make(chan struct{})
	go func() {
		sched.task()
		close(done)
	}()
	for s.recenter.Pending() {
		runtime.Gosched()
	}
	s.recenter.Stop()
	s.pickerVisible = true
	s.mu.Unlock()
	<-done

	snap := s.Snapshot()
	if !snap.MonthYearPickerVisible || snap.MonthIndex != drifted {
		t.Errorf("stale re-center applied: visible %v index %d", snap.MonthYearPickerVisible, snap.MonthIndex)
	}
}
