package timepicker

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

func newTestState(t *testing.T, at calendar.ClockTime, opts ...Option) (*State, *pickertest.FakeClock) {
	t.Helper()
	clk := pickertest.NewFakeClock()
	s, err := New(append([]Option{WithTime(at), WithScheduler(clk)}, opts...)...)
	if err != nil {
		t.Fatalf("New(%v): %v", at, err)
	}
	t.Cleanup(s.Dispose)
	return s, clk
}

func TestConstructionRoundsUp(t *testing.T) {
	tests := []struct {
		name string
		in   calendar.ClockTime
		step MinuteGranularity
		is24 bool
		want calendar.ClockTime
	}{
		{"already on a bucket", calendar.ClockTime{Hour: 5, Minute: 10}, Step5, false, calendar.ClockTime{Hour: 5, Minute: 10}},
		{"rounds up within the hour", calendar.ClockTime{Hour: 5, Minute: 7}, Step5, false, calendar.ClockTime{Hour: 5, Minute: 10}},
		{"crosses into next hour", calendar.ClockTime{Hour: 5, Minute: 58}, Step5, false, calendar.ClockTime{Hour: 6, Minute: 0}},
		{"crosses midnight", calendar.ClockTime{Hour: 23, Minute: 58}, Step5, false, calendar.ClockTime{Hour: 0, Minute: 0}},
		{"crosses midnight 24h", calendar.ClockTime{Hour: 23, Minute: 31}, Step30, true, calendar.ClockTime{Hour: 0, Minute: 0}},
		{"step one keeps minute", calendar.ClockTime{Hour: 14, Minute: 59}, Step1, true, calendar.ClockTime{Hour: 14, Minute: 59}},
		{"afternoon 12h", calendar.ClockTime{Hour: 13, Minute: 1}, Step15, false, calendar.ClockTime{Hour: 13, Minute: 15}},
		{"noon", calendar.ClockTime{Hour: 11, Minute: 55}, Step10, false, calendar.ClockTime{Hour: 12, Minute: 0}},
		{"midnight 12h", calendar.ClockTime{Hour: 0, Minute: 0}, Step5, false, calendar.ClockTime{Hour: 0, Minute: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestState(t, tt.in, WithGranularity(tt.step), With24Hour(tt.is24))
			if got := s.SelectedTime(); got != tt.want {
				t.Errorf("SelectedTime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoundTripProperty(t *testing.T) {
	steps := []MinuteGranularity{Step1, Step5, Step10, Step15, Step30}
	for _, is24 := range []bool{false, true} {
		for _, step := range steps {
			for h := 0; h < 24; h++ {
				for m := 0; m < 60; m++ {
					s, err := New(WithTime(calendar.ClockTime{Hour: h, Minute: m}), WithGranularity(step), With24Hour(is24))
					if err != nil {
						t.Fatal(err)
					}
					want := calendar.ClockTime{Hour: h, Minute: m}
					if m%int(step) != 0 {
						up := (m/int(step) + 1) * int(step)
						want = calendar.ClockTime{Hour: h, Minute: up % 60}
						if up >= 60 {
							want.Hour = (h + 1) % 24
						}
					}
					if got := s.SelectedTime(); got != want {
						t.Fatalf("24h=%v step=%d %02d:%02d -> %v, want %v", is24, step, h, m, got, want)
					}
				}
			}
		}
	}
}

func TestIndicesFromMiddle(t *testing.T) {
	s, _ := newTestState(t, calendar.ClockTime{Hour: 5, Minute: 7})
	snap := s.Snapshot()
	if snap.HourIndex != 12*100-1+5 {
		t.Errorf("HourIndex = %d", snap.HourIndex)
	}
	if snap.MinuteIndex != 12*100+2 {
		t.Errorf("MinuteIndex = %d", snap.MinuteIndex)
	}
	if snap.MeridiemIndex != AM {
		t.Errorf("MeridiemIndex = %d", snap.MeridiemIndex)
	}
	if items := s.HourWindow(1); items[0].Label != "5" {
		t.Errorf("hour label = %q", items[0].Label)
	}

	s24, _ := newTestState(t, calendar.ClockTime{Hour: 17, Minute: 45}, With24Hour(true), WithGranularity(Step15))
	snap = s24.Snapshot()
	if snap.HourIndex != 24*100+17 || snap.MinuteIndex != 4*100+3 {
		t.Errorf("24h indices = %d, %d", snap.HourIndex, snap.MinuteIndex)
	}
	if snap.MeridiemIndex != PM {
		t.Errorf("MeridiemIndex = %d, want PM", snap.MeridiemIndex)
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		in   calendar.ClockTime
		want error
	}{
		{calendar.ClockTime{Hour: 24, Minute: 0}, errors.ErrHourOutOfRange},
		{calendar.ClockTime{Hour: -1, Minute: 0}, errors.ErrHourOutOfRange},
		{calendar.ClockTime{Hour: 3, Minute: 60}, errors.ErrMinuteOutOfRange},
		{calendar.ClockTime{Hour: 3, Minute: -5}, errors.ErrMinuteOutOfRange},
	}
	for _, tt := range tests {
		_, err := New(WithTime(tt.in))
		if !errors.Is(err, tt.want) {
			t.Errorf("New(%v) err = %v, want %v", tt.in, err, tt.want)
		}
		var pe *errors.PickerError
		if errors.As(err, &pe) && pe.Kind != errors.KindValidation {
			t.Errorf("kind = %v", pe.Kind)
		}
	}

	if _, err := New(WithGranularity(7)); !errors.Is(err, errors.ErrInvalidStep) {
		t.Errorf("step 7 err = %v", err)
	}
}

func TestSetTimeRejectsWithoutMutation(t *testing.T) {
	s, _ := newTestState(t, calendar.ClockTime{Hour: 9, Minute: 15})
	before := s.Snapshot()
	if err := s.SetTime(calendar.ClockTime{Hour: 9, Minute: 75}); err == nil {
		t.Fatal("expected error")
	}
	if after := s.Snapshot(); after != before {
		t.Errorf("state changed: %+v -> %+v", before, after)
	}
}

func TestMeridiemToggleNetZero(t *testing.T) {
	s, _ := newTestState(t, calendar.ClockTime{Hour: 5, Minute: 10})

	if err := s.SelectMeridiemIndex(PM); err != nil {
		t.Fatal(err)
	}
	snap := s.Snapshot()
	if snap.HourOffset != 12 || snap.Time != (calendar.ClockTime{Hour: 17, Minute: 10}) {
		t.Errorf("after PM: offset %d time %v", snap.HourOffset, snap.Time)
	}

	if err := s.SelectMeridiemIndex(AM); err != nil {
		t.Fatal(err)
	}
	snap = s.Snapshot()
	if snap.HourOffset != 0 || snap.Time != (calendar.ClockTime{Hour: 5, Minute: 10}) {
		t.Errorf("after AM: offset %d time %v", snap.HourOffset, snap.Time)
	}

	if err := s.SelectMeridiemIndex(AM); err != nil {
		t.Fatal(err)
	}
	if s.Snapshot().HourOffset != 0 {
		t.Error("selecting the current meridiem changed the offset")
	}

	if err := s.SelectMeridiemIndex(2); !errors.Is(err, errors.ErrIndexOutOfRange) {
		t.Errorf("SelectMeridiemIndex(2) err = %v", err)
	}
}

func TestHourSelectionDerivesMeridiemAfterDelay(t *testing.T) {
	s, clk := newTestState(t, calendar.ClockTime{Hour: 11, Minute: 0})
	if err := s.SelectHourIndex(s.Snapshot().HourIndex + 1); err != nil { // "12"
		t.Fatal(err)
	}
	if got := s.SelectedTime(); got != (calendar.ClockTime{Hour: 0, Minute: 0}) {
		t.Errorf("before delay = %v, want 00:00", got)
	}

	clk.Advance(MeridiemDelay - time.Millisecond)
	if s.Snapshot().MeridiemIndex != AM {
		t.Error("meridiem changed before the delay")
	}
	clk.Advance(time.Millisecond)
	if got := s.SelectedTime(); got != (calendar.ClockTime{Hour: 12, Minute: 0}) {
		t.Errorf("after delay = %v, want 12:00", got)
	}
}

func TestLaterHourSelectionSupersedes(t *testing.T) {
	s, clk := newTestState(t, calendar.ClockTime{Hour: 11, Minute: 0})
	start := s.Snapshot().HourIndex

	_ = s.SelectHourIndex(start + 1) // "12", would flip to PM
	clk.Advance(100 * time.Millisecond)
	_ = s.SelectHourIndex(start) // back to "11"
	clk.Advance(time.Second)

	if got := s.SelectedTime(); got != (calendar.ClockTime{Hour: 11, Minute: 0}) {
		t.Errorf("SelectedTime() = %v, want 11:00", got)
	}
	if clk.Pending() != 0 {
		t.Errorf("%d tasks pending", clk.Pending())
	}
}

func TestHourSelectionHonorsOffset(t *testing.T) {
	s, clk := newTestState(t, calendar.ClockTime{Hour: 13, Minute: 0})
	if err := s.SelectMeridiemIndex(AM); err != nil {
		t.Fatal(err)
	}
	_ = s.SelectHourIndex(s.Snapshot().HourIndex + 1) // "2"
	clk.Advance(MeridiemDelay)

	if got := s.SelectedTime(); got != (calendar.ClockTime{Hour: 2, Minute: 0}) {
		t.Errorf("SelectedTime() = %v, want 02:00", got)
	}
}

func TestHourSelection24HourSchedulesNothing(t *testing.T) {
	s, clk := newTestState(t, calendar.ClockTime{Hour: 8, Minute: 0}, With24Hour(true))
	if err := s.SelectHourIndex(24*100 + 20); err != nil {
		t.Fatal(err)
	}
	if clk.Pending() != 0 {
		t.Errorf("%d tasks pending in 24-hour mode", clk.Pending())
	}
	if got := s.SelectedTime(); got.Hour != 20 {
		t.Errorf("hour = %d", got.Hour)
	}
	if err := s.SelectHourIndex(24 * 200); !errors.Is(err, errors.ErrIndexOutOfRange) {
		t.Errorf("out-of-range err = %v", err)
	}
}

func TestSelectMinuteIndex(t *testing.T) {
	s, _ := newTestState(t, calendar.ClockTime{Hour: 8, Minute: 0}, WithGranularity(Step15))
	if err := s.SelectMinuteIndex(4*137 + 3); err != nil {
		t.Fatal(err)
	}
	if got := s.SelectedTime(); got != (calendar.ClockTime{Hour: 8, Minute: 45}) {
		t.Errorf("SelectedTime() = %v", got)
	}
}

func TestSetLocaleKeepsIndicesAndOffset(t *testing.T) {
	s, _ := newTestState(t, calendar.ClockTime{Hour: 9, Minute: 30})
	_ = s.SelectMeridiemIndex(PM)
	before := s.Snapshot()

	s.SetLocale(language.Spanish)
	after := s.Snapshot()
	if after.HourIndex != before.HourIndex || after.MeridiemIndex != before.MeridiemIndex || after.HourOffset != before.HourOffset {
		t.Errorf("locale change moved the wheels: %+v -> %+v", before, after)
	}
	items := s.MeridiemItems()
	if items[0].Label != "a. m." || items[1].Label != "p. m." || !items[1].Selected {
		t.Errorf("meridiem items = %+v", items)
	}
}

func TestListenersAndDispose(t *testing.T) {
	s, clk := newTestState(t, calendar.ClockTime{Hour: 11, Minute: 0})
	calls := 0
	s.AddListener(func() { calls++ })

	_ = s.SelectHourIndex(s.Snapshot().HourIndex + 1)
	clk.Advance(MeridiemDelay)
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}

	_ = s.SelectHourIndex(s.Snapshot().HourIndex - 1)
	s.Dispose()
	clk.Advance(MeridiemDelay)
	if clk.Pending() != 0 || calls != 3 {
		t.Errorf("after Dispose: pending %d calls %d", clk.Pending(), calls)
	}
}

// firedScheduler holds the last task instead of timing it. Its cancel does
// nothing, like a timer that has already fired.
type firedScheduler struct{ task func() }

func (f *firedScheduler) AfterFunc(_ time.Duration, fn func()) schedule.Cancel {
	f.task = fn
	return func() {}
}

func TestSetTimeWinsOverMeridiemUpdateAlreadyFiring(t *testing.T) {
	sched := &firedScheduler{}
	s, _ := newTestState(t, calendar.ClockTime{Hour: 11, Minute: 0}, WithScheduler(sched))
	_ = s.SelectHourIndex(s.Snapshot().HourIndex + 1) // "12", would flip to PM

	s.mu.Lock()
	done := make(chan struct{})
	go func() {
		sched.task()
		close(done)
	}()
	for s.update.Pending() {
		runtime.Gosched()
	}
	if err := s.setTimeLocked("timepicker.SetTime", calendar.ClockTime{Hour: 11, Minute: 0}); err != nil {
		t.Error(err)
	}
	s.mu.Unlock()
	<-done

	if got := s.SelectedTime(); got != (calendar.ClockTime{Hour: 11, Minute: 0}) {
		t.Errorf("SelectedTime() = %v, want 11:00", got)
	}
}
