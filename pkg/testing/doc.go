// Package testing provides test helpers for the picker packages.
//
// # Controlling time
//
// [FakeClock] stands in for both the calendar clock and the debounce
// scheduler, so a test can pin the initial date and step through delayed
// re-centering deterministically:
//
//	clk := pickertest.NewFakeClockAt(time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC))
//	prev := calendar.SetClock(clk)
//	defer calendar.SetClock(prev)
//
//	s := datepicker.New(datepicker.WithScheduler(clk))
//	s.ToggleMonthYearPicker()
//	s.ToggleMonthYearPicker()
//	clk.Advance(datepicker.RecenterDelay)
//
// [PickerTester] does the pinning for you and drains pending work:
//
//	tester := pickertest.NewPickerTesterWithT(t)
//	p, _ := picker.NewDatePicker(picker.DateOptions{Scheduler: tester.Scheduler()})
//	p.Handle(picker.HeaderTapped{})
//	p.Handle(picker.HeaderTapped{})
//	tester.PumpAndSettle(time.Second)
//
// # Snapshots
//
// [CaptureSnapshot] turns a render model into indented JSON that can be
// diffed against another capture or a golden file:
//
//	pickertest.CaptureSnapshot(p.Render()).MatchesFile(t, "testdata/february.json")
//
// Set PICKERS_UPDATE_SNAPSHOTS=1 to rewrite golden files.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import pickertest "github.com/go-drift/pickers/pkg/testing"
package testing
