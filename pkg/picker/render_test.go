package picker

import (
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/go-drift/pickers/pkg/calendar"
	pickertest "github.com/go-drift/pickers/pkg/testing"
	"github.com/go-drift/pickers/pkg/timepicker"
)

func TestDateRenderRestoredAfterSubPickerRoundTrip(t *testing.T) {
	tester := pickertest.NewPickerTesterWithT(t)
	p, err := NewDatePicker(DateOptions{Scheduler: tester.Scheduler()})
	if err != nil {
		t.Fatal(err)
	}
	defer p.Dispose()
	p.Mount()

	before := pickertest.CaptureSnapshot(p.Render())

	_ = p.Handle(HeaderTapped{})
	month := p.State().Snapshot().MonthIndex
	if err := p.Handle(DragSettled{Wheel: WheelMonth, Index: month + 12}); err != nil {
		t.Fatal(err)
	}
	open := pickertest.CaptureSnapshot(p.Render())
	if open.Diff(before) == "" {
		t.Fatal("render did not change with the sub-picker open")
	}

	_ = p.Handle(HeaderTapped{})
	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}

	if diff := pickertest.CaptureSnapshot(p.Render()).Diff(before); diff != "" {
		t.Errorf("render not restored:\n%s", diff)
	}
}

func TestDateRenderLocaleOnlyChangesLabels(t *testing.T) {
	tester := pickertest.NewPickerTesterWithT(t)
	initial := calendar.MustDate(2024, 2, 5)

	render := func(tag language.Tag) DateRender {
		p, err := NewDatePicker(DateOptions{Initial: &initial, Locale: tag, Scheduler: tester.Scheduler()})
		if err != nil {
			t.Fatal(err)
		}
		defer p.Dispose()
		return p.Render()
	}
	en, de := render(language.English), render(language.German)

	if pickertest.CaptureSnapshot(en.Days).Diff(pickertest.CaptureSnapshot(de.Days)) != "" {
		t.Error("day grid depends on locale")
	}
	if en.Title == de.Title || en.Months[len(en.Months)/2].Index != de.Months[len(de.Months)/2].Index {
		t.Errorf("titles %q %q, months %+v %+v", en.Title, de.Title, en.Months, de.Months)
	}
}

func TestTimeRenderRestoredAfterMeridiemToggle(t *testing.T) {
	tester := pickertest.NewPickerTesterWithT(t)
	p, err := NewTimePicker(TimeOptions{Scheduler: tester.Scheduler()})
	if err != nil {
		t.Fatal(err)
	}
	defer p.Dispose()
	p.Mount()

	before := pickertest.CaptureSnapshot(p.Render())
	if err := p.Handle(ItemTapped{Wheel: WheelMeridiem, Index: timepicker.PM}); err != nil {
		t.Fatal(err)
	}
	if err := p.Handle(ItemTapped{Wheel: WheelMeridiem, Index: timepicker.AM}); err != nil {
		t.Fatal(err)
	}
	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}

	if diff := pickertest.CaptureSnapshot(p.Render()).Diff(before); diff != "" {
		t.Errorf("render not restored:\n%s", diff)
	}
}

func TestTimeRenderGolden(t *testing.T) {
	tester := pickertest.NewPickerTesterWithT(t)
	p, err := NewTimePicker(TimeOptions{
		Initial:     &calendar.ClockTime{Hour: 9, Minute: 27},
		Granularity: timepicker.Step5,
		Locale:      language.English,
		Scheduler:   tester.Scheduler(),
	})
	if err != nil {
		t.Fatal(err)
	}
	defer p.Dispose()

	pickertest.CaptureSnapshot(p.Render()).MatchesFile(t, "testdata/time_0930_12h.json")
}
