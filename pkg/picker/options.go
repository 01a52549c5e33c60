package picker

import (
	"golang.org/x/text/language"

	"github.com/go-drift/pickers/pkg/calendar"
	"github.com/go-drift/pickers/pkg/schedule"
	"github.com/go-drift/pickers/pkg/timepicker"
)

// Default style values.
const (
	DefaultRows          = 7
	DefaultSelectedScale = 1.2
)

// Style holds the visual knobs that reach the render model. Zero values
// use the defaults.
type Style struct {
	// Rows is the number of wheel rows shown at once.
	Rows int

	// SelectedScale is the scale factor applied to the centered row.
	SelectedScale float64

	// UppercaseHeader upper-cases the date picker title.
	UppercaseHeader bool
}

func (s Style) resolved() Style {
	if s.Rows <= 0 {
		s.Rows = DefaultRows
	}
	if s.SelectedScale <= 0 {
		s.SelectedScale = DefaultSelectedScale
	}
	return s
}

// DateOptions configures a DatePicker.
type DateOptions struct {
	// Initial is the initially selected date. Nil means today.
	Initial *calendar.CalendarDate

	// Limiter gates which days can be tapped. Nil allows every day.
	Limiter *calendar.SelectionLimiter

	// Locale selects month and weekday names. The zero tag means English.
	Locale language.Tag

	Style Style

	// Scheduler runs the delayed month wheel re-centering. Nil uses
	// schedule.Real.
	Scheduler schedule.Scheduler

	// OnDateSelected is called once on mount with the initial date and
	// again after every day tap.
	OnDateSelected func(calendar.CalendarDate)

	// OnMonthPageChange is called with the first and last day of the
	// visible month on mount and whenever the visible month changes.
	OnMonthPageChange func(first, last calendar.CalendarDate)
}

type dateIdentity struct {
	initial calendar.CalendarDate
	hasInit bool
	limiter *calendar.SelectionLimiter
}

func (o DateOptions) identity() dateIdentity {
	id := dateIdentity{limiter: o.Limiter}
	if o.Initial != nil {
		id.initial, id.hasInit = *o.Initial, true
	}
	return id
}

// TimeOptions configures a TimePicker.
type TimeOptions struct {
	// Initial is the requested initial time. Nil means now. The minute is
	// rounded up to Granularity.
	Initial *calendar.ClockTime

	Is24Hour bool

	// Granularity is the minute step. Zero means timepicker.DefaultGranularity.
	Granularity timepicker.MinuteGranularity

	// Locale selects the meridiem labels. The zero tag means English.
	Locale language.Tag

	Style Style

	// Scheduler runs the delayed meridiem update. Nil uses schedule.Real.
	Scheduler schedule.Scheduler

	// OnTimeSelected is called once on mount with the rounded initial time
	// and again whenever a wheel settles.
	OnTimeSelected func(calendar.ClockTime)
}

type timeIdentity struct {
	initial     calendar.ClockTime
	hasInit     bool
	is24Hour    bool
	granularity timepicker.MinuteGranularity
}

func (o TimeOptions) identity() timeIdentity {
	id := timeIdentity{is24Hour: o.Is24Hour, granularity: o.Granularity}
	if o.Initial != nil {
		id.initial, id.hasInit = *o.Initial, true
	}
	return id
}

func localeOrDefault(tag language.Tag) language.Tag {
	if tag == language.Und {
		return language.English
	}
	return tag
}
