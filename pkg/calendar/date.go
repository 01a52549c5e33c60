package calendar

import (
	"fmt"
	"time"

	"github.com/go-drift/pickers/pkg/errors"
)

// DateLayout is the textual form accepted by [ParseDate] and produced by
// [CalendarDate.String].
const DateLayout = "2006-01-02"

// CalendarDate is a calendar day without a time-of-day component.
// Month is zero based (0 = January).
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// NewDate validates the fields and returns the date.
func NewDate(year, month, day int) (CalendarDate, error) {
	if month < 0 || month > 11 {
		return CalendarDate{}, errors.Invalid("calendar.NewDate", errors.ErrMonthOutOfRange, "month", month, 0, 11)
	}
	n := DaysIn(year, month)
	if day < 1 || day > n {
		return CalendarDate{}, errors.InvalidDetail("calendar.NewDate", errors.ErrDayOutOfRange, "day", day, 1, n,
			fmt.Sprintf("for %s %d", time.Month(month+1), year))
	}
	return CalendarDate{Year: year, Month: month, Day: day}, nil
}

// MustDate is like NewDate but panics on invalid input.
// It is intended for literals in tests and examples.
func MustDate(year, month, day int) CalendarDate {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// Today returns the current date from the package clock.
func Today() CalendarDate {
	return FromTime(Now())
}

// FromTime returns the calendar day of t in t's location.
func FromTime(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: int(m) - 1, Day: d}
}

// FromMillis interprets ms as milliseconds since the Unix epoch in the
// local time zone.
func FromMillis(ms int64) CalendarDate {
	return FromTime(time.UnixMilli(ms).In(time.Local))
}

// ParseDate parses a date in [DateLayout] form.
func ParseDate(s string) (CalendarDate, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return CalendarDate{}, err
	}
	return FromTime(t), nil
}

// Time returns midnight of d in loc. A nil loc means UTC.
func (d CalendarDate) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, time.Month(d.Month+1), d.Day, 0, 0, 0, 0, loc)
}

// Millis returns local midnight of d as milliseconds since the Unix epoch.
func (d CalendarDate) Millis() int64 {
	return d.Time(time.Local).UnixMilli()
}

// Valid reports whether d names a real day.
func (d CalendarDate) Valid() bool {
	return d.Month >= 0 && d.Month <= 11 && d.Day >= 1 && d.Day <= DaysIn(d.Year, d.Month)
}

// Compare orders dates by (year, month, day). It returns -1, 0 or +1.
func (d CalendarDate) Compare(o CalendarDate) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(d.Month - o.Month)
	default:
		return sign(d.Day - o.Day)
	}
}

// Before reports whether d is strictly earlier than o.
func (d CalendarDate) Before(o CalendarDate) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o.
func (d CalendarDate) After(o CalendarDate) bool { return d.Compare(o) > 0 }

// Weekday returns the day of the week of d.
func (d CalendarDate) Weekday() Weekday {
	return weekdayOf(d.Year, d.Month, d.Day)
}

// AddDays returns d moved by n days.
func (d CalendarDate) AddDays(n int) CalendarDate {
	return FromTime(time.Date(d.Year, time.Month(d.Month+1), d.Day+n, 12, 0, 0, 0, time.UTC))
}

// AddMonths returns d moved by n months. The day is clamped to the length
// of the target month, so 31 January plus one month is the last day of
// February.
func (d CalendarDate) AddMonths(n int) CalendarDate {
	total := d.Year*12 + d.Month + n
	y, m := floorDiv(total, 12), floorMod(total, 12)
	return CalendarDate{Year: y, Month: m, Day: min(d.Day, DaysIn(y, m))}
}

// AddYears returns d moved by n years, clamping 29 February to the 28th in
// common years.
func (d CalendarDate) AddYears(n int) CalendarDate {
	y := d.Year + n
	return CalendarDate{Year: y, Month: d.Month, Day: min(d.Day, DaysIn(y, d.Month))}
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month+1, d.Day)
}

// IsLeapYear reports whether year has a 29 February.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysIn returns the number of days in the zero-based month of year.
// It returns 0 for a month outside [0, 11].
func DaysIn(year, month int) int {
	if month < 0 || month > 11 {
		return 0
	}
	if month == 1 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month]
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
