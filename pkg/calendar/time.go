package calendar

import (
	"fmt"
	"time"

	"github.com/go-drift/pickers/pkg/errors"
)

// ClockTime is a time of day on a 24-hour clock.
type ClockTime struct {
	Hour   int
	Minute int
}

// NewTime validates the fields and returns the time.
func NewTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 {
		return ClockTime{}, errors.Invalid("calendar.NewTime", errors.ErrHourOutOfRange, "hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return ClockTime{}, errors.Invalid("calendar.NewTime", errors.ErrMinuteOutOfRange, "minute", minute, 0, 59)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

// CurrentTime returns the current time of day from the package clock.
func CurrentTime() ClockTime {
	return ClockFromTime(Now())
}

// ClockFromTime returns the hour and minute of t in t's location.
func ClockFromTime(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}
}

// ClockFromMillis interprets ms as milliseconds since the Unix epoch in
// the local time zone.
func ClockFromMillis(ms int64) ClockTime {
	return ClockFromTime(time.UnixMilli(ms).In(time.Local))
}

// ParseClock parses "15:04".
func ParseClock(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, err
	}
	return ClockFromTime(t), nil
}

// On returns the instant of c on date d in loc. A nil loc means UTC.
func (c ClockTime) On(d CalendarDate, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, time.Month(d.Month+1), d.Day, c.Hour, c.Minute, 0, 0, loc)
}

// AddHours returns c moved by n hours, wrapping around midnight.
func (c ClockTime) AddHours(n int) ClockTime {
	return c.AddMinutes(n * 60)
}

// AddMinutes returns c moved by n minutes, wrapping around midnight.
func (c ClockTime) AddMinutes(n int) ClockTime {
	total := floorMod(c.Hour*60+c.Minute+n, 24*60)
	return ClockTime{Hour: total / 60, Minute: total % 60}
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
