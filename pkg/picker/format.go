package picker

import (
	"strconv"
	"time"

	"golang.org/x/text/language"

	"github.com/go-drift/pickers/pkg/calendar"
)

// Time layouts understood by FormatTime.
const (
	Layout24       = "15:04"
	Layout12       = "3:04 PM"
	Layout12Padded = "03:04 PM"
)

// DefaultDateLayout is the Go time layout used by FormatDate when none is
// given.
const DefaultDateLayout = "Jan 2, 2006"

// FormatDate formats d with a Go time layout. An empty layout uses
// DefaultDateLayout.
func FormatDate(d calendar.CalendarDate, layout string) string {
	if layout == "" {
		layout = DefaultDateLayout
	}
	return d.Time(time.UTC).Format(layout)
}

// FormatTime formats t for display. layout is one of Layout24, Layout12 or
// Layout12Padded; any other value falls back to Layout24 when is24Hour is
// set and Layout12 otherwise. The meridiem label comes from tag.
func FormatTime(t calendar.ClockTime, layout string, is24Hour bool, tag language.Tag) string {
	meridiem := calendar.MeridiemNames(tag)
	ampm := meridiem[0]
	if t.Hour >= 12 {
		ampm = meridiem[1]
	}

	switch layout {
	case Layout24:
		return formatHourMinute24(t.Hour, t.Minute)
	case Layout12:
		return strconv.Itoa(hour12(t.Hour)) + ":" + padZero(t.Minute) + " " + ampm
	case Layout12Padded:
		return padZero(hour12(t.Hour)) + ":" + padZero(t.Minute) + " " + ampm
	}

	if is24Hour {
		return formatHourMinute24(t.Hour, t.Minute)
	}
	return strconv.Itoa(hour12(t.Hour)) + ":" + padZero(t.Minute) + " " + ampm
}

func formatHourMinute24(hour, minute int) string {
	return padZero(hour) + ":" + padZero(minute)
}

func hour12(h int) int {
	if h > 12 {
		h -= 12
	}
	if h == 0 {
		h = 12
	}
	return h
}

func padZero(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
