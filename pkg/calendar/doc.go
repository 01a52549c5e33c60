// Package calendar provides the value types and lookup tables shared by the
// date and time pickers.
//
// # Value types
//
// [CalendarDate] is a time-zone-naive (year, month, day) triple with a
// zero-based month, matching the month ordinals used by the month wheel.
// [ClockTime] is an (hour, minute) pair on a 24-hour clock. Both are
// immutable; their constructors reject out-of-range fields instead of
// normalizing them:
//
//	d, err := calendar.NewDate(2024, 1, 29) // 29 February 2024
//	if err != nil {
//	    return err
//	}
//	next := d.AddMonths(1) // 29 March 2024
//
// # Month tables
//
// [MonthsOf] produces the twelve [MonthInfo] entries for a year with their
// day counts and the weekday of the first day. Names are resolved through
// a small built-in table selected by a BCP 47 tag:
//
//	for _, m := range calendar.MonthsOf(2024, language.German) {
//	    fmt.Println(m.Name, m.DayCount, m.FirstWeekday.ShortName(language.German))
//	}
//
// # Selection limits
//
// [SelectionLimiter] decides whether a date may be chosen. It is policy only;
// the pickers consult it before they mutate their selection.
package calendar
