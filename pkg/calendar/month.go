package calendar

import "golang.org/x/text/language"

// Weekday is a day of the week, Sunday first.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// ShortName returns the abbreviated name of w for tag.
func (w Weekday) ShortName(tag language.Tag) string {
	return NamesFor(tag).WeekdaysShort[w.index()]
}

// LongName returns the full name of w for tag.
func (w Weekday) LongName(tag language.Tag) string {
	return NamesFor(tag).WeekdaysLong[w.index()]
}

func (w Weekday) String() string {
	return w.LongName(language.English)
}

func (w Weekday) index() int {
	return floorMod(int(w), 7)
}

// MonthInfo describes one month of a given year.
type MonthInfo struct {
	Name         string
	DayCount     int
	FirstWeekday Weekday
	Ordinal      int
}

// MonthsOf returns the months of year in calendar order with names for tag.
func MonthsOf(year int, tag language.Tag) [12]MonthInfo {
	names := NamesFor(tag)
	var months [12]MonthInfo
	for m := range months {
		months[m] = MonthInfo{
			Name:         names.Months[m],
			DayCount:     DaysIn(year, m),
			FirstWeekday: weekdayOf(year, m, 1),
			Ordinal:      m,
		}
	}
	return months
}

// Weekdays returns the seven weekdays starting at Sunday.
func Weekdays() [7]Weekday {
	return [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

var sakamoto = [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// weekdayOf computes the proleptic Gregorian weekday of a zero-based
// (year, month, day).
func weekdayOf(year, month, day int) Weekday {
	if month < 2 {
		year--
	}
	w := year + floorDiv(year, 4) - floorDiv(year, 100) + floorDiv(year, 400) + sakamoto[month] + day
	return Weekday(floorMod(w, 7))
}
