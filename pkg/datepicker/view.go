package datepicker

import (
	"strconv"

	"golang.org/x/text/language"

	"github.com/go-drift/pickers/pkg/calendar"
	"github.com/go-drift/pickers/pkg/wheel"
)

// GridCells is the number of cells in the day grid: six Sunday-first weeks.
const GridCells = 42

// Snapshot is a copy of the state at one point in time.
type Snapshot struct {
	Locale                 language.Tag
	VisibleYear            int
	VisibleMonth           calendar.MonthInfo
	Selected               calendar.CalendarDate
	YearIndex              int
	MonthIndex             int
	MonthYearPickerVisible bool
}

// Snapshot returns the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Locale:                 s.locale,
		VisibleYear:            s.visibleYearLocked(),
		VisibleMonth:           s.months[s.visibleMonth],
		Selected:               s.selected,
		YearIndex:              s.yearWheel.Selected(),
		MonthIndex:             s.monthWheel.Selected(),
		MonthYearPickerVisible: s.pickerVisible,
	}
}

// Selected returns the selected date.
func (s *State) Selected() calendar.CalendarDate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Title returns the header text, the visible month name followed by the year.
func (s *State) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.months[s.visibleMonth].Name + " " + strconv.Itoa(s.visibleYearLocked())
}

// Years returns the selectable years in ascending order.
func (s *State) Years() []int {
	return append([]int(nil), s.years...)
}

// VisibleMonthRange returns the first and last day of the visible month.
func (s *State) VisibleMonthRange() (first, last calendar.CalendarDate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	y := s.visibleYearLocked()
	m := s.months[s.visibleMonth]
	return calendar.CalendarDate{Year: y, Month: m.Ordinal, Day: 1},
		calendar.CalendarDate{Year: y, Month: m.Ordinal, Day: m.DayCount}
}

// MonthWindow returns rows month labels around the month wheel selection.
func (s *State) MonthWindow(rows int) []wheel.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.monthWheel.Window(rows)
}

// YearWindow returns rows year labels around the year wheel selection.
func (s *State) YearWindow(rows int) []wheel.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.yearWheel.Window(rows)
}

// DayCell is one cell of the visible month's grid.
type DayCell struct {
	// Day is the day of month, or 0 for padding before the first or after
	// the last day.
	Day      int
	Date     calendar.CalendarDate
	Weekday  calendar.Weekday
	Selected bool
}

// DayCells lays out the visible month in GridCells Sunday-first cells.
func (s *State) DayCells() []DayCell {
	s.mu.Lock()
	defer s.mu.Unlock()

	y := s.visibleYearLocked()
	m := s.months[s.visibleMonth]
	cells := make([]DayCell, GridCells)
	for i := range cells {
		cells[i].Weekday = calendar.Weekday(i % 7)
		day := i - int(m.FirstWeekday) + 1
		if day < 1 || day > m.DayCount {
			continue
		}
		d := calendar.CalendarDate{Year: y, Month: m.Ordinal, Day: day}
		cells[i].Day = day
		cells[i].Date = d
		cells[i].Selected = d == s.selected
	}
	return cells
}

// WeekdayHeaders returns the short weekday names, Sunday first.
func (s *State) WeekdayHeaders() []string {
	s.mu.Lock()
	tag := s.locale
	s.mu.Unlock()
	out := make([]string, 0, 7)
	for _, w := range calendar.Weekdays() {
		out = append(out, w.ShortName(tag))
	}
	return out
}
