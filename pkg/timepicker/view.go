package timepicker

import (
	"golang.org/x/text/language"

	"github.com/go-drift/pickers/pkg/calendar"
	"github.com/go-drift/pickers/pkg/wheel"
)

// Snapshot is a copy of the state at one point in time.
type Snapshot struct {
	Locale        language.Tag
	Is24Hour      bool
	Granularity   MinuteGranularity
	Time          calendar.ClockTime
	HourIndex     int
	MinuteIndex   int
	MeridiemIndex int
	HourOffset    int
}

// Snapshot returns the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Locale:        s.locale,
		Is24Hour:      s.is24Hour,
		Granularity:   s.granularity,
		Time:          s.selectedTimeLocked(),
		HourIndex:     s.hours.Selected(),
		MinuteIndex:   s.minutes.Selected(),
		MeridiemIndex: s.meridiem.Selected(),
		HourOffset:    s.offset,
	}
}

// Is24Hour reports whether the meridiem wheel is hidden.
func (s *State) Is24Hour() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.is24Hour
}

// HourWindow returns rows hour labels around the hour wheel selection.
func (s *State) HourWindow(rows int) []wheel.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hours.Window(rows)
}

// MinuteWindow returns rows minute labels around the minute wheel
// selection.
func (s *State) MinuteWindow(rows int) []wheel.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.minutes.Window(rows)
}

// MeridiemItems returns both meridiem labels. The meridiem wheel does not
// repeat, so it is always shown whole.
func (s *State) MeridiemItems() []wheel.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]wheel.Item, 0, s.meridiem.Len())
	for i := 0; i < s.meridiem.Len(); i++ {
		items = append(items, wheel.Item{Index: i, Label: s.meridiem.Label(i), Selected: i == s.meridiem.Selected()})
	}
	return items
}
