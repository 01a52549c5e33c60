// Package datepicker holds the selection state behind a calendar-style date
// picker: the visible month and year, the selected day, and the positions
// of the month and year wheels shown by the month-year sub-picker.
//
// The state is mechanism only. It does not consult a
// [calendar.SelectionLimiter]; the view layer checks the limiter before it
// calls [State.SelectDay].
package datepicker

import (
	"strconv"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/go-drift/pickers/pkg/calendar"
	"github.com/go-drift/pickers/pkg/errors"
	"github.com/go-drift/pickers/pkg/schedule"
	"github.com/go-drift/pickers/pkg/wheel"
)

const (
	// YearWindow is the number of selectable years, centered on the year
	// the state was created in.
	YearWindow = 200

	// MonthRepetition is the replication factor of the month wheel.
	MonthRepetition = 200

	// RecenterDelay is how long the month wheel is left alone after the
	// month-year sub-picker hides, so its fade-out can finish before the
	// index jumps back to the middle replica.
	RecenterDelay = 250 * time.Millisecond
)

// Option configures a State.
type Option func(*options)

type options struct {
	date      *calendar.CalendarDate
	locale    language.Tag
	scheduler schedule.Scheduler
}

// WithDate sets the initial selection. Without it the state starts at
// calendar.Today.
func WithDate(d calendar.CalendarDate) Option {
	return func(o *options) { o.date = &d }
}

// WithLocale sets the locale used for month names.
func WithLocale(tag language.Tag) Option {
	return func(o *options) { o.locale = tag }
}

// WithScheduler sets the scheduler used for the delayed re-centering.
func WithScheduler(s schedule.Scheduler) Option {
	return func(o *options) { o.scheduler = s }
}

// State is the selection state of one date picker instance.
//
// State is safe for use from the UI thread and from the scheduler's
// callbacks; listeners run without the internal lock held.
type State struct {
	mu sync.Mutex

	locale        language.Tag
	years         []int
	yearWheel     *wheel.Wheel
	monthWheel    *wheel.Wheel
	months        [12]calendar.MonthInfo
	visibleMonth  int
	selected      calendar.CalendarDate
	pickerVisible bool

	recenter  *schedule.Debouncer
	listeners []listener
	nextID    int
}

type listener struct {
	id int
	fn func()
}

// New returns a State. The year window is centered on the current year; if
// an initial date is given it must fall inside that window.
func New(opts ...Option) (*State, error) {
	o := options{locale: language.English}
	for _, opt := range opts {
		opt(&o)
	}

	today := calendar.Today()
	s := &State{
		locale:   o.locale,
		years:    make([]int, YearWindow),
		recenter: schedule.NewDebouncer(o.scheduler),
	}
	first := today.Year - YearWindow/2
	labels := make([]string, YearWindow)
	for i := range s.years {
		s.years[i] = first + i
		labels[i] = strconv.Itoa(first + i)
	}
	s.yearWheel = wheel.New(labels, 1)
	s.monthWheel = wheel.New(calendar.MonthNames(o.locale), MonthRepetition)

	initial := today
	if o.date != nil {
		initial = *o.date
	}
	if err := s.setDateLocked("datepicker.New", initial); err != nil {
		return nil, err
	}
	return s, nil
}

// SetDate moves the picker to d and selects it. Invalid dates are rejected
// without changing the state.
func (s *State) SetDate(d calendar.CalendarDate) error {
	s.mu.Lock()
	err := s.setDateLocked("datepicker.SetDate", d)
	s.mu.Unlock()
	if err == nil {
		s.notify()
	}
	return err
}

func (s *State) setDateLocked(op string, d calendar.CalendarDate) error {
	lo, hi := s.years[0], s.years[len(s.years)-1]
	if d.Year < lo || d.Year > hi {
		return errors.Invalid(op, errors.ErrYearOutOfRange, "year", d.Year, lo, hi)
	}
	if d.Month < 0 || d.Month > 11 {
		return errors.Invalid(op, errors.ErrMonthOutOfRange, "month", d.Month, 0, 11)
	}
	if n := calendar.DaysIn(d.Year, d.Month); d.Day < 1 || d.Day > n {
		return errors.InvalidDetail(op, errors.ErrDayOutOfRange, "day", d.Day, 1, n,
			"for "+calendar.MonthNames(language.English)[d.Month]+" "+strconv.Itoa(d.Year))
	}

	_ = s.yearWheel.Select(d.Year - lo)
	s.months = calendar.MonthsOf(d.Year, s.locale)
	s.visibleMonth = d.Month
	s.monthWheel.SelectOrdinal(d.Month)
	s.selected = d
	return nil
}

// SelectDay selects day of the visible month and year. The day must exist
// in that month. Selectability is not checked here.
func (s *State) SelectDay(day int) error {
	s.mu.Lock()
	m := s.months[s.visibleMonth]
	if day < 1 || day > m.DayCount {
		s.mu.Unlock()
		return errors.InvalidDetail("datepicker.SelectDay", errors.ErrDayOutOfRange, "day", day, 1, m.DayCount, "for "+m.Name)
	}
	s.selected = calendar.CalendarDate{Year: s.visibleYearLocked(), Month: s.visibleMonth, Day: day}
	s.mu.Unlock()
	s.notify()
	return nil
}

// NextMonth shows the following month. It reports false, leaving the state
// unchanged, when December of the last year in the window is visible.
func (s *State) NextMonth() bool { return s.step(+1) }

// PreviousMonth shows the preceding month. It reports false, leaving the
// state unchanged, when January of the first year in the window is visible.
func (s *State) PreviousMonth() bool { return s.step(-1) }

// AdvanceMonth moves the visible month by delta months, one month at a time,
// stopping at the edge of the year window. It returns the number of months
// actually moved.
func (s *State) AdvanceMonth(delta int) int {
	moved := 0
	for delta > 0 && s.step(+1) {
		delta--
		moved++
	}
	for delta < 0 && s.step(-1) {
		delta++
		moved--
	}
	return moved
}

func (s *State) step(dir int) bool {
	s.mu.Lock()
	next := s.visibleMonth + dir
	if next < 0 || next > 11 {
		yearIndex := s.yearWheel.Selected() + dir
		if yearIndex < 0 || yearIndex >= len(s.years) {
			s.mu.Unlock()
			return false
		}
		_ = s.yearWheel.Select(yearIndex)
		s.months = calendar.MonthsOf(s.years[yearIndex], s.locale)
		next = (next + 12) % 12
	}
	s.visibleMonth = next
	s.monthWheel.SelectOrdinal(next)
	s.mu.Unlock()
	s.notify()
	return true
}

// JumpToYearIndex shows the year at index i of the year window, keeping the
// visible month.
func (s *State) JumpToYearIndex(i int) error {
	s.mu.Lock()
	if err := s.yearWheel.Select(i); err != nil {
		s.mu.Unlock()
		return err
	}
	s.months = calendar.MonthsOf(s.years[i], s.locale)
	s.mu.Unlock()
	s.notify()
	return nil
}

// JumpToMonthIndex shows month i mod 12. While the month-year sub-picker is
// open the wheel keeps index i, the position the user scrolled to; the
// jump back to the middle replica is deferred until the sub-picker hides.
// Otherwise the index is centered immediately.
func (s *State) JumpToMonthIndex(i int) error {
	s.mu.Lock()
	if err := s.monthWheel.Select(i); err != nil {
		s.mu.Unlock()
		return err
	}
	s.visibleMonth = s.monthWheel.SelectedOrdinal()
	if !s.pickerVisible {
		s.monthWheel.Recenter()
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

// ToggleMonthYearPicker shows or hides the month-year sub-picker. Hiding it
// schedules a re-center of the month wheel after RecenterDelay; showing it
// again first cancels that pending re-center.
func (s *State) ToggleMonthYearPicker() {
	s.mu.Lock()
	if s.pickerVisible {
		s.recenter.Schedule(RecenterDelay, s.recenterMonth)
	} else {
		s.recenter.Stop()
	}
	s.pickerVisible = !s.pickerVisible
	s.mu.Unlock()
	s.notify()
}

// recenterMonth runs the re-center scheduled as generation gen. It is
// dropped when the sub-picker was shown again in the meantime.
func (s *State) recenterMonth(gen uint64) {
	s.mu.Lock()
	if !s.recenter.Current(gen) {
		s.mu.Unlock()
		return
	}
	s.monthWheel.Recenter()
	s.mu.Unlock()
	s.notify()
}

// SetLocale relabels the months. Wheel positions and the selection are kept.
func (s *State) SetLocale(tag language.Tag) {
	s.mu.Lock()
	s.locale = tag
	s.months = calendar.MonthsOf(s.visibleYearLocked(), tag)
	s.monthWheel.SetLabels(calendar.MonthNames(tag))
	s.mu.Unlock()
	s.notify()
}

// Dispose cancels pending work and drops listeners.
func (s *State) Dispose() {
	s.mu.Lock()
	s.recenter.Stop()
	s.listeners = nil
	s.mu.Unlock()
}

// AddListener registers fn to run after every state change, including
// changes made by delayed tasks. It returns a function that removes fn.
func (s *State) AddListener(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *State) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, l := range s.listeners {
		fns = append(fns, l.fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (s *State) visibleYearLocked() int {
	return s.years[s.yearWheel.Selected()]
}
