// Package timepicker holds the selection state behind a wheel-style time
// picker: an hour wheel, a minute wheel with a fixed granularity, and in
// 12-hour mode a meridiem (AM/PM) wheel.
//
// Construction rounds the minute up to the next granularity bucket, so the
// displayed time can be later than the requested one:
//
//	05:07 with step 5 -> 05:10
//	05:58 with step 5 -> 06:00
//	23:58 with step 5 -> 00:00
package timepicker

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
	// Repetition is the replication factor of the hour and minute wheels.
	Repetition = 200

	// MeridiemDelay is how long after an hour selection the meridiem is
	// re-derived, letting the hour wheel settle first.
	MeridiemDelay = 200 * time.Millisecond
)

// Meridiem indices.
const (
	AM = 0
	PM = 1
)

// Option configures a State.
type Option func(*options)

type options struct {
	time        *calendar.ClockTime
	granularity MinuteGranularity
	is24Hour    bool
	locale      language.Tag
	scheduler   schedule.Scheduler
}

// WithTime sets the requested initial time. Without it the state starts at
// calendar.CurrentTime.
func WithTime(t calendar.ClockTime) Option {
	return func(o *options) { o.time = &t }
}

// WithGranularity sets the minute step.
func WithGranularity(g MinuteGranularity) Option {
	return func(o *options) { o.granularity = g }
}

// With24Hour selects 24-hour mode, which hides the meridiem wheel.
func With24Hour(on bool) Option {
	return func(o *options) { o.is24Hour = on }
}

// WithLocale sets the locale used for the meridiem labels.
func WithLocale(tag language.Tag) Option {
	return func(o *options) { o.locale = tag }
}

// WithScheduler sets the scheduler used for the delayed meridiem update.
func WithScheduler(s schedule.Scheduler) Option {
	return func(o *options) { o.scheduler = s }
}

// State is the selection state of one time picker instance.
type State struct {
	mu sync.Mutex

	locale      language.Tag
	is24Hour    bool
	granularity MinuteGranularity

	hours    *wheel.Wheel
	minutes  *wheel.Wheel
	meridiem *wheel.Wheel

	// offset accumulates +12 / -12 for every meridiem change made by the
	// user since the hour index was last derived from an absolute hour.
	offset int

	update    *schedule.Debouncer
	listeners []listener
	nextID    int
}

type listener struct {
	id int
	fn func()
}

// New returns a State for the requested time, rounded up to the
// granularity.
func New(opts ...Option) (*State, error) {
	o := options{granularity: DefaultGranularity, locale: language.English}
	for _, opt := range opts {
		opt(&o)
	}
	if _, err := ParseGranularity(int(o.granularity)); err != nil {
		return nil, err
	}

	s := &State{
		locale:      o.locale,
		is24Hour:    o.is24Hour,
		granularity: o.granularity,
		hours:       wheel.New(HourLabels(o.is24Hour), Repetition),
		minutes:     wheel.New(o.granularity.Labels(), Repetition),
		meridiem:    wheel.New(calendar.MeridiemNames(o.locale), 1),
		update:      schedule.NewDebouncer(o.scheduler),
	}

	initial := calendar.CurrentTime()
	if o.time != nil {
		initial = *o.time
	}
	if err := s.setTimeLocked("timepicker.New", initial); err != nil {
		return nil, err
	}
	return s, nil
}

// HourLabels returns "0".."23" in 24-hour mode and "1".."12" otherwise.
func HourLabels(is24Hour bool) []string {
	if is24Hour {
		labels := make([]string, 24)
		for h := range labels {
			labels[h] = strconv.Itoa(h)
		}
		return labels
	}
	labels := make([]string, 12)
	for h := range labels {
		labels[h] = strconv.Itoa(h + 1)
	}
	return labels
}

// HourMiddle is the index of hour 0 in the middle replica of the hour
// wheel. In 12-hour mode the wheel starts at "1", so the middle replica is
// shifted back by one and hour h (0..23) sits at HourMiddle + h.
func HourMiddle(is24Hour bool) int {
	if is24Hour {
		return 24 * (Repetition / 2)
	}
	return 12*(Repetition/2) - 1
}

// MinuteMiddle is the index of minute 0 in the middle replica of the
// minute wheel.
func MinuteMiddle(g MinuteGranularity) int {
	return g.Buckets() * (Repetition / 2)
}

// SetTime re-derives every wheel from t, rounding as New does. A pending
// meridiem update is dropped and the meridiem offset is reset.
func (s *State) SetTime(t calendar.ClockTime) error {
	s.mu.Lock()
	err := s.setTimeLocked("timepicker.SetTime", t)
	s.mu.Unlock()
	if err == nil {
		s.notify()
	}
	return err
}

func (s *State) setTimeLocked(op string, t calendar.ClockTime) error {
	if t.Hour < 0 || t.Hour > 23 {
		return errors.Invalid(op, errors.ErrHourOutOfRange, "hour", t.Hour, 0, 23)
	}
	if t.Minute < 0 || t.Minute > 59 {
		return errors.Invalid(op, errors.ErrMinuteOutOfRange, "minute", t.Minute, 0, 59)
	}

	minute := s.granularity.RoundUp(t.Minute)
	hour := t.Hour
	if minute == 0 && t.Minute != 0 {
		hour = (hour + 1) % 24
	}

	s.update.Stop()
	_ = s.hours.Select(HourMiddle(s.is24Hour) + hour)
	_ = s.minutes.Select(MinuteMiddle(s.granularity) + minute/int(s.granularity))
	if hour >= 12 {
		_ = s.meridiem.Select(PM)
	} else {
		_ = s.meridiem.Select(AM)
	}
	s.offset = 0
	return nil
}

// SelectHourIndex selects index i of the hour wheel. In 12-hour mode the
// meridiem is re-derived after MeridiemDelay from the absolute hour at i,
// so scrolling from 11 to 12 flips AM to PM; a later hour selection
// supersedes a pending update.
func (s *State) SelectHourIndex(i int) error {
	s.mu.Lock()
	if err := s.hours.Select(i); err != nil {
		s.mu.Unlock()
		return err
	}
	if !s.is24Hour {
		s.update.Schedule(MeridiemDelay, func(gen uint64) { s.deriveMeridiem(gen, i) })
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *State) deriveMeridiem(gen uint64, index int) {
	s.mu.Lock()
	if !s.update.Current(gen) {
		s.mu.Unlock()
		return
	}
	m := AM
	if floorMod(index+1+s.offset, 24) >= 12 {
		m = PM
	}
	changed := m != s.meridiem.Selected()
	_ = s.meridiem.Select(m)
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// SelectMinuteIndex selects index i of the minute wheel.
func (s *State) SelectMinuteIndex(i int) error {
	s.mu.Lock()
	if err := s.minutes.Select(i); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

// SelectMeridiemIndex selects AM or PM. Selecting the current meridiem is a
// no-op; a change shifts the hour offset by 12 in its direction.
func (s *State) SelectMeridiemIndex(i int) error {
	s.mu.Lock()
	if i == s.meridiem.Selected() {
		s.mu.Unlock()
		return nil
	}
	if err := s.meridiem.Select(i); err != nil {
		s.mu.Unlock()
		return err
	}
	if i == PM {
		s.offset += 12
	} else {
		s.offset -= 12
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

// SelectedTime projects the wheels back to a 24-hour ClockTime.
func (s *State) SelectedTime() calendar.ClockTime {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedTimeLocked()
}

func (s *State) selectedTimeLocked() calendar.ClockTime {
	hour := s.hours.SelectedOrdinal()
	if !s.is24Hour {
		hour = (hour+1)%12 + 12*s.meridiem.Selected()
	}
	return calendar.ClockTime{
		Hour:   hour,
		Minute: s.minutes.SelectedOrdinal() * int(s.granularity),
	}
}

// SetLocale swaps the meridiem labels. Indices and the hour offset are not
// touched.
func (s *State) SetLocale(tag language.Tag) {
	s.mu.Lock()
	s.locale = tag
	s.meridiem.SetLabels(calendar.MeridiemNames(tag))
	s.mu.Unlock()
	s.notify()
}

// Dispose cancels the pending meridiem update and drops listeners.
func (s *State) Dispose() {
	s.mu.Lock()
	s.update.Stop()
	s.listeners = nil
	s.mu.Unlock()
}

// AddListener registers fn to run after every state change, including the
// delayed meridiem update. It returns a function that removes fn.
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

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
