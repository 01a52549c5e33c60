package picker

import (
	"sync"
	"sync/atomic"

	"golang.org/x/text/language"

	"github.com/go-drift/pickers/pkg/calendar"
	"github.com/go-drift/pickers/pkg/errors"
	"github.com/go-drift/pickers/pkg/timepicker"
	"github.com/go-drift/pickers/pkg/wheel"
)

// TimePicker drives a timepicker.State from host events. Every settled or
// tapped wheel commits the selected time; a delayed meridiem update that
// changes the time commits again.
type TimePicker struct {
	opts  TimeOptions
	state *timepicker.State

	handling atomic.Bool
	unlisten func()

	mu            sync.Mutex
	style         Style
	mounted       bool
	lastCommitted calendar.ClockTime
}

// NewTimePicker creates a time picker. It fails on an invalid initial time
// or granularity.
func NewTimePicker(opts TimeOptions) (*TimePicker, error) {
	g := opts.Granularity
	if g == 0 {
		g = timepicker.DefaultGranularity
	}
	stateOpts := []timepicker.Option{
		timepicker.WithGranularity(g),
		timepicker.With24Hour(opts.Is24Hour),
		timepicker.WithLocale(localeOrDefault(opts.Locale)),
		timepicker.WithScheduler(opts.Scheduler),
	}
	if opts.Initial != nil {
		stateOpts = append(stateOpts, timepicker.WithTime(*opts.Initial))
	}
	st, err := timepicker.New(stateOpts...)
	if err != nil {
		return nil, err
	}
	p := &TimePicker{opts: opts, style: opts.Style.resolved(), state: st}
	p.unlisten = st.AddListener(p.stateChanged)
	return p, nil
}

// State returns the underlying selection state.
func (p *TimePicker) State() *timepicker.State { return p.state }

// Mount reports the rounded initial time. Only the first call has an
// effect.
func (p *TimePicker) Mount() {
	p.mu.Lock()
	if p.mounted {
		p.mu.Unlock()
		return
	}
	p.mounted = true
	p.mu.Unlock()
	p.commit()
}

// Handle applies a host event. Arrow and header events do not apply to a
// time picker and are ignored.
func (p *TimePicker) Handle(ev Event) error {
	var (
		w     WheelID
		index int
	)
	switch ev := ev.(type) {
	case ItemTapped:
		w, index = ev.Wheel, ev.Index
	case DragSettled:
		w, index = ev.Wheel, ev.Index
	default:
		return nil
	}

	p.handling.Store(true)
	var err error
	switch w {
	case WheelHour:
		err = p.state.SelectHourIndex(index)
	case WheelMinute:
		err = p.state.SelectMinuteIndex(index)
	case WheelMeridiem:
		if p.state.Is24Hour() {
			p.handling.Store(false)
			return nil
		}
		err = p.state.SelectMeridiemIndex(index)
	default:
		p.handling.Store(false)
		return nil
	}
	p.handling.Store(false)
	if err != nil {
		return err
	}
	p.commit()
	return nil
}

// stateChanged commits changes made outside Handle, which are the delayed
// meridiem updates.
func (p *TimePicker) stateChanged() {
	if p.handling.Load() {
		return
	}
	p.mu.Lock()
	mounted := p.mounted
	stale := p.state.SelectedTime() != p.lastCommitted
	p.mu.Unlock()
	if mounted && stale {
		p.commit()
	}
}

func (p *TimePicker) commit() {
	t := p.state.SelectedTime()
	p.mu.Lock()
	p.lastCommitted = t
	fn := p.opts.OnTimeSelected
	p.mu.Unlock()
	if fn == nil {
		return
	}
	errors.Guard("picker.OnTimeSelected", func() { fn(t) })
}

// SetLocale swaps the meridiem labels. The selected time and the wheel
// positions are kept.
func (p *TimePicker) SetLocale(tag language.Tag) {
	tag = localeOrDefault(tag)
	if p.state.Snapshot().Locale == tag {
		return
	}
	p.state.SetLocale(tag)
}

// SetStyle replaces the render style.
func (p *TimePicker) SetStyle(s Style) {
	p.mu.Lock()
	p.style = s.resolved()
	p.mu.Unlock()
}

// update applies options that do not require a new picker.
func (p *TimePicker) update(opts TimeOptions) {
	p.mu.Lock()
	p.opts.Locale = opts.Locale
	p.opts.Style = opts.Style
	p.opts.OnTimeSelected = opts.OnTimeSelected
	p.mu.Unlock()
	p.SetStyle(opts.Style)
	p.SetLocale(opts.Locale)
}

// Dispose cancels pending work. The picker must not be used afterwards.
func (p *TimePicker) Dispose() {
	p.unlisten()
	p.state.Dispose()
}

// TimeRender is everything a host needs to draw a time picker.
type TimeRender struct {
	Hours    []wheel.Item
	Minutes  []wheel.Item
	Meridiem []wheel.Item // empty in 24-hour mode

	Selected calendar.ClockTime
	Label    string

	Style Style
}

// Render returns the current render model.
func (p *TimePicker) Render() TimeRender {
	p.mu.Lock()
	style := p.style
	p.mu.Unlock()

	snap := p.state.Snapshot()
	r := TimeRender{
		Hours:    p.state.HourWindow(style.Rows),
		Minutes:  p.state.MinuteWindow(style.Rows),
		Selected: snap.Time,
		Label:    FormatTime(snap.Time, "", snap.Is24Hour, snap.Locale),
		Style:    style,
	}
	if !snap.Is24Hour {
		r.Meridiem = p.state.MeridiemItems()
	}
	return r
}
