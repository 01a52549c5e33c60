package picker

import (
	"sync"

	"golang.org/x/text/language"

	"github.com/go-drift/pickers/pkg/calendar"
	"github.com/go-drift/pickers/pkg/datepicker"
	"github.com/go-drift/pickers/pkg/errors"
	"github.com/go-drift/pickers/pkg/wheel"
)

// DatePicker drives a datepicker.State from host events and reports
// committed selections through DateOptions callbacks.
type DatePicker struct {
	opts  DateOptions
	state *datepicker.State

	mu       sync.Mutex
	style    Style
	mounted  bool
	lastPage calendar.CalendarDate
}

// NewDatePicker creates a date picker. It fails when the initial date is
// outside the supported year window or does not exist.
func NewDatePicker(opts DateOptions) (*DatePicker, error) {
	stateOpts := []datepicker.Option{
		datepicker.WithLocale(localeOrDefault(opts.Locale)),
		datepicker.WithScheduler(opts.Scheduler),
	}
	if opts.Initial != nil {
		stateOpts = append(stateOpts, datepicker.WithDate(*opts.Initial))
	}
	st, err := datepicker.New(stateOpts...)
	if err != nil {
		return nil, err
	}
	return &DatePicker{opts: opts, style: opts.Style.resolved(), state: st}, nil
}

// State returns the underlying selection state.
func (p *DatePicker) State() *datepicker.State { return p.state }

// Mount reports the initial page and selection. Only the first call has an
// effect.
func (p *DatePicker) Mount() {
	p.mu.Lock()
	if p.mounted {
		p.mu.Unlock()
		return
	}
	p.mounted = true
	p.mu.Unlock()

	p.pageChanged(true)
	p.emitDate(p.state.Selected())
}

// Handle applies a host event. Events that do not apply in the current
// mode, such as arrow taps while the month-year sub-picker is open or taps
// on disabled days, are ignored.
func (p *DatePicker) Handle(ev Event) error {
	switch ev := ev.(type) {
	case ItemTapped:
		return p.handleIndex(ev.Wheel, ev.Index)
	case DragSettled:
		return p.handleIndex(ev.Wheel, ev.Index)
	case PrevArrowTapped:
		if !p.state.Snapshot().MonthYearPickerVisible && p.state.PreviousMonth() {
			p.pageChanged(false)
		}
	case NextArrowTapped:
		if !p.state.Snapshot().MonthYearPickerVisible && p.state.NextMonth() {
			p.pageChanged(false)
		}
	case HeaderTapped:
		p.state.ToggleMonthYearPicker()
	}
	return nil
}

func (p *DatePicker) handleIndex(w WheelID, index int) error {
	switch w {
	case WheelDay:
		cells := p.state.DayCells()
		if index < 0 || index >= len(cells) {
			return errors.Invalid("picker.DatePicker.Handle", errors.ErrIndexOutOfRange, "cell", index, 0, len(cells)-1)
		}
		cell := cells[index]
		if cell.Day == 0 || !p.opts.Limiter.IsSelectable(cell.Date) {
			return nil
		}
		if err := p.state.SelectDay(cell.Day); err != nil {
			return err
		}
		p.emitDate(p.state.Selected())
	case WheelMonth:
		if err := p.state.JumpToMonthIndex(index); err != nil {
			return err
		}
		p.pageChanged(false)
	case WheelYear:
		if err := p.state.JumpToYearIndex(index); err != nil {
			return err
		}
		p.pageChanged(false)
	}
	return nil
}

// pageChanged reports the visible month if it differs from the last one
// reported, or unconditionally when force is set.
func (p *DatePicker) pageChanged(force bool) {
	first, last := p.state.VisibleMonthRange()
	p.mu.Lock()
	changed := force || first != p.lastPage
	p.lastPage = first
	fn := p.opts.OnMonthPageChange
	p.mu.Unlock()
	if !changed || fn == nil {
		return
	}
	errors.Guard("picker.OnMonthPageChange", func() { fn(first, last) })
}

func (p *DatePicker) emitDate(d calendar.CalendarDate) {
	p.mu.Lock()
	fn := p.opts.OnDateSelected
	p.mu.Unlock()
	if fn == nil {
		return
	}
	errors.Guard("picker.OnDateSelected", func() { fn(d) })
}

// SetLocale relabels the title, month wheel and weekday headers. The
// visible month, the selected day and the wheel positions are kept.
func (p *DatePicker) SetLocale(tag language.Tag) {
	tag = localeOrDefault(tag)
	if p.state.Snapshot().Locale == tag {
		return
	}
	p.state.SetLocale(tag)
}

// SetStyle replaces the render style.
func (p *DatePicker) SetStyle(s Style) {
	p.mu.Lock()
	p.style = s.resolved()
	p.mu.Unlock()
}

// update applies options that do not require a new picker.
func (p *DatePicker) update(opts DateOptions) {
	p.mu.Lock()
	p.opts.Locale = opts.Locale
	p.opts.Style = opts.Style
	p.opts.OnDateSelected = opts.OnDateSelected
	p.opts.OnMonthPageChange = opts.OnMonthPageChange
	p.mu.Unlock()
	p.SetStyle(opts.Style)
	p.SetLocale(opts.Locale)
}

// Dispose cancels pending work. The picker must not be used afterwards.
func (p *DatePicker) Dispose() {
	p.state.Dispose()
}

// DateRender is everything a host needs to draw a date picker.
type DateRender struct {
	Title string

	// ArrowsVisible is false while the month-year sub-picker is open.
	ArrowsVisible          bool
	MonthYearPickerVisible bool

	Weekdays []string
	Days     []DayItem

	Months []wheel.Item
	Years  []wheel.Item

	Style Style
}

// DayItem is one cell of the day grid.
type DayItem struct {
	datepicker.DayCell

	// Selectable reports whether a tap on the cell is accepted.
	Selectable bool
}

// Render returns the current render model.
func (p *DatePicker) Render() DateRender {
	p.mu.Lock()
	style := p.style
	p.mu.Unlock()

	snap := p.state.Snapshot()
	title := p.state.Title()
	if style.UppercaseHeader {
		title = calendar.Upper(snap.Locale, title)
	}

	cells := p.state.DayCells()
	days := make([]DayItem, len(cells))
	for i, c := range cells {
		days[i] = DayItem{DayCell: c, Selectable: c.Day != 0 && p.opts.Limiter.IsSelectable(c.Date)}
	}

	return DateRender{
		Title:                  title,
		ArrowsVisible:          !snap.MonthYearPickerVisible,
		MonthYearPickerVisible: snap.MonthYearPickerVisible,
		Weekdays:               p.state.WeekdayHeaders(),
		Days:                   days,
		Months:                 p.state.MonthWindow(style.Rows),
		Years:                  p.state.YearWindow(style.Rows),
		Style:                  style,
	}
}
