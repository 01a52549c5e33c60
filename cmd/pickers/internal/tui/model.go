// Package tui is a terminal host for the date and time pickers. It turns
// key presses into picker events and draws the render models.
package tui

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/pickers/pkg/calendar"
	"github.com/go-drift/pickers/pkg/errors"
	"github.com/go-drift/pickers/pkg/picker"
)

const (
	dateID = "date"
	timeID = "time"
)

type focus int

const (
	focusDate focus = iota
	focusTime
)

// dispatchMsg carries a scheduled callback onto the program goroutine.
type dispatchMsg func()

// Options configures the demo.
type Options struct {
	Date picker.DateOptions
	Time picker.TimeOptions
}

// Model is the Bubble Tea model hosting one date picker and one time
// picker.
type Model struct {
	registry *picker.Registry
	date     *picker.DatePicker
	time     *picker.TimePicker

	focus focus

	// cursor is the highlighted day grid cell.
	cursor int

	// yearColumn selects the year wheel while the month-year sub-picker is
	// open.
	yearColumn bool

	// column is the focused time wheel: hour, minute, then meridiem.
	column int

	selectedDate calendar.CalendarDate
	selectedTime calendar.ClockTime
	page         [2]calendar.CalendarDate
	err          error

	width int
}

// New creates the pickers and mounts them.
func New(opts Options) (*Model, error) {
	m := &Model{registry: picker.NewRegistry()}

	dateOpts := opts.Date
	dateOpts.OnDateSelected = func(d calendar.CalendarDate) {
		m.selectedDate = d
		log.Printf("date selected: %s", d)
	}
	dateOpts.OnMonthPageChange = func(first, last calendar.CalendarDate) {
		m.page = [2]calendar.CalendarDate{first, last}
		log.Printf("month page: %s .. %s", first, last)
	}
	dp, err := m.registry.Date(dateID, dateOpts)
	if err != nil {
		return nil, err
	}

	timeOpts := opts.Time
	timeOpts.OnTimeSelected = func(t calendar.ClockTime) {
		m.selectedTime = t
		log.Printf("time selected: %s", t)
	}
	tp, err := m.registry.Time(timeID, timeOpts)
	if err != nil {
		m.registry.Dispose()
		return nil, err
	}

	m.date = dp
	m.time = tp
	m.cursor = m.selectedCell()
	return m, nil
}

// Selected returns the last committed date and time.
func (m *Model) Selected() (calendar.CalendarDate, calendar.ClockTime) {
	return m.selectedDate, m.selectedTime
}

// Dispose releases both pickers.
func (m *Model) Dispose() {
	m.registry.Dispose()
}

func (m *Model) Init() tea.Cmd {
	log.Println("pickers: initialised")
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dispatchMsg:
		if err := errors.Guard("tui.dispatch", msg); err != nil {
			m.err = err
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.Focus):
		if m.focus == focusDate {
			m.focus = focusTime
		} else {
			m.focus = focusDate
		}
		return m, nil
	}

	m.err = nil
	if m.focus == focusDate {
		m.handleDateKey(msg)
	} else {
		m.handleTimeKey(msg)
	}
	var perr *errors.PickerError
	if errors.As(m.err, &perr) {
		errors.Report(perr)
	} else if m.err != nil {
		log.Printf("picker event rejected: %v", m.err)
	}
	return m, nil
}

func (m *Model) handleDateKey(msg tea.KeyMsg) {
	snap := m.date.State().Snapshot()

	switch {
	case key.Matches(msg, Keys.Header):
		m.err = m.date.Handle(picker.HeaderTapped{})
		if !m.date.State().Snapshot().MonthYearPickerVisible {
			m.cursor = m.selectedCell()
		}
		return
	case key.Matches(msg, Keys.PrevMonth):
		m.err = m.date.Handle(picker.PrevArrowTapped{})
		m.cursor = m.clampCursor(m.cursor)
		return
	case key.Matches(msg, Keys.NextMonth):
		m.err = m.date.Handle(picker.NextArrowTapped{})
		m.cursor = m.clampCursor(m.cursor)
		return
	}

	if snap.MonthYearPickerVisible {
		wheelID, index := picker.WheelMonth, snap.MonthIndex
		if m.yearColumn {
			wheelID, index = picker.WheelYear, snap.YearIndex
		}
		switch {
		case key.Matches(msg, Keys.Left), key.Matches(msg, Keys.Right):
			m.yearColumn = !m.yearColumn
		case key.Matches(msg, Keys.Up):
			m.err = m.date.Handle(picker.DragSettled{Wheel: wheelID, Index: index - 1})
		case key.Matches(msg, Keys.Down):
			m.err = m.date.Handle(picker.DragSettled{Wheel: wheelID, Index: index + 1})
		}
		return
	}

	switch {
	case key.Matches(msg, Keys.Left):
		m.cursor = m.clampCursor(m.cursor - 1)
	case key.Matches(msg, Keys.Right):
		m.cursor = m.clampCursor(m.cursor + 1)
	case key.Matches(msg, Keys.Up):
		m.cursor = m.clampCursor(m.cursor - 7)
	case key.Matches(msg, Keys.Down):
		m.cursor = m.clampCursor(m.cursor + 7)
	case key.Matches(msg, Keys.Select):
		m.err = m.date.Handle(picker.ItemTapped{Wheel: picker.WheelDay, Index: m.cursor})
	}
}

func (m *Model) handleTimeKey(msg tea.KeyMsg) {
	snap := m.time.State().Snapshot()
	columns := 3
	if snap.Is24Hour {
		columns = 2
	}

	wheels := [...]picker.WheelID{picker.WheelHour, picker.WheelMinute, picker.WheelMeridiem}
	indices := [...]int{snap.HourIndex, snap.MinuteIndex, snap.MeridiemIndex}

	switch {
	case key.Matches(msg, Keys.Left):
		m.column = (m.column + columns - 1) % columns
	case key.Matches(msg, Keys.Right):
		m.column = (m.column + 1) % columns
	case key.Matches(msg, Keys.Up):
		m.err = m.time.Handle(picker.DragSettled{Wheel: wheels[m.column], Index: indices[m.column] - 1})
	case key.Matches(msg, Keys.Down):
		m.err = m.time.Handle(picker.DragSettled{Wheel: wheels[m.column], Index: indices[m.column] + 1})
	}
}

// selectedCell returns the grid cell of the selected day, or the first day
// of the visible month when the selection is elsewhere.
func (m *Model) selectedCell() int {
	cells := m.date.State().DayCells()
	for i, c := range cells {
		if c.Selected {
			return i
		}
	}
	return m.clampCursor(0)
}

// clampCursor keeps the cursor on a day of the visible month.
func (m *Model) clampCursor(i int) int {
	first, last := -1, -1
	for j, c := range m.date.State().DayCells() {
		if c.Day == 0 {
			continue
		}
		if first < 0 {
			first = j
		}
		last = j
	}
	switch {
	case first < 0:
		return 0
	case i < first:
		return first
	case i > last:
		return last
	}
	return i
}
