package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/pickers/pkg/picker"
	"github.com/go-drift/pickers/pkg/wheel"
)

func (m *Model) View() string {
	datePane := paneStyle
	timePane := paneStyle
	if m.focus == focusDate {
		datePane = focusedPaneStyle
	} else {
		timePane = focusedPaneStyle
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		datePane.Render(m.dateView()),
		" ",
		timePane.Render(m.timeView()),
	)
	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, panes, m.statusView(), m.helpView()))
}

func (m *Model) dateView() string {
	r := m.date.Render()

	title := r.Title
	if r.ArrowsVisible {
		title = "‹ " + title + " ›"
	}
	lines := []string{titleStyle.Render(title)}

	if r.MonthYearPickerVisible {
		months := renderWheel(r.Months, m.focus == focusDate && !m.yearColumn)
		years := renderWheel(r.Years, m.focus == focusDate && m.yearColumn)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, months, years))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	var header strings.Builder
	for _, w := range r.Weekdays {
		header.WriteString(headerCellStyle.Render(w))
	}
	lines = append(lines, header.String())

	for week := 0; week < len(r.Days)/7; week++ {
		var row strings.Builder
		for i := week * 7; i < week*7+7; i++ {
			row.WriteString(m.renderDay(i, r.Days[i]))
		}
		lines = append(lines, row.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderDay(i int, d picker.DayItem) string {
	if d.Day == 0 {
		return cellStyle.Render("")
	}
	label := fmt.Sprint(d.Day)
	switch {
	case d.Selected:
		return selectedCellStyle.Render(label)
	case m.focus == focusDate && i == m.cursor:
		return cursorCellStyle.Render(label)
	case !d.Selectable:
		return disabledCellStyle.Render(label)
	}
	return cellStyle.Render(label)
}

func (m *Model) timeView() string {
	r := m.time.Render()
	focused := m.focus == focusTime

	cols := []string{
		renderWheel(r.Hours, focused && m.column == 0),
		renderWheel(r.Minutes, focused && m.column == 1),
	}
	if len(r.Meridiem) > 0 {
		cols = append(cols, renderWheel(r.Meridiem, focused && m.column == 2))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(r.Label),
		lipgloss.JoinHorizontal(lipgloss.Top, cols...),
	)
}

func renderWheel(items []wheel.Item, focused bool) string {
	lines := make([]string, len(items))
	for i, it := range items {
		switch {
		case it.Selected && focused:
			lines[i] = wheelFocusedStyle.Render(it.Label)
		case it.Selected:
			lines[i] = wheelSelectedStyle.Render(it.Label)
		default:
			lines[i] = wheelStyle.Render(it.Label)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) statusView() string {
	s := fmt.Sprintf("%s  %s  (page %s .. %s)",
		picker.FormatDate(m.selectedDate, ""),
		picker.FormatTime(m.selectedTime, "", m.time.State().Is24Hour(), m.time.State().Snapshot().Locale),
		m.page[0], m.page[1])
	if m.err != nil {
		s += "  " + m.err.Error()
	}
	return statusStyle.Render(s)
}

func (m *Model) helpView() string {
	parts := make([]string, 0, len(Keys.ShortHelp()))
	for _, b := range Keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
