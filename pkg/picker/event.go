package picker

// WheelID names the part of a picker an event targets.
type WheelID int

const (
	// WheelDay is the day grid. Its indices are grid cells, 0 through
	// datepicker.GridCells-1, Sunday-first.
	WheelDay WheelID = iota
	WheelMonth
	WheelYear
	WheelHour
	WheelMinute
	WheelMeridiem
)

func (w WheelID) String() string {
	switch w {
	case WheelDay:
		return "day"
	case WheelMonth:
		return "month"
	case WheelYear:
		return "year"
	case WheelHour:
		return "hour"
	case WheelMinute:
		return "minute"
	case WheelMeridiem:
		return "meridiem"
	default:
		return "unknown"
	}
}

// Event is an input pushed by the host. It is one of ItemTapped,
// DragSettled, PrevArrowTapped, NextArrowTapped or HeaderTapped.
type Event interface {
	isEvent()
}

// ItemTapped reports a tap on the item at Index.
type ItemTapped struct {
	Wheel WheelID
	Index int
}

// DragSettled reports that a scrolled wheel came to rest with Index at its
// center.
type DragSettled struct {
	Wheel WheelID
	Index int
}

// PrevArrowTapped reports a tap on the previous-month arrow.
type PrevArrowTapped struct{}

// NextArrowTapped reports a tap on the next-month arrow.
type NextArrowTapped struct{}

// HeaderTapped reports a tap on the month and year title.
type HeaderTapped struct{}

func (ItemTapped) isEvent()      {}
func (DragSettled) isEvent()     {}
func (PrevArrowTapped) isEvent() {}
func (NextArrowTapped) isEvent() {}
func (HeaderTapped) isEvent()    {}
