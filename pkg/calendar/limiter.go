package calendar

import (
	"sort"
	"time"
)

// SelectionLimiter decides which dates may be selected. Bounds are
// inclusive. The zero value accepts every date.
//
// A limiter only answers questions; the date picker consults it before a
// day tap reaches the selection state.
type SelectionLimiter struct {
	lower    *CalendarDate
	upper    *CalendarDate
	excluded map[CalendarDate]struct{}
}

// LimiterOption configures a SelectionLimiter.
type LimiterOption func(*SelectionLimiter)

// NewLimiter builds a limiter from opts. Every input form is normalized to
// a CalendarDate here.
func NewLimiter(opts ...LimiterOption) *SelectionLimiter {
	l := &SelectionLimiter{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// WithLowerBound sets the earliest selectable date.
func WithLowerBound(d CalendarDate) LimiterOption {
	return func(l *SelectionLimiter) { l.lower = &d }
}

// WithUpperBound sets the latest selectable date.
func WithUpperBound(d CalendarDate) LimiterOption {
	return func(l *SelectionLimiter) { l.upper = &d }
}

// WithExcluded marks dates as not selectable.
func WithExcluded(dates ...CalendarDate) LimiterOption {
	return func(l *SelectionLimiter) {
		if l.excluded == nil {
			l.excluded = make(map[CalendarDate]struct{}, len(dates))
		}
		for _, d := range dates {
			l.excluded[d] = struct{}{}
		}
	}
}

// WithLowerMillis sets the lower bound from epoch milliseconds.
func WithLowerMillis(ms int64) LimiterOption { return WithLowerBound(FromMillis(ms)) }

// WithUpperMillis sets the upper bound from epoch milliseconds.
func WithUpperMillis(ms int64) LimiterOption { return WithUpperBound(FromMillis(ms)) }

// WithExcludedMillis excludes dates given as epoch milliseconds.
func WithExcludedMillis(ms ...int64) LimiterOption {
	dates := make([]CalendarDate, len(ms))
	for i, v := range ms {
		dates[i] = FromMillis(v)
	}
	return WithExcluded(dates...)
}

// WithLowerTime sets the lower bound from the calendar day of t.
func WithLowerTime(t time.Time) LimiterOption { return WithLowerBound(FromTime(t)) }

// WithUpperTime sets the upper bound from the calendar day of t.
func WithUpperTime(t time.Time) LimiterOption { return WithUpperBound(FromTime(t)) }

// WithExcludedTimes excludes the calendar days of ts.
func WithExcludedTimes(ts ...time.Time) LimiterOption {
	dates := make([]CalendarDate, len(ts))
	for i, t := range ts {
		dates[i] = FromTime(t)
	}
	return WithExcluded(dates...)
}

// IsSelectable reports whether d is not excluded and lies within the bounds.
func (l *SelectionLimiter) IsSelectable(d CalendarDate) bool {
	if l == nil {
		return true
	}
	if _, ok := l.excluded[d]; ok {
		return false
	}
	if l.lower != nil && d.Before(*l.lower) {
		return false
	}
	if l.upper != nil && d.After(*l.upper) {
		return false
	}
	return true
}

// Bounds returns the configured bounds; ok flags are false when unset.
func (l *SelectionLimiter) Bounds() (lower CalendarDate, hasLower bool, upper CalendarDate, hasUpper bool) {
	if l == nil {
		return
	}
	if l.lower != nil {
		lower, hasLower = *l.lower, true
	}
	if l.upper != nil {
		upper, hasUpper = *l.upper, true
	}
	return
}

// Excluded returns the excluded dates in ascending order.
func (l *SelectionLimiter) Excluded() []CalendarDate {
	if l == nil {
		return nil
	}
	out := make([]CalendarDate, 0, len(l.excluded))
	for d := range l.excluded {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
