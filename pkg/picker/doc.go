// Package picker connects the date and time selection states to a
// rendering host.
//
// A host creates a [DatePicker] or [TimePicker], calls Mount once, feeds
// gestures to Handle as [Event] values and draws the model returned by
// Render after every change:
//
//	p, err := picker.NewDatePicker(picker.DateOptions{
//		Limiter:        calendar.NewLimiter(calendar.WithLowerBound(min)),
//		OnDateSelected: func(d calendar.CalendarDate) { ... },
//	})
//	p.Mount()
//	p.Handle(picker.ItemTapped{Wheel: picker.WheelDay, Index: 12})
//	model := p.Render()
//
// Callbacks run on the goroutine that triggered the change. A panic in a
// callback is recovered and reported through the errors package handler.
//
// Pickers that live on the same screen are kept apart by a [Registry]
// keyed by a caller-chosen identifier.
package picker
