package picker

import "sync"

// Registry keeps one picker per caller-supplied identifier so several
// pickers can share a screen without sharing state.
type Registry struct {
	mu    sync.Mutex
	dates map[string]dateEntry
	times map[string]timeEntry
}

type dateEntry struct {
	picker *DatePicker
	id     dateIdentity
}

type timeEntry struct {
	picker *TimePicker
	id     timeIdentity
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		dates: make(map[string]dateEntry),
		times: make(map[string]timeEntry),
	}
}

// Date returns the date picker registered under id, creating and mounting
// it if needed. When the initial date or the limiter differ from the ones
// the existing picker was built with, the old picker is disposed and
// replaced. Otherwise the picker is kept and takes the locale, style and
// callbacks from the latest opts, so the user's position survives.
func (r *Registry) Date(id string, opts DateOptions) (*DatePicker, error) {
	r.mu.Lock()
	e, ok := r.dates[id]
	if ok && e.id == opts.identity() {
		r.mu.Unlock()
		e.picker.update(opts)
		return e.picker, nil
	}
	r.mu.Unlock()

	if ok {
		e.picker.Dispose()
	}
	p, err := NewDatePicker(opts)
	if err != nil {
		r.mu.Lock()
		delete(r.dates, id)
		r.mu.Unlock()
		return nil, err
	}

	r.mu.Lock()
	r.dates[id] = dateEntry{picker: p, id: opts.identity()}
	r.mu.Unlock()
	p.Mount()
	return p, nil
}

// Time returns the time picker registered under id, creating and mounting
// it if needed. A change of initial time, 24-hour mode or granularity
// replaces the picker; locale, style and callbacks are updated in place.
func (r *Registry) Time(id string, opts TimeOptions) (*TimePicker, error) {
	r.mu.Lock()
	e, ok := r.times[id]
	if ok && e.id == opts.identity() {
		r.mu.Unlock()
		e.picker.update(opts)
		return e.picker, nil
	}
	r.mu.Unlock()

	if ok {
		e.picker.Dispose()
	}
	p, err := NewTimePicker(opts)
	if err != nil {
		r.mu.Lock()
		delete(r.times, id)
		r.mu.Unlock()
		return nil, err
	}

	r.mu.Lock()
	r.times[id] = timeEntry{picker: p, id: opts.identity()}
	r.mu.Unlock()
	p.Mount()
	return p, nil
}

// Unmount disposes and forgets every picker registered under id.
func (r *Registry) Unmount(id string) {
	r.mu.Lock()
	d, hasDate := r.dates[id]
	t, hasTime := r.times[id]
	delete(r.dates, id)
	delete(r.times, id)
	r.mu.Unlock()

	if hasDate {
		d.picker.Dispose()
	}
	if hasTime {
		t.picker.Dispose()
	}
}

// Len returns the number of registered pickers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.dates) + len(r.times)
}

// Dispose unmounts everything.
func (r *Registry) Dispose() {
	r.mu.Lock()
	dates, times := r.dates, r.times
	r.dates = make(map[string]dateEntry)
	r.times = make(map[string]timeEntry)
	r.mu.Unlock()

	for _, e := range dates {
		e.picker.Dispose()
	}
	for _, e := range times {
		e.picker.Dispose()
	}
}
