// Package wheel models a center-focused scroll wheel: a short list of labels
// repeated many times so the user can keep scrolling in either direction
// without reaching an edge.
//
// A Wheel only tracks indices. The host maps the selected index to a scroll
// offset and reports the index the wheel settled on.
package wheel

import "github.com/go-drift/pickers/pkg/errors"

// DefaultRepetition is the number of times the base labels are repeated.
const DefaultRepetition = 200

// Wheel is the selection state of one repeating list.
type Wheel struct {
	labels     []string
	repetition int
	selected   int
}

// New returns a wheel over labels repeated repetition times, selecting the
// first label of the middle replica. A repetition below 1 uses
// DefaultRepetition.
func New(labels []string, repetition int) *Wheel {
	if repetition < 1 {
		repetition = DefaultRepetition
	}
	w := &Wheel{
		labels:     append([]string(nil), labels...),
		repetition: repetition,
	}
	w.selected = w.CenterIndex(0)
	return w
}

// BaseLen returns the number of distinct labels.
func (w *Wheel) BaseLen() int { return len(w.labels) }

// Len returns the length of the replicated list.
func (w *Wheel) Len() int { return len(w.labels) * w.repetition }

// Repetition returns the replication factor.
func (w *Wheel) Repetition() int { return w.repetition }

// Labels returns a copy of the base labels.
func (w *Wheel) Labels() []string { return append([]string(nil), w.labels...) }

// BaseOffset is the index of the first label of the middle replica:
// floor(repetition/2) * BaseLen.
func (w *Wheel) BaseOffset() int {
	return (w.repetition / 2) * len(w.labels)
}

// CenterIndex returns the index of ordinal in the middle replica.
func (w *Wheel) CenterIndex(ordinal int) int {
	if len(w.labels) == 0 {
		return 0
	}
	return w.BaseOffset() + mod(ordinal, len(w.labels))
}

// Ordinal maps a replicated index to its position in the base labels.
func (w *Wheel) Ordinal(index int) int {
	if len(w.labels) == 0 {
		return 0
	}
	return mod(index, len(w.labels))
}

// Label returns the label shown at index.
func (w *Wheel) Label(index int) string {
	if len(w.labels) == 0 {
		return ""
	}
	return w.labels[w.Ordinal(index)]
}

// Selected returns the selected index.
func (w *Wheel) Selected() int { return w.selected }

// SelectedOrdinal returns the base position of the selected index.
func (w *Wheel) SelectedOrdinal() int { return w.Ordinal(w.selected) }

// SelectedLabel returns the label at the selected index.
func (w *Wheel) SelectedLabel() string { return w.Label(w.selected) }

// Select moves the selection to index. Indices outside the replicated list
// are rejected and leave the wheel unchanged.
func (w *Wheel) Select(index int) error {
	if index < 0 || index >= w.Len() {
		return errors.Invalid("wheel.Select", errors.ErrIndexOutOfRange, "index", index, 0, w.Len()-1)
	}
	w.selected = index
	return nil
}

// SelectOrdinal selects ordinal in the middle replica.
func (w *Wheel) SelectOrdinal(ordinal int) {
	w.selected = w.CenterIndex(ordinal)
}

// Recenter moves the selection back to the middle replica, keeping the
// selected label. Long scrolls drift the index towards one end; recentering
// restores room in both directions.
func (w *Wheel) Recenter() {
	w.SelectOrdinal(w.SelectedOrdinal())
}

// SetLabels replaces the labels. When the base length is unchanged the
// selected index is kept as is, so relabeling (a locale change) does not
// move the wheel. Otherwise the selected ordinal is clamped to the new
// length and recentered.
func (w *Wheel) SetLabels(labels []string) {
	if len(labels) == len(w.labels) {
		w.labels = append(w.labels[:0], labels...)
		return
	}
	ordinal := w.SelectedOrdinal()
	w.labels = append([]string(nil), labels...)
	if ordinal >= len(labels) {
		ordinal = len(labels) - 1
	}
	w.SelectOrdinal(max(ordinal, 0))
}

// Item is one row of a render window.
type Item struct {
	Index    int
	Label    string
	Selected bool
}

// Window returns rows items centered on the selected index. An even rows
// value shows one more item above the selection than below.
func (w *Wheel) Window(rows int) []Item {
	if rows < 1 || len(w.labels) == 0 {
		return nil
	}
	start := w.selected - rows/2
	items := make([]Item, 0, rows)
	for i := start; i < start+rows; i++ {
		if i < 0 || i >= w.Len() {
			continue
		}
		items = append(items, Item{Index: i, Label: w.Label(i), Selected: i == w.selected})
	}
	return items
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
