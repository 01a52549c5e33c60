package timepicker

import (
	"fmt"

	"github.com/go-drift/pickers/pkg/errors"
)

// MinuteGranularity is the step between selectable minutes.
type MinuteGranularity int

// Supported granularities. Each divides an hour evenly.
const (
	Step1  MinuteGranularity = 1
	Step5  MinuteGranularity = 5
	Step10 MinuteGranularity = 10
	Step15 MinuteGranularity = 15
	Step30 MinuteGranularity = 30
)

// DefaultGranularity is used when no granularity is configured.
const DefaultGranularity = Step5

// ParseGranularity validates a minute step.
func ParseGranularity(step int) (MinuteGranularity, error) {
	g := MinuteGranularity(step)
	if !g.Valid() {
		return 0, &errors.PickerError{
			Op:   "timepicker.ParseGranularity",
			Kind: errors.KindValidation,
			Err:  fmt.Errorf("%w: %d, must be one of 1, 5, 10, 15, 30", errors.ErrInvalidStep, step),
		}
	}
	return g, nil
}

// Valid reports whether g is one of the supported steps.
func (g MinuteGranularity) Valid() bool {
	switch g {
	case Step1, Step5, Step10, Step15, Step30:
		return true
	}
	return false
}

// Buckets returns the number of selectable minutes per hour.
func (g MinuteGranularity) Buckets() int { return 60 / int(g) }

// Labels returns the zero-padded minute labels: "00", "05", ...
func (g MinuteGranularity) Labels() []string {
	labels := make([]string, 0, g.Buckets())
	for m := 0; m < 60; m += int(g) {
		labels = append(labels, fmt.Sprintf("%02d", m))
	}
	return labels
}

// RoundUp returns the smallest multiple of g that is at least minute, or 0
// when that multiple reaches 60. Step 1 returns minute unchanged.
func (g MinuteGranularity) RoundUp(minute int) int {
	if g == Step1 {
		return minute
	}
	step := int(g)
	v := (minute + step - 1) / step * step
	if v >= 60 {
		return 0
	}
	return v
}
