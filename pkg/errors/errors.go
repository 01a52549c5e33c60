// Package errors provides structured error handling for the picker packages.
//
// Invalid construction arguments (a month of 12, a minute of 75) are
// reported synchronously as [*ValidationError] values wrapped in a
// [*PickerError]. Host callbacks run under [Guard], which recovers panics
// and routes them to the global [ErrorHandler].
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindValidation indicates an invalid argument at a construction boundary.
	KindValidation
	// KindConfig indicates a configuration file that could not be loaded.
	KindConfig
	// KindCallback indicates a host-supplied or scheduled callback that
	// panicked. Err is the *PanicError.
	KindCallback
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConfig:
		return "config"
	case KindCallback:
		return "callback"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel errors matched with [Is] against a [*ValidationError].
var (
	ErrYearOutOfRange   = stderrors.New("year out of range")
	ErrMonthOutOfRange  = stderrors.New("month out of range")
	ErrDayOutOfRange    = stderrors.New("day out of range")
	ErrHourOutOfRange   = stderrors.New("hour out of range")
	ErrMinuteOutOfRange = stderrors.New("minute out of range")
	ErrInvalidStep      = stderrors.New("invalid minute step")
	ErrIndexOutOfRange  = stderrors.New("index out of range")
)

// PickerError represents a structured error raised by a picker operation.
type PickerError struct {
	// Op is the operation that failed (e.g., "datepicker.SetDate").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *PickerError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *PickerError) Unwrap() error {
	return e.Err
}

// ValidationError describes an argument outside its accepted range.
type ValidationError struct {
	// Field names the rejected argument ("year", "month", ...).
	Field string
	// Value is the rejected value.
	Value int
	// Min and Max are the inclusive accepted bounds.
	Min, Max int
	// Detail adds context such as the month whose day count was exceeded.
	Detail string
	// Cause is the sentinel this error matches.
	Cause error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid %s: %d, must be between %d and %d inclusive", e.Field, e.Value, e.Min, e.Max)
	if e.Detail != "" {
		msg += " " + e.Detail
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Invalid builds a validation [*PickerError] for op.
func Invalid(op string, cause error, field string, value, lo, hi int) *PickerError {
	return &PickerError{
		Op:   op,
		Kind: KindValidation,
		Err: &ValidationError{
			Field: field,
			Value: value,
			Min:   lo,
			Max:   hi,
			Cause: cause,
		},
	}
}

// InvalidDetail is like [Invalid] but attaches a detail string.
func InvalidDetail(op string, cause error, field string, value, lo, hi int, detail string) *PickerError {
	err := Invalid(op, cause, field, value, lo, hi)
	err.Err.(*ValidationError).Detail = detail
	return err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "picker.DatePicker.notify").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the picker packages.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *PickerError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }

// New returns an error that formats as the given text.
func New(text string) error { return stderrors.New(text) }
