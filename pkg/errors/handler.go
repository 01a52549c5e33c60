package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives every reported error and recovered panic.
	// It starts as a quiet LogHandler on stderr.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler replaces the global handler. Nil restores a quiet LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	DefaultHandler = h
	handlerMu.Unlock()
}

func handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report passes err to the global handler, stamping it if needed.
func Report(err *PickerError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	handler().HandleError(err)
}

// ReportPanic passes a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	handler().HandlePanic(err)
}

// Guard runs fn for op. A panic inside fn is reported through ReportPanic
// and returned as a KindCallback error wrapping the *PanicError, so the
// caller keeps running. Guard returns nil when fn completes.
func Guard(op string, fn func()) (err *PickerError) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		p := &PanicError{
			Op:         op,
			Value:      r,
			StackTrace: CaptureStack(),
			Timestamp:  time.Now(),
		}
		ReportPanic(p)
		err = &PickerError{Op: op, Kind: KindCallback, Err: p, Timestamp: p.Timestamp}
	}()
	fn()
	return nil
}

// CaptureStack formats the caller's stack, one function and position per
// frame. The frames of CaptureStack and its immediate caller are skipped.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}
