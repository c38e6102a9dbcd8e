package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

type handlerBox struct{ h ErrorHandler }

// current holds the process-wide handler. Reports arrive from parallel
// readers, so it is swapped atomically.
var current atomic.Pointer[handlerBox]

func init() {
	current.Store(&handlerBox{h: &LogHandler{}})
}

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	current.Store(&handlerBox{h: h})
}

// Handler returns the handler reports are currently sent to.
func Handler() ErrorHandler {
	return current.Load().h
}

// Report stamps err with the current time if it has none and sends it to
// the global handler.
func Report(err *UITreeError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic sends a panic error to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic raised under op and then passes the report to
// onPanic, which may be nil. It must be deferred directly:
//
//	defer errors.Recover("app.ReadParallel", nil)
func Recover(op string, onPanic func(*PanicError)) {
	r := recover()
	if r == nil {
		return
	}
	pe := &PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
	ReportPanic(pe)
	if onPanic != nil {
		onPanic(pe)
	}
}

// CaptureStack returns the caller's stack, one "function\n\tfile:line" pair
// per frame. Frames inside the runtime (panic machinery, goexit) are left out.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") {
			sb.WriteString(frame.Function)
			sb.WriteString("\n\t")
			sb.WriteString(frame.File)
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(frame.Line))
			sb.WriteByte('\n')
		}
		if !more {
			break
		}
	}
	return sb.String()
}

// Collector is an ErrorHandler that keeps every report in memory.
// It is safe for concurrent use.
type Collector struct {
	mu     sync.Mutex
	errs   []*UITreeError
	panics []*PanicError
}

// HandleError records err.
func (c *Collector) HandleError(err *UITreeError) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs = append(c.errs, err)
}

// HandlePanic records err.
func (c *Collector) HandlePanic(err *PanicError) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.panics = append(c.panics, err)
}

// Errors returns a copy of the recorded errors in report order.
func (c *Collector) Errors() []*UITreeError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*UITreeError(nil), c.errs...)
}

// Panics returns a copy of the recorded panics in report order.
func (c *Collector) Panics() []*PanicError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*PanicError(nil), c.panics...)
}
