package errors

import "fmt"

// DebugMode enables invariant assertions on arena and resolver mutations.
// Release builds of an embedding application may turn it off to skip the checks.
var DebugMode = true

// SetDebugMode enables or disables invariant assertions.
func SetDebugMode(debug bool) {
	DebugMode = debug
}

// Assert panics with an *InvariantError when cond is false and DebugMode is set.
func Assert(cond bool, format string, args ...any) {
	if cond || !DebugMode {
		return
	}
	panic(&InvariantError{
		Message:    fmt.Sprintf(format, args...),
		StackTrace: CaptureStack(),
	})
}
