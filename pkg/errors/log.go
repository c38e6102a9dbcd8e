package errors

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out overrides the destination. Nil means os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a UITreeError.
func (h *LogHandler) HandleError(err *UITreeError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[uitree error] %s [%s]", err.Op, err.Kind)
		if err.Element != "" {
			fmt.Fprintf(w, " element=%s", err.Element)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[uitree error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[uitree panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[uitree panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// SlogHandler is an ErrorHandler that writes reports as structured records.
type SlogHandler struct {
	Logger *slog.Logger
}

// HandleError logs err at error level.
func (h SlogHandler) HandleError(err *UITreeError) {
	if err == nil || h.Logger == nil {
		return
	}
	attrs := []any{"op", err.Op, "kind", err.Kind.String(), "err", err.Err}
	if err.Element != "" {
		attrs = append(attrs, "element", err.Element)
	}
	h.Logger.Error("uitree error", attrs...)
}

// HandlePanic logs err at error level with its stack.
func (h SlogHandler) HandlePanic(err *PanicError) {
	if err == nil || h.Logger == nil {
		return
	}
	h.Logger.Error("uitree panic", "op", err.Op, "value", fmt.Sprint(err.Value), "stack", err.StackTrace)
}
