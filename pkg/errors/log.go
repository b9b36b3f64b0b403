package errors

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// LogHandler is an ErrorHandler that logs through charmbracelet/log.
type LogHandler struct {
	// Verbose enables stack traces in the output.
	Verbose bool
	// Logger receives the records. Nil logs to stderr.
	Logger *log.Logger
}

// NewLogHandler returns a handler writing to w with the "embedui" prefix.
func NewLogHandler(w io.Writer, verbose bool) *LogHandler {
	return &LogHandler{
		Verbose: verbose,
		Logger:  log.NewWithOptions(w, log.Options{Prefix: "embedui"}),
	}
}

func (h *LogHandler) logger() *log.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	h.Logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "embedui"})
	return h.Logger
}

// HandleError logs a UIError.
func (h *LogHandler) HandleError(err *UIError) {
	if err == nil {
		return
	}
	kv := []any{"op", err.Op, "kind", err.Kind.String()}
	if err.Object != "" {
		kv = append(kv, "object", err.Object)
	}
	if h.Verbose && err.StackTrace != "" {
		kv = append(kv, "stack", err.StackTrace)
	}
	h.logger().Error(err.Err, kv...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	kv := []any{"op", err.Op}
	if h.Verbose && err.StackTrace != "" {
		kv = append(kv, "stack", err.StackTrace)
	}
	h.logger().Error("panic", append(kv, "value", err.Value)...)
}
