package errors

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// LogHandler is an ErrorHandler that writes reported errors to a logr.Logger.
// The zero value logs to stderr.
type LogHandler struct {
	// Logger receives the records. A zero Logger writes to stderr.
	Logger logr.Logger
	// Verbose adds stack traces to the records.
	Verbose bool
}

// NewLogHandler returns a LogHandler writing to logger.
func NewLogHandler(logger logr.Logger, verbose bool) *LogHandler {
	return &LogHandler{Logger: logger, Verbose: verbose}
}

func (h *LogHandler) logger() logr.Logger {
	if h.Logger.GetSink() != nil {
		return h.Logger
	}
	return stderrLogger
}

var stderrLogger = funcr.New(func(prefix, args string) {
	if prefix != "" {
		fmt.Fprintf(os.Stderr, "[cardstack] %s: %s\n", prefix, args)
		return
	}
	fmt.Fprintf(os.Stderr, "[cardstack] %s\n", args)
}, funcr.Options{})

// HandleError logs a CardStackError. Recovered panics are logged with
// their panic value.
func (h *LogHandler) HandleError(err *CardStackError) {
	if err == nil {
		return
	}
	kv := []any{"op", err.Op, "kind", err.Kind.String()}
	if v, ok := PanicValue(err.Err); ok {
		kv = append(kv, "value", fmt.Sprint(v))
	}
	if h.Verbose && err.StackTrace != "" {
		kv = append(kv, "stack", err.StackTrace)
	}
	h.logger().Error(err.Err, "cardstack error", kv...)
}
