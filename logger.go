package vardata

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vardata-specific helpers so column
// operations log consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler to stderr at info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger with human-readable output at the given level.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger with JSON output at the given level.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// LogInit logs the result of column initialization.
func (l *Logger) LogInit(name string, sealed int, active uint32, err error) {
	if err != nil {
		l.Error("column init failed",
			"column", name,
			"error", err,
		)
		return
	}
	l.Info("column initialized",
		"column", name,
		"sealed_segments", sealed,
		"active_segment", active,
	)
}

// LogFlush logs a flush of buffered bytes into the active segment.
func (l *Logger) LogFlush(segment uint32, bytes int, err error) {
	if err != nil {
		l.Error("flush failed",
			"segment", segment,
			"bytes", bytes,
			"error", err,
		)
		return
	}
	l.Debug("flush completed",
		"segment", segment,
		"bytes", bytes,
	)
}

// LogRotation logs the start of a new active segment.
func (l *Logger) LogRotation(from, to uint32, size int64) {
	l.Info("segment rotated",
		"from", from,
		"to", to,
		"size", size,
	)
}

// LogUnknownSegment logs a read against a segment id the column does not know.
func (l *Logger) LogUnknownSegment(id ID, known uint32) {
	l.Warn("read of unknown segment",
		"id", id.String(),
		"segment", id.Segment(),
		"known_segments", known,
	)
}
