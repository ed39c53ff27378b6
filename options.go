package vardata

import (
	"log/slog"

	"github.com/hupe1980/vardata/internal/compress"
	"github.com/hupe1980/vardata/internal/fs"
)

const (
	// DefaultMaxSegmentSize is the persisted size beyond which a flush
	// rotates to a new active segment.
	DefaultMaxSegmentSize = 128 << 20 // 128 MiB

	// DefaultFlushThreshold is the buffered record count that triggers an
	// automatic flush during insert.
	DefaultFlushThreshold = 100_000
)

// Compression selects an optional payload codec.
//
// The choice must stay stable for the lifetime of a column's files: records
// are not tagged with the codec that produced them.
type Compression int

const (
	// CompressionNone stores payload bytes verbatim (the default).
	CompressionNone Compression = iota
	// CompressionLZ4 stores payloads as LZ4 frames.
	CompressionLZ4
	// CompressionS2 stores payloads as S2 blocks.
	CompressionS2
)

type options struct {
	maxSegmentSize int64
	flushThreshold int
	syncOnFlush    bool
	codec          compress.Codec
	fsys           fs.FileSystem
	logger         *Logger
	metrics        MetricsCollector
}

// Option configures a Column.
type Option func(*options)

// WithMaxSegmentSize overrides the segment size cap that triggers rotation.
func WithMaxSegmentSize(size int64) Option {
	return func(o *options) {
		if size > 0 {
			o.maxSegmentSize = size
		}
	}
}

// WithFlushThreshold overrides the buffered record count that triggers an
// automatic flush.
func WithFlushThreshold(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.flushThreshold = n
		}
	}
}

// WithSyncOnFlush makes every flush fsync the active segment file before
// returning. Default off: flushes rely on the OS page cache.
func WithSyncOnFlush(sync bool) Option {
	return func(o *options) {
		o.syncOnFlush = sync
	}
}

// WithCompression selects the payload codec. See Compression for the
// stability requirement.
func WithCompression(c Compression) Option {
	return func(o *options) {
		switch c {
		case CompressionLZ4:
			o.codec = compress.LZ4{}
		case CompressionS2:
			o.codec = compress.S2{}
		default:
			o.codec = nil
		}
	}
}

// WithLogger configures structured logging. Pass nil to disable.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger at the given level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector. Pass nil to disable.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// withFileSystem swaps the file system implementation. Used by tests to
// inject I/O faults.
func withFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		if fsys != nil {
			o.fsys = fsys
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		maxSegmentSize: DefaultMaxSegmentSize,
		flushThreshold: DefaultFlushThreshold,
		fsys:           fs.Default,
		logger:         NoopLogger(),
		metrics:        NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
