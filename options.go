package diskmap

import (
	"log/slog"

	"github.com/hupe1980/diskmap/codec"
	"github.com/hupe1980/diskmap/compress"
	"github.com/hupe1980/diskmap/internal/fs"
)

type options struct {
	codec      codec.Codec
	compressor compress.Compressor
	level      int
	levelSet   bool
	fs         fs.FileSystem
	logger     *Logger
	metrics    MetricsCollector
}

// Option configures a Store at construction time. The configuration is
// immutable for the lifetime of the Store instance.
type Option func(*options)

// WithCodec configures the structured codec used to encode and decode the
// persisted document. If nil is passed, codec.Default is used.
//
// A file must be opened with the codec it was saved with.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompressor configures the compression algorithm for the persisted
// body. If nil is passed, compress.Default is used.
//
// A file must be opened with the compressor it was saved with.
func WithCompressor(c compress.Compressor) Option {
	return func(o *options) {
		if c == nil {
			c = compress.Default
		}
		o.compressor = c
	}
}

// WithCompressionLevel configures the compression effort. The level is
// clamped into the configured compressor's valid range; out-of-range input
// never fails. Named presets are available via the compress package:
//
//	diskmap.WithCompressionLevel(compress.Smallest(compress.Zstd{}))
func WithCompressionLevel(level int) Option {
	return func(o *options) {
		o.level = level
		o.levelSet = true
	}
}

// WithLogger configures structured logging for save/open operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for save/open
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithFileSystem injects a filesystem implementation. Used by tests for
// fault injection; production code keeps the default.
func WithFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		if fsys == nil {
			fsys = fs.Default
		}
		o.fs = fsys
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:      codec.Default,
		compressor: compress.Default,
		fs:         fs.Default,
		logger:     NoopLogger(),
		metrics:    NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	// Clamping happens after all options are applied so the order of
	// WithCompressor and WithCompressionLevel does not matter.
	if o.levelSet {
		o.level = compress.Clamp(o.compressor, o.level)
	} else {
		o.level = o.compressor.DefaultLevel()
	}
	return o
}
