// Package compress centralizes streaming compression of store payloads.
//
// A Compressor wraps the file handle directly, so a document is never
// buffered twice: the encoder streams compressed bytes to the file and the
// decoder streams decompressed bytes out of it.
//
// Like the codec, the compressor is a compatibility boundary: a file written
// with one compressor can only be opened with the same one.
package compress

import "io"

// Compressor produces and consumes compressed byte streams.
// Implementations must be safe for concurrent use.
type Compressor interface {
	// Name returns the stable name of the algorithm.
	Name() string
	// MinLevel and MaxLevel bound the valid compression levels.
	MinLevel() int
	MaxLevel() int
	// DefaultLevel is the balanced speed/ratio setting.
	DefaultLevel() int
	// NewWriter returns a streaming encoder around w. Close flushes any
	// buffered data and must be called before the underlying file is synced.
	// The level is clamped into [MinLevel, MaxLevel].
	NewWriter(w io.Writer, level int) (io.WriteCloser, error)
	// NewReader returns a streaming decoder around r.
	NewReader(r io.Reader) (io.ReadCloser, error)
}

// Clamp bounds level into the compressor's valid range. It never fails:
// out-of-range input yields the nearest boundary.
func Clamp(c Compressor, level int) int {
	if level < c.MinLevel() {
		return c.MinLevel()
	}
	if level > c.MaxLevel() {
		return c.MaxLevel()
	}
	return level
}

// Named presets. These resolve against the configured compressor because
// level ranges differ per algorithm.

// Fastest returns the compressor's lowest-effort level.
func Fastest(c Compressor) int { return c.MinLevel() }

// Balanced returns the compressor's default level.
func Balanced(c Compressor) int { return c.DefaultLevel() }

// Smallest returns the compressor's highest-effort level.
func Smallest(c Compressor) int { return c.MaxLevel() }

// ByName returns a built-in compressor by its stable name.
func ByName(name string) (Compressor, bool) {
	switch name {
	case "brotli":
		return Brotli{}, true
	case "zstd":
		return Zstd{}, true
	case "lz4":
		return LZ4{}, true
	default:
		return nil, false
	}
}

// Default is the compressor used when none is configured. Brotli is what the
// current on-disk format version ships with.
var Default Compressor = Brotli{}
