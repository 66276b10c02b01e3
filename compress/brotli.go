package compress

import (
	"io"

	"github.com/andybalholm/brotli"
)

// Brotli compresses with the brotli algorithm (levels 0-11).
//
// This is the algorithm behind the current on-disk format version; its
// default level of 5 favors ratio over speed, which suits write-rarely
// read-rarely store files.
type Brotli struct{}

// Name returns "brotli".
func (Brotli) Name() string { return "brotli" }

// MinLevel returns 0 (fastest).
func (Brotli) MinLevel() int { return brotli.BestSpeed }

// MaxLevel returns 11 (smallest).
func (Brotli) MaxLevel() int { return brotli.BestCompression }

// DefaultLevel returns 5.
func (Brotli) DefaultLevel() int { return 5 }

// NewWriter returns a streaming brotli encoder around w.
func (c Brotli) NewWriter(w io.Writer, level int) (io.WriteCloser, error) {
	return brotli.NewWriterLevel(w, Clamp(c, level)), nil
}

// NewReader returns a streaming brotli decoder around r.
func (Brotli) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(brotli.NewReader(r)), nil
}
