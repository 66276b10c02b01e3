package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// lz4Levels maps the integer level scale onto the lz4 option constants.
var lz4Levels = [...]lz4.CompressionLevel{
	lz4.Fast,
	lz4.Level1,
	lz4.Level2,
	lz4.Level3,
	lz4.Level4,
	lz4.Level5,
	lz4.Level6,
	lz4.Level7,
	lz4.Level8,
	lz4.Level9,
}

// LZ4 compresses with LZ4 (levels 0-9, where 0 is the fast path).
//
// Weakest ratio of the built-in algorithms but by far the cheapest; use it
// when save latency matters more than file size.
type LZ4 struct{}

// Name returns "lz4".
func (LZ4) Name() string { return "lz4" }

// MinLevel returns 0 (fast path).
func (LZ4) MinLevel() int { return 0 }

// MaxLevel returns 9 (smallest).
func (LZ4) MaxLevel() int { return 9 }

// DefaultLevel returns 0. LZ4's fast path is its reason to exist.
func (LZ4) DefaultLevel() int { return 0 }

// NewWriter returns a streaming lz4 encoder around w.
func (c LZ4) NewWriter(w io.Writer, level int) (io.WriteCloser, error) {
	zw := lz4.NewWriter(w)
	if err := zw.Apply(lz4.CompressionLevelOption(lz4Levels[Clamp(c, level)])); err != nil {
		return nil, err
	}
	return zw, nil
}

// NewReader returns a streaming lz4 decoder around r.
func (LZ4) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}
