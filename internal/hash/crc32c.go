// Package hash provides CRC32-Castagnoli checksum helpers.
//
// CRC32-C is used for detecting accidental corruption only; it is not
// cryptographically secure and must not be used for tamper detection.
package hash

import (
	"hash"
	"hash/crc32"
	"io"
)

// crc32cTable is pre-computed for the Castagnoli polynomial.
// Computing this once avoids repeated MakeTable calls.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
// Uses hardware acceleration when available (SSE4.2, ARM CRC).
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// Writer tees everything written through it into a running CRC32-C sum.
type Writer struct {
	w       io.Writer
	hash    hash.Hash32
	written int64
}

// NewWriter creates a checksumming writer around w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, hash: crc32.New(crc32cTable)}
}

// Write implements io.Writer.
func (cw *Writer) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	if n > 0 {
		cw.hash.Write(p[:n]) //nolint:errcheck // hash.Hash never errors
		cw.written += int64(n)
	}
	return n, err
}

// Sum32 returns the checksum of everything written so far.
func (cw *Writer) Sum32() uint32 { return cw.hash.Sum32() }

// BytesWritten returns the number of bytes forwarded to the underlying writer.
func (cw *Writer) BytesWritten() int64 { return cw.written }

// Reader tees everything read through it into a running CRC32-C sum.
type Reader struct {
	r    io.Reader
	hash hash.Hash32
	read int64
}

// NewReader creates a checksumming reader around r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, hash: crc32.New(crc32cTable)}
}

// Read implements io.Reader.
func (cr *Reader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	if n > 0 {
		cr.hash.Write(p[:n]) //nolint:errcheck // hash.Hash never errors
		cr.read += int64(n)
	}
	return n, err
}

// Sum32 returns the checksum of everything read so far.
func (cr *Reader) Sum32() uint32 { return cr.hash.Sum32() }

// BytesRead returns the number of bytes consumed from the underlying reader.
func (cr *Reader) BytesRead() int64 { return cr.read }
