// Package format owns the on-disk container layout of a store file and the
// atomic write discipline that keeps the destination file valid at all times.
//
// Layout:
//
//	offset 0:  4 bytes  magic identifier "OGMA"
//	offset 4:  2 bytes  format version, little-endian uint16
//	offset 6:  N bytes  compressed, codec-encoded document
//
// The magic and version are the only bit-exact contract of the format; the
// body is owned by the configured codec and compressor.
package format

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Magic identifies store files before any of their content is trusted.
var Magic = [4]byte{'O', 'G', 'M', 'A'}

// Version is the single format version this build reads and writes.
// A version bump is a hard break: there is no cross-version migration.
const Version uint16 = 2

// headerLen is the fixed number of bytes before the compressed body.
const headerLen = 6

// ErrInvalidFile is returned when a file does not start with the magic
// identifier, signaling corruption or a foreign file at the path.
var ErrInvalidFile = errors.New("file is not a valid store file or is corrupted")

// WrongVersionError is returned when the magic matched but the version tag
// differs from the one this build supports.
type WrongVersionError struct {
	Expected uint16
	Actual   uint16
}

func (e *WrongVersionError) Error() string {
	return fmt.Sprintf("file format is version %d, but this library only supports version %d", e.Actual, e.Expected)
}

// WriteHeader writes the magic identifier and current version to w.
func WriteHeader(w io.Writer) error {
	var hdr [headerLen]byte
	copy(hdr[:4], Magic[:])
	binary.LittleEndian.PutUint16(hdr[4:], Version)

	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}

// ReadHeader reads and validates the magic identifier and version from r,
// leaving r positioned at the start of the compressed body.
func ReadHeader(r io.Reader) error {
	var hdr [headerLen]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	if [4]byte(hdr[:4]) != Magic {
		return ErrInvalidFile
	}

	if version := binary.LittleEndian.Uint16(hdr[4:]); version != Version {
		return &WrongVersionError{Expected: Version, Actual: version}
	}
	return nil
}
