package diskmap

import (
	"fmt"

	"github.com/hupe1980/diskmap/format"
)

// ErrInvalidFile is returned by Open when the file exists but does not begin
// with the expected magic identifier.
var ErrInvalidFile = format.ErrInvalidFile

// WrongVersionError is returned by Open when the magic matched but the
// format version differs from the one this build supports.
type WrongVersionError = format.WrongVersionError

// CodecError indicates that the structured codec failed to produce or
// reconstruct bytes. This typically signals a mismatched schema between the
// types used to write and the types used to read, or corruption past the
// header.
//
// The codec's original error can be accessed via errors.Unwrap.
type CodecError struct {
	Op    string // "encode" or "decode"
	Codec string
	cause error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("codec %s failed to %s: %v", e.Codec, e.Op, e.cause)
}

func (e *CodecError) Unwrap() error { return e.cause }
