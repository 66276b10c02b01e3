package format

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf))
	assert.Equal(t, 6, buf.Len())

	require.NoError(t, ReadHeader(&buf))
	assert.Equal(t, 0, buf.Len(), "reader must be positioned at the body")
}

func TestHeaderLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf))

	raw := buf.Bytes()
	assert.Equal(t, []byte("OGMA"), raw[:4])
	assert.Equal(t, Version, binary.LittleEndian.Uint16(raw[4:6]))
}

func TestReadHeaderInvalidMagic(t *testing.T) {
	raw := []byte{'N', 'O', 'P', 'E', 2, 0, 'x', 'y'}
	err := ReadHeader(bytes.NewReader(raw))
	assert.ErrorIs(t, err, ErrInvalidFile)
}

func TestReadHeaderWrongVersion(t *testing.T) {
	raw := []byte{'O', 'G', 'M', 'A', 9, 0}
	err := ReadHeader(bytes.NewReader(raw))

	var wv *WrongVersionError
	require.ErrorAs(t, err, &wv)
	assert.Equal(t, Version, wv.Expected)
	assert.Equal(t, uint16(9), wv.Actual)
	assert.Contains(t, wv.Error(), "version 9")
}

func TestReadHeaderTruncated(t *testing.T) {
	err := ReadHeader(bytes.NewReader([]byte{'O', 'G'}))
	require.Error(t, err)
	// A short file is an I/O-level failure, not a recognized-but-invalid file.
	assert.NotErrorIs(t, err, ErrInvalidFile)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
