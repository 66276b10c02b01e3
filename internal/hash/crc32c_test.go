package hash

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCRC32CKnownValue(t *testing.T) {
	// RFC 3720 test vector: CRC32-C of 32 zero bytes.
	assert.Equal(t, uint32(0x8a9136aa), CRC32C(make([]byte, 32)))
}

func TestWriterReaderAgree(t *testing.T) {
	payload := []byte("the quick brown fox jumps over the lazy dog")

	var buf bytes.Buffer
	cw := NewWriter(&buf)
	_, err := cw.Write(payload)
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), cw.BytesWritten())

	cr := NewReader(&buf)
	got, err := io.ReadAll(cr)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.Equal(t, int64(len(payload)), cr.BytesRead())

	assert.Equal(t, CRC32C(payload), cw.Sum32())
	assert.Equal(t, cw.Sum32(), cr.Sum32())
}
