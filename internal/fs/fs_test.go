package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFSRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.bin")

	f, err := Default.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	require.NoError(t, err)
	_, err = f.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, f.Sync())
	require.NoError(t, f.Close())

	st, err := Default.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5), st.Size())

	renamed := filepath.Join(dir, "renamed.bin")
	require.NoError(t, Default.Rename(path, renamed))
	_, err = Default.Stat(path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, Default.Remove(renamed))
}

func TestFaultyFSWriteLimit(t *testing.T) {
	dir := t.TempDir()
	ffs := NewFaultyFS(nil)
	ffs.AddRule(".tmp", Fault{FailAfterBytes: 4})

	f, err := ffs.OpenFile(filepath.Join(dir, "store.tmp"), os.O_WRONLY|os.O_CREATE, 0644)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Write([]byte("1234"))
	require.NoError(t, err)
	_, err = f.Write([]byte("5"))
	assert.ErrorIs(t, err, ErrInjected)
}

func TestFaultyFSSyncAndRename(t *testing.T) {
	dir := t.TempDir()
	ffs := NewFaultyFS(nil)
	ffs.AddRule("bad", Fault{FailOnSync: true, FailOnRename: true})

	path := filepath.Join(dir, "bad.tmp")
	f, err := ffs.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0644)
	require.NoError(t, err)
	assert.ErrorIs(t, f.Sync(), ErrInjected)
	require.NoError(t, f.Close())

	assert.ErrorIs(t, ffs.Rename(path, filepath.Join(dir, "good")), ErrInjected)

	// Unmatched files pass through untouched.
	g, err := ffs.OpenFile(filepath.Join(dir, "ok"), os.O_WRONLY|os.O_CREATE, 0644)
	require.NoError(t, err)
	require.NoError(t, g.Sync())
	require.NoError(t, g.Close())
}
