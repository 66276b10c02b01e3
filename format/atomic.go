package format

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hupe1980/diskmap/internal/fs"
)

// TempSuffix distinguishes the sibling temp file written during a save.
const TempSuffix = ".tmp"

// AtomicSave writes a complete store file at path without ever exposing a
// partially-written destination. The write callback receives the temp file;
// it must write the header and the full compressed body.
//
// Protocol: write to <path>.tmp in the same directory, fsync it, rename it
// over path, then fsync the directory so the rename itself is durable. A
// failure at any step before the rename leaves the previous file untouched;
// at worst a stray temp file remains.
func AtomicSave(fsys fs.FileSystem, path string, write func(w io.Writer) error) error {
	if fsys == nil {
		fsys = fs.Default
	}

	tmpPath := path + TempSuffix

	f, err := fsys.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if err := write(f); err != nil {
		_ = f.Close()
		_ = fsys.Remove(tmpPath)
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = fsys.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = fsys.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// The rename is the only visible mutation of the destination.
	if err := fsys.Rename(tmpPath, path); err != nil {
		_ = fsys.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return syncDir(fsys, filepath.Dir(path))
}

// OpenOrEmpty opens the store file at path for reading and validates its
// header, leaving the returned reader positioned at the compressed body.
//
// A missing path, or a path that is not a regular file, is not an error: it
// returns (nil, nil) and the caller starts with an empty document. This is
// what distinguishes "absent" from "corrupt" or "incompatible".
func OpenOrEmpty(fsys fs.FileSystem, path string) (io.ReadCloser, error) {
	if fsys == nil {
		fsys = fs.Default
	}

	st, err := fsys.Stat(path)
	if os.IsNotExist(err) || (err == nil && !st.Mode().IsRegular()) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat store file: %w", err)
	}

	f, err := fsys.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open store file: %w", err)
	}

	if err := ReadHeader(f); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

// syncDir makes a preceding rename in dir durable. Best effort: not all
// platforms support opening or fsyncing a directory.
func syncDir(fsys fs.FileSystem, dir string) error {
	f, err := fsys.OpenFile(dir, os.O_RDONLY, 0)
	if err != nil {
		return nil
	}
	defer f.Close()
	_ = f.Sync()
	return nil
}
