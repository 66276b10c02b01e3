package diskmap

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"time"

	"github.com/hupe1980/diskmap/format"
	"github.com/hupe1980/diskmap/internal/hash"
)

// record is the on-wire form of a single entry.
type record[K comparable, V any] struct {
	Key   K `json:"Key" msgpack:"Key"`
	Value V `json:"Value" msgpack:"Value"`
}

// document is the transient wire representation of the whole map. It only
// exists inside Save and Open; fields like store-level metadata could be
// added later.
type document[K comparable, V any] struct {
	Store []record[K, V] `json:"Store" msgpack:"Store"`
}

// Store is a generic in-memory map that persists to a single file on Save.
//
// The in-memory map is the sole authoritative state; configuration is
// supplied fresh on every New/Open and is immutable afterwards. A Store is
// not safe for concurrent writes; see the package documentation.
type Store[K comparable, V any] struct {
	m        map[K]V
	path     string
	opts     options
	checksum uint32
}

// New creates an empty Store backed by the file at path. Nothing is read or
// written until Save is called; New never fails.
func New[K comparable, V any](path string, optFns ...Option) *Store[K, V] {
	return &Store[K, V]{
		m:    make(map[K]V),
		path: path,
		opts: applyOptions(optFns),
	}
}

// Open reconstructs a Store from the file at path. A missing file is not an
// error: the Store starts empty, as on first run. An existing file is
// validated (magic, version), decompressed and decoded eagerly into memory.
//
// Later duplicate keys in the on-disk document overwrite earlier ones,
// consistent with map insertion semantics.
func Open[K comparable, V any](path string, optFns ...Option) (*Store[K, V], error) {
	s := New[K, V](path, optFns...)

	start := time.Now()

	rc, err := format.OpenOrEmpty(s.opts.fs, path)
	if err != nil {
		s.opts.metrics.RecordLoad(time.Since(start), 0, err)
		s.opts.logger.LogOpen(path, 0, 0, time.Since(start), err)
		return nil, err
	}
	if rc == nil {
		// First run always starts empty.
		return s, nil
	}
	defer rc.Close()

	err = s.load(rc)
	s.opts.metrics.RecordLoad(time.Since(start), len(s.m), err)
	s.opts.logger.LogOpen(path, len(s.m), s.checksum, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// load decompresses and decodes the body positioned after the header.
func (s *Store[K, V]) load(body io.Reader) error {
	hr := hash.NewReader(body)

	zr, err := s.opts.compressor.NewReader(hr)
	if err != nil {
		return fmt.Errorf("failed to open %s decompressor: %w", s.opts.compressor.Name(), err)
	}
	data, err := io.ReadAll(zr)
	_ = zr.Close()
	if err != nil {
		return fmt.Errorf("failed to decompress store file: %w", err)
	}

	var doc document[K, V]
	if err := s.opts.codec.Unmarshal(data, &doc); err != nil {
		return &CodecError{Op: "decode", Codec: s.opts.codec.Name(), cause: err}
	}

	for _, rec := range doc.Store {
		s.m[rec.Key] = rec.Value
	}
	s.checksum = hr.Sum32()
	return nil
}

// Save persists the full map to the configured path. The file is written to
// a sibling temp path, synced, and renamed over the destination; a failure
// at any point leaves the previously saved file (or its absence) untouched.
//
// Save blocks until the data is durable. Mutations made after Save returns
// are not persisted until the next Save.
func (s *Store[K, V]) Save() (err error) {
	start := time.Now()
	var sum uint32
	var bodyBytes int64

	defer func() {
		s.opts.metrics.RecordSave(time.Since(start), bodyBytes, err)
		s.opts.logger.LogSave(s.path, len(s.m), bodyBytes, sum, time.Since(start), err)
	}()

	doc := document[K, V]{Store: make([]record[K, V], 0, len(s.m))}
	for k, v := range s.m {
		doc.Store = append(doc.Store, record[K, V]{Key: k, Value: v})
	}

	// Encoding happens before any file is touched, so an encode failure
	// cannot disturb the previous file.
	data, err := s.opts.codec.Marshal(doc)
	if err != nil {
		return &CodecError{Op: "encode", Codec: s.opts.codec.Name(), cause: err}
	}

	err = format.AtomicSave(s.opts.fs, s.path, func(w io.Writer) error {
		if err := format.WriteHeader(w); err != nil {
			return err
		}

		hw := hash.NewWriter(w)
		zw, err := s.opts.compressor.NewWriter(hw, s.opts.level)
		if err != nil {
			return fmt.Errorf("failed to open %s compressor: %w", s.opts.compressor.Name(), err)
		}
		if _, err := zw.Write(data); err != nil {
			return fmt.Errorf("failed to compress store file: %w", err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("failed to flush %s compressor: %w", s.opts.compressor.Name(), err)
		}

		sum = hw.Sum32()
		bodyBytes = hw.BytesWritten()
		return nil
	})
	if err != nil {
		return err
	}

	s.checksum = sum
	return nil
}

// Get returns the value stored under key.
func (s *Store[K, V]) Get(key K) (V, bool) {
	v, ok := s.m[key]
	return v, ok
}

// Contains reports whether key is present.
func (s *Store[K, V]) Contains(key K) bool {
	_, ok := s.m[key]
	return ok
}

// Set inserts or replaces the value under key, returning the previous value
// and whether the key already existed.
func (s *Store[K, V]) Set(key K, value V) (V, bool) {
	prev, ok := s.m[key]
	s.m[key] = value
	return prev, ok
}

// Update applies fn to the value under key in place. It returns false, and
// does not call fn, if the key is absent.
func (s *Store[K, V]) Update(key K, fn func(V) V) bool {
	v, ok := s.m[key]
	if !ok {
		return false
	}
	s.m[key] = fn(v)
	return true
}

// Delete removes key, returning the prior value and whether it was present.
func (s *Store[K, V]) Delete(key K) (V, bool) {
	prev, ok := s.m[key]
	if ok {
		delete(s.m, key)
	}
	return prev, ok
}

// Clear removes all entries. It does not touch the file on disk.
func (s *Store[K, V]) Clear() {
	clear(s.m)
}

// Len returns the number of entries.
func (s *Store[K, V]) Len() int { return len(s.m) }

// IsEmpty reports whether the store has no entries.
func (s *Store[K, V]) IsEmpty() bool { return len(s.m) == 0 }

// Keys iterates over the keys. Iteration order is unspecified.
func (s *Store[K, V]) Keys() iter.Seq[K] { return maps.Keys(s.m) }

// Values iterates over the values. Iteration order is unspecified.
func (s *Store[K, V]) Values() iter.Seq[V] { return maps.Values(s.m) }

// All iterates over key-value pairs. Iteration order is unspecified.
func (s *Store[K, V]) All() iter.Seq2[K, V] { return maps.All(s.m) }

// Path returns the backing file path.
func (s *Store[K, V]) Path() string { return s.path }

// Checksum returns the CRC32-C of the compressed body written by the last
// Save or read by Open, or zero if the store has never touched disk. The
// checksum is advisory and not part of the file format.
func (s *Store[K, V]) Checksum() uint32 { return s.checksum }
