// Package diskmap provides a generic, disk-persisted key-value map.
//
// A Store is an in-memory map from any comparable key type to any value type
// that can be serialized to a single versioned, compressed file and reloaded
// equivalent. It targets applications needing simple embedded persistence
// without a database dependency.
//
// # Quick Start
//
//	store := diskmap.New[uint64, Person]("./people.ogma")
//	store.Set(5, Person{FirstName: "John", LastName: "Smith"})
//	if err := store.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
//	store, err := diskmap.Open[uint64, Person]("./people.ogma")
//	person, ok := store.Get(5)
//
// # Persistence Model
//
// Mutations (Set, Delete, Clear, Update) only touch memory; nothing is
// persisted until an explicit Save. Save writes the whole map atomically:
// the destination file is always either the fully-previous or the fully-new
// valid file, never a half-written one, even under abrupt termination.
//
// Opening a path with no file is not an error; the store starts empty.
//
// # Collaborators
//
// The structured codec (see [github.com/hupe1980/diskmap/codec]) and the
// compression algorithm (see [github.com/hupe1980/diskmap/compress]) are
// pluggable via options. Both are compatibility boundaries: open a file with
// the same codec and compressor it was saved with.
//
// # Concurrency
//
// A Store performs no internal locking. Reads may run concurrently with
// other reads; any write requires exclusive access, arranged by the caller.
// Save performs blocking file I/O and should be kept off latency-sensitive
// paths.
package diskmap
