// Package fs provides filesystem abstractions for testability and fault injection.
//
// The package defines two key interfaces:
//
//   - [File]: an open file with read/write/sync capabilities
//   - [FileSystem]: filesystem operations (open, remove, rename, stat)
//
// # Implementations
//
//   - [LocalFS]: production implementation using the standard os package
//   - [FaultyFS]: test utility for fault injection (simulated I/O errors)
//
// Production code should use fs.Default (which is [LocalFS]):
//
//	file, err := fs.Default.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0644)
//
// Tests inject [FaultyFS] to fail at precise points of the save protocol
// (write, sync, close, rename), which is how the atomic-save guarantees are
// verified without real hardware failure modes.
package fs
