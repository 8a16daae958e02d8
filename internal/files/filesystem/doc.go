// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines the read-only operations presentation discovery needs,
// enabling testability through an in-memory implementation while maintaining
// compatibility with the OS filesystem.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing, with per-path
//     error injection
//
// Both implementations report missing paths with errors wrapping fs.ErrNotExist,
// so callers can tell "absent" apart from "unreadable".
package filesystem
