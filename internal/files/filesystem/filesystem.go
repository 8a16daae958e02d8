package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// DirEntry is an alias for fs.DirEntry. Listing returns entries rather than
// FileInfo so that a single unreadable entry cannot fail the whole listing.
type DirEntry = fs.DirEntry

// FileSystemProvider is the read-only filesystem surface used for discovery.
// Errors for missing paths must satisfy errors.Is(err, fs.ErrNotExist).
type FileSystemProvider interface {
	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// ReadDir returns the immediate entries of the directory at path,
	// sorted by name.
	ReadDir(path string) ([]DirEntry, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}
