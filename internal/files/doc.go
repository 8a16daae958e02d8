// Package files groups the filesystem-facing packages used for presentation
// discovery.
//
//   - filesystem: read-only filesystem abstraction (OS and in-memory)
//   - scanner: presentation folder discovery and metadata inference
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/deckpick/internal/files/filesystem"
//	    "github.com/vvka-141/deckpick/internal/files/scanner"
//	)
//
//	fsys := filesystem.NewMemoryFileSystem("/ws")
//	fsys.AddFile("presentations/intro/slides.md", "# Intro\n")
//
//	s := scanner.NewScannerWithFS(fsys, logging.NewNullLogger())
//	metas, err := s.Scan("/ws", "")
package files
