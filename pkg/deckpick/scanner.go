package deckpick

// MetadataScanner discovers presentation folders under a workspace root.
// Implementations must be safe for concurrent use by multiple goroutines.
type MetadataScanner interface {
	// Scan lists presentationsDir (root/presentations when empty) and returns
	// one record per folder holding a manifest or a slides file, sorted by folder.
	// A missing presentationsDir yields an empty result and no error.
	Scan(root, presentationsDir string) ([]PresentationMetadata, error)
}
