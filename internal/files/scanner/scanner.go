package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vvka-141/deckpick/internal/files/filesystem"
	"github.com/vvka-141/deckpick/internal/metadata"
	"github.com/vvka-141/deckpick/pkg/deckpick"
)

// Scanner discovers presentation folders and infers their metadata.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider and logger are also thread-safe.
type Scanner struct {
	fsProvider   filesystem.FileSystemProvider
	logger       deckpick.Logger
	manifestFile string
	slidesFile   string
	workers      int
}

// Option customizes a Scanner.
type Option func(*Scanner)

// WithManifestFile overrides the manifest file name (default package.json).
func WithManifestFile(name string) Option {
	return func(s *Scanner) {
		if name != "" {
			s.manifestFile = name
		}
	}
}

// WithSlidesFile overrides the content file name (default slides.md).
func WithSlidesFile(name string) Option {
	return func(s *Scanner) {
		if name != "" {
			s.slidesFile = name
		}
	}
}

// WithWorkers bounds how many folders are inspected concurrently.
// Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.workers = n
		}
	}
}

// NewScanner creates a scanner over the OS filesystem.
// Panics if logger is nil.
func NewScanner(logger deckpick.Logger, opts ...Option) *Scanner {
	return NewScannerWithFS(filesystem.NewOSFileSystem(), logger, opts...)
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider or logger is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider, logger deckpick.Logger, opts ...Option) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	s := &Scanner{
		fsProvider:   fsProvider,
		logger:       logger,
		manifestFile: deckpick.DefaultManifestFile,
		slidesFile:   deckpick.DefaultSlidesFile,
		workers:      deckpick.DefaultScanWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan lists presentationsDir and returns metadata for every folder that holds
// a manifest or a slides file, sorted by folder name in locale order.
//
// presentationsDir defaults to root/presentations; a relative value is
// resolved against root. A presentations directory that does not exist yields
// an empty result. Any other listing failure is returned wrapped in
// deckpick.ErrScanRoot. Problems inside individual folders are reported as
// warnings and never fail the scan.
func (s *Scanner) Scan(root, presentationsDir string) ([]deckpick.PresentationMetadata, error) {
	root, presentationsDir, err := resolveDirs(root, presentationsDir)
	if err != nil {
		return nil, err
	}

	entries, err := s.fsProvider.ReadDir(presentationsDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Verbose("Presentations directory %s does not exist", presentationsDir)
			return []deckpick.PresentationMetadata{}, nil
		}
		return nil, fmt.Errorf("%w %s: %w", deckpick.ErrScanRoot, presentationsDir, err)
	}

	var folders []string
	for _, entry := range entries {
		if entry.IsDir() {
			folders = append(folders, entry.Name())
		}
	}
	s.logger.Verbose("Inspecting %d folder(s) in %s", len(folders), presentationsDir)

	// Each worker owns one slot, so no locking is needed.
	slots := make([]*deckpick.PresentationMetadata, len(folders))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, folder := range folders {
		i, folder := i, folder
		g.Go(func() error {
			slots[i] = s.inspect(folder, presentationsDir, root)
			return nil
		})
	}
	_ = g.Wait()

	result := make([]deckpick.PresentationMetadata, 0, len(slots))
	for i, meta := range slots {
		if meta == nil {
			s.logger.Verbose("Skipping %s: no %s or %s", folders[i], s.manifestFile, s.slidesFile)
			continue
		}
		result = append(result, *meta)
	}

	SortByFolder(result)
	return result, nil
}

// inspect builds the record for one folder, or returns nil when the folder
// has neither a manifest nor a slides file.
func (s *Scanner) inspect(folder, presentationsDir, root string) *deckpick.PresentationMetadata {
	dir := filepath.Join(presentationsDir, folder)
	manifestPath := filepath.Join(dir, s.manifestFile)
	slidesPath := filepath.Join(dir, s.slidesFile)

	manifest := s.readManifest(manifestPath)
	slidesExists := s.probeSlides(slidesPath)

	if manifest == nil && !slidesExists {
		return nil
	}

	meta := deckpick.PresentationMetadata{
		Folder:  folder,
		Scripts: map[string]string{},
	}

	if manifest != nil {
		meta.Workspace = manifest.Name
		meta.Scripts = manifest.Scripts
		meta.Title = manifest.ResolvedTitle()
	}

	if slidesExists {
		meta.SlidesPath = slidesPath
		meta.RelativeSlidesPath = s.relativePath(root, slidesPath)
		if meta.Title == "" {
			meta.Title = s.inferTitle(slidesPath)
		}
	}

	return &meta
}

// readManifest returns nil when the manifest is missing, unreadable or unparseable.
func (s *Scanner) readManifest(manifestPath string) *metadata.Manifest {
	content, err := s.fsProvider.ReadFile(manifestPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("Failed to read %s: %v", manifestPath, err)
		}
		return nil
	}

	manifest, err := metadata.ParseManifest(content, manifestPath)
	if err != nil {
		s.logger.Warn("Failed to read %s: %v", manifestPath, err)
		return nil
	}
	return manifest
}

func (s *Scanner) probeSlides(slidesPath string) bool {
	if _, err := s.fsProvider.Stat(slidesPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("Failed to check %s: %v", slidesPath, err)
		}
		return false
	}
	return true
}

func (s *Scanner) inferTitle(slidesPath string) string {
	content, err := s.fsProvider.ReadFile(slidesPath)
	if err != nil {
		s.logger.Warn("Failed to read title from %s: %v", slidesPath, err)
		return ""
	}
	return metadata.InferTitle(string(content))
}

func (s *Scanner) relativePath(root, target string) string {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		s.logger.Verbose("Cannot express %s relative to %s: %v", target, root, err)
		return target
	}
	return rel
}

// resolveDirs makes root absolute and resolves presentationsDir against it.
func resolveDirs(root, presentationsDir string) (string, string, error) {
	if !filepath.IsAbs(root) {
		abs, err := filepath.Abs(root)
		if err != nil {
			return "", "", fmt.Errorf("failed to resolve root %s: %w", root, err)
		}
		root = abs
	}

	switch {
	case presentationsDir == "":
		presentationsDir = filepath.Join(root, deckpick.DefaultPresentationsDir)
	case !filepath.IsAbs(presentationsDir):
		presentationsDir = filepath.Join(root, presentationsDir)
	}
	return root, filepath.Clean(presentationsDir), nil
}

// SortByFolder orders records by folder name using root-locale collation.
// Names that collate equal fall back to byte order so the result is total.
func SortByFolder(metas []deckpick.PresentationMetadata) {
	c := collate.New(language.Und)
	sort.SliceStable(metas, func(i, j int) bool {
		if r := c.CompareString(metas[i].Folder, metas[j].Folder); r != 0 {
			return r < 0
		}
		return metas[i].Folder < metas[j].Folder
	})
}

// Verify Scanner implements the interface at compile time
var _ deckpick.MetadataScanner = (*Scanner)(nil)
