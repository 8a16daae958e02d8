package filesystem

import (
	"errors"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

var (
	errIsDirectory  = errors.New("is a directory")
	errNotDirectory = errors.New("not a directory")
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryFile is a file or directory node
type memoryFile struct {
	absPath string
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Safe for concurrent reads; mutate it before handing it to a scanner.
type MemoryFileSystem struct {
	mu     sync.RWMutex
	files  map[string]*memoryFile // absolute path -> node
	errors map[string]error       // absolute path -> injected error
	root   string
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files:  make(map[string]*memoryFile),
		errors: make(map[string]error),
		root:   root,
	}
	mfs.files[root] = newDirNode(root)
	return mfs
}

func newDirNode(absPath string) *memoryFile {
	return &memoryFile{
		absPath: absPath,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// Root returns the normalized root directory.
func (mfs *MemoryFileSystem) Root() string {
	return mfs.root
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(filePath)
	contentBytes := []byte(content)

	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		content: contentBytes,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(contentBytes)),
			mode:    0644,
			modTime: modTime,
			isDir:   false,
		},
	}

	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an empty directory (and its parents).
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(dirPath)
	if _, exists := mfs.files[absPath]; !exists {
		mfs.files[absPath] = newDirNode(absPath)
	}
	mfs.ensureDirectoriesExist(absPath)
}

// SetError makes every operation on p fail with err. A nil err clears it.
func (mfs *MemoryFileSystem) SetError(p string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(p)
	if err == nil {
		delete(mfs.errors, absPath)
		return
	}
	mfs.errors[absPath] = err
}

// resolve maps a relative or absolute path to a cleaned absolute virtual path.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == filePath {
		return
	}
	if _, exists := mfs.files[dir]; exists {
		return
	}
	mfs.files[dir] = newDirNode(dir)
	mfs.ensureDirectoriesExist(dir)
}

func (mfs *MemoryFileSystem) lookup(op, p string) (*memoryFile, error) {
	absPath := mfs.resolve(p)
	if err, ok := mfs.errors[absPath]; ok {
		return nil, &fs.PathError{Op: op, Path: p, Err: err}
	}
	file, exists := mfs.files[absPath]
	if !exists {
		return nil, &fs.PathError{Op: op, Path: p, Err: fs.ErrNotExist}
	}
	return file, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	file, err := mfs.lookup("open", filePath)
	if err != nil {
		return nil, err
	}
	if file.info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: errIsDirectory}
	}

	content := make([]byte, len(file.content))
	copy(content, file.content)
	return content, nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]DirEntry, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	dir, err := mfs.lookup("open", dirPath)
	if err != nil {
		return nil, err
	}
	if !dir.info.IsDir() {
		return nil, &fs.PathError{Op: "readdirent", Path: dirPath, Err: errNotDirectory}
	}

	prefix := dir.absPath + "/"
	if dir.absPath == "/" {
		prefix = "/"
	}

	var entries []DirEntry
	for p, file := range mfs.files {
		if p == dir.absPath || !strings.HasPrefix(p, prefix) {
			continue
		}
		if strings.Contains(strings.TrimPrefix(p, prefix), "/") {
			continue
		}
		entries = append(entries, fs.FileInfoToDirEntry(file.info))
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	file, err := mfs.lookup("stat", statPath)
	if err != nil {
		return nil, err
	}
	return file.info, nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
