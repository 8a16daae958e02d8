package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_ReadDir(t *testing.T) {
	dir := t.TempDir()
	os.MkdirAll(filepath.Join(dir, "b-deck"), 0755)
	os.MkdirAll(filepath.Join(dir, "a-deck"), 0755)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644)

	entries, err := NewOSFileSystem().ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir(%q) error = %v", dir, err)
	}
	if len(entries) != 3 {
		t.Fatalf("ReadDir() returned %d entries, want 3", len(entries))
	}
	if entries[0].Name() != "a-deck" || !entries[0].IsDir() {
		t.Errorf("first entry = %q (dir=%v), want a-deck directory", entries[0].Name(), entries[0].IsDir())
	}
}

func TestOSFileSystem_ReadDir_NotExistIsDetectable(t *testing.T) {
	_, err := NewOSFileSystem().ReadDir(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("ReadDir(missing) should return error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadDir(missing) error = %v, want fs.ErrNotExist in chain", err)
	}
}

func TestOSFileSystem_ReadFileAndStat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "slides.md")
	os.WriteFile(path, []byte("# Hello"), 0644)

	p := NewOSFileSystem()

	content, err := p.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(content) != "# Hello" {
		t.Errorf("ReadFile() = %q, want %q", content, "# Hello")
	}

	info, err := p.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.IsDir() || info.Name() != "slides.md" {
		t.Errorf("Stat() = %s dir=%v, want regular slides.md", info.Name(), info.IsDir())
	}

	if _, err := p.Stat(filepath.Join(dir, "nope")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(nope) error = %v, want fs.ErrNotExist", err)
	}
}
