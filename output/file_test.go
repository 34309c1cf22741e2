package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFile_WriteAndAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	s, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	s.Write(rec("first"), nil)
	s.Write(rec("second"), []byte("formatted"))
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got, want := string(data), "first\nformatted\n"; got != want {
		t.Errorf("file contains %q, want %q", got, want)
	}

	// Reopening appends instead of truncating.
	s2, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile (reopen): %v", err)
	}
	s2.Write(rec("third"), nil)
	s2.Close()

	data, _ = os.ReadFile(path)
	if got, want := string(data), "first\nformatted\nthird\n"; got != want {
		t.Errorf("file contains %q, want %q", got, want)
	}
}

func TestFile_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "app.log")

	s, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

func TestFile_EmptyPath(t *testing.T) {
	if _, err := NewFile(""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestFile_Rotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	s, err := NewFileConfig(FileConfig{Path: path, MaxSize: 10})
	if err != nil {
		t.Fatalf("NewFileConfig: %v", err)
	}
	defer s.Close()

	s.Write(rec("0123456789"), nil) // fills the file past MaxSize
	s.Write(rec("after"), nil)      // triggers rotation first

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	var rotated int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "app.log.") {
			rotated++
		}
	}
	if rotated != 1 {
		t.Errorf("found %d rotated files, want 1", rotated)
	}

	data, _ := os.ReadFile(path)
	if got, want := string(data), "after\n"; got != want {
		t.Errorf("current file contains %q, want %q", got, want)
	}
}

func TestFile_MaxBackups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	s, err := NewFileConfig(FileConfig{Path: path, MaxSize: 4, MaxBackups: 2})
	if err != nil {
		t.Fatalf("NewFileConfig: %v", err)
	}
	defer s.Close()

	// Each write exceeds MaxSize, so every following write rotates.
	// Rotated names carry second-resolution timestamps; space the writes
	// out so the names are distinct.
	for i := 0; i < 4; i++ {
		s.Write(rec("12345"), nil)
		time.Sleep(1100 * time.Millisecond)
	}

	entries, _ := os.ReadDir(dir)
	var rotated int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "app.log.") {
			rotated++
		}
	}
	if rotated > 2 {
		t.Errorf("found %d rotated files, want at most 2", rotated)
	}
}

func TestFile_WriteAfterClose(t *testing.T) {
	s, err := NewFile(filepath.Join(t.TempDir(), "app.log"))
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	s.Close()

	if err := s.Write(rec("late"), nil); err == nil {
		t.Error("expected error writing to closed sink")
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
