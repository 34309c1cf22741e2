package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/frondlog/frond/core"
)

// File writes log records to a file opened in append mode, with
// optional size-based rotation
type File struct {
	filename    string
	file        *os.File
	lineSep     []byte
	mu          sync.Mutex
	maxSize     int64
	maxBackups  int
	currentSize int64
	closed      bool
}

// FileConfig holds configuration for the file sink
type FileConfig struct {
	// Path is the location of the log file
	Path string
	// LineSep is the record separator (default "\n")
	LineSep string
	// MaxSize is the maximum size in bytes before rotation (0 = no rotation)
	MaxSize int64
	// MaxBackups is the maximum number of old log files to retain (0 = keep all)
	MaxBackups int
}

// NewFile opens path for appending, creating it and any missing parent
// directories. Open failures surface here, at configuration time.
func NewFile(path string) (*File, error) {
	return NewFileConfig(FileConfig{Path: path})
}

// NewFileConfig creates a file sink from a full configuration.
func NewFileConfig(cfg FileConfig) (*File, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("file sink: path is required")
	}
	if cfg.LineSep == "" {
		cfg.LineSep = "\n"
	}

	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	return &File{
		filename:    cfg.Path,
		file:        file,
		lineSep:     []byte(cfg.LineSep),
		maxSize:     cfg.MaxSize,
		maxBackups:  cfg.MaxBackups,
		currentSize: info.Size(),
	}, nil
}

// Write implements Sink.
func (s *File) Write(rec *core.Record, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("file sink: %s: already closed", s.filename)
	}
	if err := s.rotateIfNeeded(); err != nil {
		return err
	}

	var n int
	var err error
	if payload != nil {
		n, err = s.file.Write(payload)
	} else {
		n, err = io.WriteString(s.file, rec.Message)
	}
	if err != nil {
		return err
	}
	s.currentSize += int64(n)

	n, err = s.file.Write(s.lineSep)
	s.currentSize += int64(n)
	return err
}

// rotateIfNeeded checks and performs rotation if needed
func (s *File) rotateIfNeeded() error {
	if s.maxSize <= 0 || s.currentSize < s.maxSize {
		return nil
	}
	return s.rotate()
}

// rotate performs the actual file rotation
func (s *File) rotate() error {
	// Sync and close current file
	if err := s.file.Sync(); err != nil {
		return err
	}
	if err := s.file.Close(); err != nil {
		return err
	}

	// Rename current file with timestamp
	timestamp := time.Now().Format("2006-01-02T15-04-05")
	rotatedName := fmt.Sprintf("%s.%s", s.filename, timestamp)

	if err := os.Rename(s.filename, rotatedName); err != nil {
		// If rename fails, try to reopen the original file
		file, openErr := os.OpenFile(s.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if openErr != nil {
			return fmt.Errorf("rotation failed: %v, reopen failed: %v", err, openErr)
		}
		s.file = file
		return err
	}

	if s.maxBackups > 0 {
		s.cleanupOldBackups()
	}

	file, err := os.OpenFile(s.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	s.file = file
	s.currentSize = 0
	return nil
}

// cleanupOldBackups removes old backup files based on MaxBackups
func (s *File) cleanupOldBackups() {
	dir := filepath.Dir(s.filename)
	base := filepath.Base(s.filename)

	pattern := filepath.Join(dir, base+".*")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return
	}

	var backups []string
	for _, match := range matches {
		if strings.HasPrefix(filepath.Base(match), base+".") {
			backups = append(backups, match)
		}
	}

	// Sort by modification time (oldest first)
	sort.Slice(backups, func(i, j int) bool {
		infoI, errI := os.Stat(backups[i])
		infoJ, errJ := os.Stat(backups[j])
		if errI != nil || errJ != nil {
			return false
		}
		return infoI.ModTime().Before(infoJ.ModTime())
	})

	if len(backups) > s.maxBackups {
		for _, file := range backups[:len(backups)-s.maxBackups] {
			if err := os.Remove(file); err != nil {
				return
			}
		}
	}
}

// Flush implements Sink.
func (s *File) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	return s.file.Sync()
}

// Close implements Sink.
func (s *File) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.file.Sync(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}
