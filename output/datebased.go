package output

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/frondlog/frond/core"
)

// DateBased writes to files named prefix + date suffix, switching to a
// new file whenever the computed suffix changes. With the default
// layout a sink created as NewDateBased("app.log.") produces files like
// "app.log.2026-08-24", rolling at midnight.
type DateBased struct {
	mu      sync.Mutex
	prefix  string
	layout  string
	utc     bool
	lineSep []byte
	suffix  string
	file    *os.File
	closed  bool
}

// DateBasedConfig holds configuration for the date-based file sink
type DateBasedConfig struct {
	// Prefix is the fixed part of the file path
	Prefix string
	// Layout is the time layout for the suffix (default "2006-01-02")
	Layout string
	// UTC computes the suffix in UTC instead of local time
	UTC bool
	// LineSep is the record separator (default "\n")
	LineSep string
}

// NewDateBased creates a date-based sink with the default daily layout.
// The file for the current date is opened immediately so configuration
// errors surface at build time.
func NewDateBased(prefix string) (*DateBased, error) {
	return NewDateBasedConfig(DateBasedConfig{Prefix: prefix})
}

// NewDateBasedConfig creates a date-based sink from a full configuration.
func NewDateBasedConfig(cfg DateBasedConfig) (*DateBased, error) {
	if cfg.Layout == "" {
		cfg.Layout = "2006-01-02"
	}
	if cfg.LineSep == "" {
		cfg.LineSep = "\n"
	}

	s := &DateBased{
		prefix:  cfg.Prefix,
		layout:  cfg.Layout,
		utc:     cfg.UTC,
		lineSep: []byte(cfg.LineSep),
	}
	if err := s.switchFile(s.computeSuffix(time.Now())); err != nil {
		return nil, err
	}
	return s, nil
}

// computeSuffix formats the file suffix for the given time.
func (s *DateBased) computeSuffix(t time.Time) string {
	if s.utc {
		t = t.UTC()
	}
	return t.Format(s.layout)
}

// switchFile closes the current file (if any) and opens the file for
// the given suffix. Callers hold the lock except during construction.
func (s *DateBased) switchFile(suffix string) error {
	if s.file != nil {
		s.file.Sync()
		if err := s.file.Close(); err != nil {
			return err
		}
		s.file = nil
	}

	path := s.prefix + suffix
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	s.file = file
	s.suffix = suffix
	return nil
}

// Write implements Sink. Rollover errors are returned to the dispatcher
// like any other write failure; the record that triggered them is lost.
func (s *DateBased) Write(rec *core.Record, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return os.ErrClosed
	}

	t := rec.Time
	if t.IsZero() {
		t = time.Now()
	}
	if suffix := s.computeSuffix(t); suffix != s.suffix {
		if err := s.switchFile(suffix); err != nil {
			return err
		}
	}

	var err error
	if payload != nil {
		_, err = s.file.Write(payload)
	} else {
		_, err = io.WriteString(s.file, rec.Message)
	}
	if err != nil {
		return err
	}
	_, err = s.file.Write(s.lineSep)
	return err
}

// Flush implements Sink.
func (s *DateBased) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.file == nil {
		return nil
	}
	return s.file.Sync()
}

// Close implements Sink.
func (s *DateBased) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.file == nil {
		return nil
	}
	s.file.Sync()
	return s.file.Close()
}
