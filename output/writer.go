package output

import (
	"io"
	"os"
	"sync"

	"github.com/frondlog/frond/core"
)

// Writer is a sink that writes each payload followed by a line
// separator to an io.Writer. The writer is guarded by a mutex so a
// Writer may be chained into several dispatch nodes at once.
//
// Writer does not take ownership of the underlying io.Writer; Close
// only flushes.
type Writer struct {
	mu      sync.Mutex
	w       io.Writer
	lineSep []byte
}

// NewWriter creates a writer sink with "\n" as the line separator.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, lineSep: []byte("\n")}
}

// LineSep overrides the line separator and returns the sink.
func (s *Writer) LineSep(sep string) *Writer {
	s.mu.Lock()
	s.lineSep = []byte(sep)
	s.mu.Unlock()
	return s
}

// Stdout returns a writer sink over os.Stdout.
func Stdout() *Writer {
	return NewWriter(os.Stdout)
}

// Stderr returns a writer sink over os.Stderr.
func Stderr() *Writer {
	return NewWriter(os.Stderr)
}

// Write implements Sink.
func (s *Writer) Write(rec *core.Record, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if payload != nil {
		_, err = s.w.Write(payload)
	} else {
		_, err = io.WriteString(s.w, rec.Message)
	}
	if err != nil {
		return err
	}
	_, err = s.w.Write(s.lineSep)
	return err
}

// Flush implements Sink. It forwards to the underlying writer when it
// exposes a Flush or Sync method.
func (s *Writer) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch w := s.w.(type) {
	case interface{ Flush() error }:
		return w.Flush()
	case interface{ Sync() error }:
		return w.Sync()
	}
	return nil
}

// Close implements Sink. The underlying writer is not closed because
// the sink does not own it.
func (s *Writer) Close() error {
	return s.Flush()
}
