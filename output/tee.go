package output

import (
	"github.com/frondlog/frond/core"
)

// Tee fans a record out to multiple child sinks
type Tee struct {
	sinks []Sink
}

// NewTee creates a sink that forwards every record to all children in
// order.
func NewTee(sinks ...Sink) *Tee {
	return &Tee{sinks: sinks}
}

// Write implements Sink. Every child receives the record; the last
// error wins.
func (t *Tee) Write(rec *core.Record, payload []byte) error {
	var lastErr error
	for _, s := range t.sinks {
		if err := s.Write(rec, payload); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Flush implements Sink.
func (t *Tee) Flush() error {
	var lastErr error
	for _, s := range t.sinks {
		if err := s.Flush(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Close implements Sink.
func (t *Tee) Close() error {
	var lastErr error
	for _, s := range t.sinks {
		if err := s.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
