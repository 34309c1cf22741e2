package output

import (
	"github.com/frondlog/frond/core"
)

// Chan sends each payload, with the line separator appended, to a
// string channel. Sends block when the channel is full, so callers
// should size the buffer for their burst rate. The channel is never
// closed by the sink.
type Chan struct {
	ch      chan<- string
	lineSep string
}

// NewChan creates a channel sink with "\n" as the line separator.
func NewChan(ch chan<- string) *Chan {
	return &Chan{ch: ch, lineSep: "\n"}
}

// LineSep overrides the line separator and returns the sink.
func (s *Chan) LineSep(sep string) *Chan {
	s.lineSep = sep
	return s
}

// Write implements Sink.
func (s *Chan) Write(rec *core.Record, payload []byte) error {
	msg := rec.Message
	if payload != nil {
		msg = string(payload)
	}
	s.ch <- msg + s.lineSep
	return nil
}

// Flush implements Sink.
func (s *Chan) Flush() error { return nil }

// Close implements Sink.
func (s *Chan) Close() error { return nil }
