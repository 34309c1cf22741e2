package output

import (
	"github.com/frondlog/frond/core"
)

// Func adapts a function to the Sink interface, for custom
// destinations that don't warrant a full type.
func Func(fn func(rec *core.Record, payload []byte) error) Sink {
	return funcSink{fn: fn}
}

type funcSink struct {
	fn func(rec *core.Record, payload []byte) error
}

func (s funcSink) Write(rec *core.Record, payload []byte) error {
	return s.fn(rec, payload)
}

func (s funcSink) Flush() error { return nil }

func (s funcSink) Close() error { return nil }

// Null returns a sink that accepts and discards every record.
func Null() Sink {
	return nullSink{}
}

type nullSink struct{}

func (nullSink) Write(*core.Record, []byte) error { return nil }

func (nullSink) Flush() error { return nil }

func (nullSink) Close() error { return nil }

// Panic returns a sink that panics with the formatted payload. Chain it
// under a node filtered to levels that must never occur.
func Panic() Sink {
	return panicSink{}
}

type panicSink struct{}

func (panicSink) Write(rec *core.Record, payload []byte) error {
	msg := rec.Message
	if payload != nil {
		msg = string(payload)
	}
	panic(msg)
}

func (panicSink) Flush() error { return nil }

func (panicSink) Close() error { return nil }
