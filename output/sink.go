package output

import (
	"github.com/frondlog/frond/core"
)

// Sink is a terminal destination for formatted log records.
//
// Write receives the record and its formatted payload. A nil payload
// means the record was never formatted; sinks then fall back to the raw
// rec.Message. Sinks append their own line separator.
//
// Write errors are reported to the dispatcher, which emits a fallback
// diagnostic instead of propagating the error to the logging call site.
type Sink interface {
	// Write delivers one record
	Write(rec *core.Record, payload []byte) error

	// Flush forces buffered data out
	Flush() error

	// Close flushes and releases resources held by the sink
	Close() error
}
