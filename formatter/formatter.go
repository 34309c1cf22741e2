package formatter

import (
	"bytes"
	"sync"

	"github.com/frondlog/frond/core"
)

// Formatter rewrites the payload of a record. The incoming payload is
// the output of the previous formatting stage, or nil when the record
// has not been formatted yet (in which case rec.Message is the
// payload). The formatted result is appended to buf.
//
// A dispatch node applies its formatter exactly once per record; every
// child of the node receives the same formatted bytes.
type Formatter interface {
	Format(rec *core.Record, payload []byte, buf *bytes.Buffer)
}

// Func adapts a plain function to the Formatter interface.
type Func func(rec *core.Record, payload []byte, buf *bytes.Buffer)

// Format implements Formatter.
func (f Func) Format(rec *core.Record, payload []byte, buf *bytes.Buffer) {
	f(rec, payload, buf)
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// GetBuffer retrieves a reset buffer from the shared pool.
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns a buffer to the shared pool.
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
