package core

import (
	"sync"
	"time"
)

// Record is a single log event as seen by the routing layer. It is
// created at the call site and treated as read-only by every dispatch
// node and sink it passes through.
//
// Target names the origin of the record, conventionally a
// slash-separated package path ("app/net/http"). Per-target level
// overrides match against it.
type Record struct {
	Time    time.Time
	Level   Level
	Target  string
	Message string
	Fields  []Field
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{
			Fields: make([]Field, 0, 8), // Pre-allocate for 8 fields
		}
	},
}

// GetRecord retrieves a Record from the pool with Time stamped to now.
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Time = time.Now()
	r.Fields = r.Fields[:0]
	return r
}

// PutRecord returns a Record to the pool. Callers must not retain the
// record or its Fields slice afterwards.
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	// Re-slice to zero length; GC handles reference cleanup
	r.Fields = r.Fields[:0]
	r.Target = ""
	r.Message = ""
	recordPool.Put(r)
}
