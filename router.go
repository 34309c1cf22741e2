package frond

import (
	"fmt"
	"io"
	"os"

	"github.com/frondlog/frond/core"
	"github.com/frondlog/frond/formatter"
	"github.com/frondlog/frond/output"
)

// Logger is a frozen dispatch tree. It is immutable and safe for
// concurrent use without locking on the read path.
type Logger struct {
	root *node
}

// node is one dispatch node of the built tree.
type node struct {
	format       formatter.Formatter
	outs         []outputRef
	defaultLevel core.Level
	// minLevel is the lowest record level with any chance of reaching a
	// sink under this node; OffLevel marks a dead node.
	minLevel core.Level
	levels   levelConfig
	filters  []FilterFunc
}

// outputRef is either a sink or a nested dispatch node.
type outputRef struct {
	sink output.Sink
	node *node
}

// fallbackWriter receives diagnostics for sink write failures. A
// variable so tests can capture it.
var fallbackWriter io.Writer = os.Stderr

// Log routes one record through the tree. The record is read-only to
// the router and may be recycled once Log returns.
//
// Sink write failures never reach the caller: a diagnostic line
// carrying the payload and the error goes to stderr instead.
func (l *Logger) Log(rec *core.Record) {
	l.root.log(rec, nil)
}

// Enabled reports whether a record with the given target and level
// would reach at least one sink. Unlike the per-node level check this
// recurses into children, so it can be used to skip expensive argument
// construction entirely.
func (l *Logger) Enabled(target string, level core.Level) bool {
	rec := core.Record{Target: target, Level: level}
	return l.root.deepEnabled(&rec)
}

// MinLevel returns the lowest record level with any chance of reaching
// a sink, the tree-wide analog of a single node's threshold. OffLevel
// means the logger discards everything.
func (l *Logger) MinLevel() core.Level {
	return l.root.minLevel
}

// Flush forces buffered data out of every sink in the tree.
func (l *Logger) Flush() error {
	return l.root.flush()
}

// Close flushes and closes every sink in the tree.
func (l *Logger) Close() error {
	return l.root.close()
}

// log applies this node's filters, formats the payload once, and hands
// it to every child.
func (n *node) log(rec *core.Record, payload []byte) {
	if !n.shallowEnabled(rec) {
		return
	}
	if n.format == nil {
		n.emit(rec, payload)
		return
	}
	buf := formatter.GetBuffer()
	n.format.Format(rec, payload, buf)
	n.emit(rec, buf.Bytes())
	formatter.PutBuffer(buf)
}

// emit forwards the formatted payload to all children in order.
func (n *node) emit(rec *core.Record, payload []byte) {
	for _, o := range n.outs {
		if o.node != nil {
			o.node.log(rec, payload)
		} else if err := o.sink.Write(rec, payload); err != nil {
			fallback(rec, payload, err)
		}
	}
}

// shallowEnabled checks this node's own threshold and filters: the
// most specific target override wins, otherwise the default level
// applies.
func (n *node) shallowEnabled(rec *core.Record) bool {
	if rec.Level >= core.OffLevel {
		return false
	}
	threshold := n.defaultLevel
	if l, ok := n.levels.find(rec.Target); ok {
		threshold = l
	}
	if rec.Level < threshold {
		return false
	}
	for _, f := range n.filters {
		if !f(rec) {
			return false
		}
	}
	return true
}

// deepEnabled additionally requires that some child would accept the
// record.
func (n *node) deepEnabled(rec *core.Record) bool {
	if !n.shallowEnabled(rec) {
		return false
	}
	for _, o := range n.outs {
		if o.node == nil || o.node.deepEnabled(rec) {
			return true
		}
	}
	return false
}

func (n *node) flush() error {
	var lastErr error
	for _, o := range n.outs {
		var err error
		if o.node != nil {
			err = o.node.flush()
		} else {
			err = o.sink.Flush()
		}
		if err != nil {
			lastErr = err
		}
	}
	return lastErr
}

func (n *node) close() error {
	var lastErr error
	for _, o := range n.outs {
		var err error
		if o.node != nil {
			err = o.node.close()
		} else {
			err = o.sink.Close()
		}
		if err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// fallback reports a sink write failure without failing the log call.
// If stderr itself is broken there is nothing sensible left to do, so
// the secondary error is discarded.
func fallback(rec *core.Record, payload []byte, err error) {
	msg := rec.Message
	if payload != nil {
		msg = string(payload)
	}
	fmt.Fprintf(fallbackWriter,
		"frond: error writing log record\n\tattempted to log: %s\n\ttarget: %q\n\tlevel: %s\n\twrite error: %v\n",
		msg, rec.Target, rec.Level, err)
}
