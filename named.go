package frond

import (
	"fmt"

	"github.com/frondlog/frond/core"
)

// Named is a lightweight front-end bound to one target. It stamps the
// target (and any default fields) onto each record before routing it,
// so call sites don't repeat themselves.
type Named struct {
	l      *Logger
	target string
	fields []core.Field
}

// Named returns a front-end that logs through l with the given target.
func (l *Logger) Named(target string) *Named {
	return &Named{l: l, target: target}
}

// With returns a copy of the front-end that attaches the given fields
// to every record. The receiver is unchanged.
func (n *Named) With(fields ...core.Field) *Named {
	merged := make([]core.Field, 0, len(n.fields)+len(fields))
	merged = append(merged, n.fields...)
	merged = append(merged, fields...)
	return &Named{l: n.l, target: n.target, fields: merged}
}

// Enabled reports whether a record at the given level would reach a
// sink through this front-end's target.
func (n *Named) Enabled(level core.Level) bool {
	return n.l.Enabled(n.target, level)
}

func (n *Named) Trace(msg string, fields ...core.Field) {
	n.log(core.TraceLevel, msg, fields)
}

func (n *Named) Debug(msg string, fields ...core.Field) {
	n.log(core.DebugLevel, msg, fields)
}

func (n *Named) Info(msg string, fields ...core.Field) {
	n.log(core.InfoLevel, msg, fields)
}

func (n *Named) Warn(msg string, fields ...core.Field) {
	n.log(core.WarnLevel, msg, fields)
}

func (n *Named) Error(msg string, fields ...core.Field) {
	n.log(core.ErrorLevel, msg, fields)
}

func (n *Named) Tracef(format string, args ...interface{}) {
	n.logf(core.TraceLevel, format, args)
}

func (n *Named) Debugf(format string, args ...interface{}) {
	n.logf(core.DebugLevel, format, args)
}

func (n *Named) Infof(format string, args ...interface{}) {
	n.logf(core.InfoLevel, format, args)
}

func (n *Named) Warnf(format string, args ...interface{}) {
	n.logf(core.WarnLevel, format, args)
}

func (n *Named) Errorf(format string, args ...interface{}) {
	n.logf(core.ErrorLevel, format, args)
}

func (n *Named) log(level core.Level, msg string, fields []core.Field) {
	if level < n.l.root.minLevel {
		return
	}
	rec := core.GetRecord()
	rec.Level = level
	rec.Target = n.target
	rec.Message = msg
	if len(n.fields) > 0 {
		rec.Fields = append(rec.Fields, n.fields...)
	}
	if len(fields) > 0 {
		rec.Fields = append(rec.Fields, fields...)
	}
	n.l.Log(rec)
	core.PutRecord(rec)
}

func (n *Named) logf(level core.Level, format string, args []interface{}) {
	// Format only after the cheap level gate; a disabled call costs a
	// comparison, not an fmt.Sprintf.
	if level < n.l.root.minLevel {
		return
	}
	n.log(level, fmt.Sprintf(format, args...), nil)
}
