package frond

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/frondlog/frond/core"
)

// TargetKey is the attribute key the slog bridge treats specially: a
// top-level string attribute with this key becomes the record's routing
// target instead of a field.
const TargetKey = "target"

// ErrAlreadyApplied is returned by Apply when a logger has already been
// installed as the process-wide default.
var ErrAlreadyApplied = errors.New("frond: a logger has already been applied globally")

var applied atomic.Bool

// Apply builds the dispatch tree and installs it as the process-wide
// default via slog.SetDefault. It may succeed at most once per process;
// later calls return ErrAlreadyApplied and leave the default untouched.
func (d *Dispatch) Apply() (*Logger, error) {
	if !applied.CompareAndSwap(false, true) {
		return nil, ErrAlreadyApplied
	}
	l := d.Build()
	slog.SetDefault(slog.New(l.Handler()))
	return l, nil
}

// Handler returns a slog.Handler that routes records through l,
// bridging the standard structured-logging facade onto the dispatch
// tree. Route records by target with slog.With("target", "app/net").
func (l *Logger) Handler() slog.Handler {
	return &slogHandler{l: l}
}

type slogHandler struct {
	l      *Logger
	target string
	fields []core.Field
	group  string
}

func (h *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= h.l.root.minLevel
}

func (h *slogHandler) Handle(_ context.Context, record slog.Record) error {
	rec := core.GetRecord()
	if !record.Time.IsZero() {
		rec.Time = record.Time
	}
	rec.Level = slogLevelToCore(record.Level)
	rec.Target = h.target
	rec.Message = record.Message
	if len(h.fields) > 0 {
		rec.Fields = append(rec.Fields, h.fields...)
	}
	record.Attrs(func(a slog.Attr) bool {
		if h.group == "" && a.Key == TargetKey && a.Value.Kind() == slog.KindString {
			rec.Target = a.Value.String()
			return true
		}
		rec.Fields = appendAttr(rec.Fields, h.group, a)
		return true
	})
	h.l.Log(rec)
	core.PutRecord(rec)
	return nil
}

func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := &slogHandler{
		l:      h.l,
		target: h.target,
		fields: append([]core.Field(nil), h.fields...),
		group:  h.group,
	}
	for _, a := range attrs {
		if nh.group == "" && a.Key == TargetKey && a.Value.Kind() == slog.KindString {
			nh.target = a.Value.String()
			continue
		}
		nh.fields = appendAttr(nh.fields, nh.group, a)
	}
	return nh
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &slogHandler{
		l:      h.l,
		target: h.target,
		fields: append([]core.Field(nil), h.fields...),
		group:  group,
	}
}

// appendAttr converts one slog attribute to a field, flattening groups
// into dotted keys.
func appendAttr(fields []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	switch a.Value.Kind() {
	case slog.KindGroup:
		for _, member := range a.Value.Group() {
			fields = appendAttr(fields, key, member)
		}
		return fields
	case slog.KindString:
		return append(fields, core.Field{Key: key, Type: core.StringType, Str: a.Value.String()})
	case slog.KindInt64:
		return append(fields, core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()})
	case slog.KindUint64:
		return append(fields, core.Field{Key: key, Type: core.AnyType, Any: a.Value.Uint64()})
	case slog.KindFloat64:
		return append(fields, core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()})
	case slog.KindBool:
		var b int64
		if a.Value.Bool() {
			b = 1
		}
		return append(fields, core.Field{Key: key, Type: core.BoolType, Int64: b})
	case slog.KindTime:
		return append(fields, core.Field{Key: key, Type: core.TimeType, Int64: a.Value.Time().UnixNano()})
	case slog.KindDuration:
		return append(fields, core.Field{Key: key, Type: core.DurationType, Int64: int64(a.Value.Duration())})
	default:
		return append(fields, core.Field{Key: key, Type: core.AnyType, Any: a.Value.Any()})
	}
}

// slogLevelToCore maps slog levels onto the five-level scale. Anything
// below slog.LevelDebug counts as trace.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
