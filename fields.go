package frond

import (
	"time"

	"github.com/frondlog/frond/core"
)

// Level, Record, Field and the level constants are re-exported so
// typical programs only import the root package.
type (
	Level  = core.Level
	Record = core.Record
	Field  = core.Field
)

const (
	TraceLevel = core.TraceLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	OffLevel   = core.OffLevel
)

// ParseLevel converts a level name ("debug", "WARN", ...) to a Level.
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}

// Field constructors for the structured call sites.

func String(key, value string) core.Field {
	return core.Field{Key: key, Type: core.StringType, Str: value}
}

func Int(key string, value int) core.Field {
	return core.Field{Key: key, Type: core.IntType, Int64: int64(value)}
}

func Int64(key string, value int64) core.Field {
	return core.Field{Key: key, Type: core.Int64Type, Int64: value}
}

func Float64(key string, value float64) core.Field {
	return core.Field{Key: key, Type: core.Float64Type, Float64: value}
}

func Bool(key string, value bool) core.Field {
	var b int64
	if value {
		b = 1
	}
	return core.Field{Key: key, Type: core.BoolType, Int64: b}
}

func Time(key string, value time.Time) core.Field {
	return core.Field{Key: key, Type: core.TimeType, Int64: value.UnixNano()}
}

func Duration(key string, value time.Duration) core.Field {
	return core.Field{Key: key, Type: core.DurationType, Int64: int64(value)}
}

// Err attaches an error under the conventional "error" key. A nil error
// renders as an empty string.
func Err(err error) core.Field {
	f := core.Field{Key: "error", Type: core.ErrorType}
	if err != nil {
		f.Str = err.Error()
	}
	return f
}

func Any(key string, value interface{}) core.Field {
	return core.Field{Key: key, Type: core.AnyType, Any: value}
}
