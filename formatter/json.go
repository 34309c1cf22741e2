package formatter

import (
	"bytes"
	"strconv"
	"time"

	"github.com/frondlog/frond/core"
)

// JSON formats records as single-line JSON objects
type JSON struct {
	JSONConfig
}

// JSONConfig holds configuration for the JSON formatter
type JSONConfig struct {
	// TimestampFormat specifies the time layout (empty for RFC3339Nano)
	TimestampFormat string
}

// NewJSON creates a new JSON formatter
func NewJSON(cfg JSONConfig) *JSON {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSON{JSONConfig: cfg}
}

// Format implements Formatter. JSON is built manually into the buffer
// without allocations.
func (f *JSON) Format(rec *core.Record, payload []byte, buf *bytes.Buffer) {
	buf.WriteByte('{')

	// Time field
	buf.WriteString(`"time":"`)
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteByte('"')

	// Level field
	buf.WriteString(`,"level":"`)
	buf.WriteString(rec.Level.String())
	buf.WriteByte('"')

	// Target field
	if rec.Target != "" {
		buf.WriteString(`,"target":"`)
		appendJSONString(buf, rec.Target)
		buf.WriteByte('"')
	}

	// Message field
	buf.WriteString(`,"message":"`)
	if payload != nil {
		appendJSONBytes(buf, payload)
	} else {
		appendJSONString(buf, rec.Message)
	}
	buf.WriteByte('"')

	// Fields
	for _, field := range rec.Fields {
		buf.WriteString(`,"`)
		appendJSONString(buf, field.Key)
		buf.WriteString(`":`)
		appendJSONFieldValue(buf, field)
	}

	buf.WriteByte('}')
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		// Flush unescaped prefix
		if start < i {
			buf.WriteString(s[start:i])
		}
		appendEscaped(buf, c)
		start = i + 1
	}
	// Flush remaining
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

// appendJSONBytes is appendJSONString for a byte slice payload.
func appendJSONBytes(buf *bytes.Buffer, s []byte) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		if start < i {
			buf.Write(s[start:i])
		}
		appendEscaped(buf, c)
		start = i + 1
	}
	if start < len(s) {
		buf.Write(s[start:])
	}
}

func appendEscaped(buf *bytes.Buffer, c byte) {
	switch c {
	case '"':
		buf.WriteString(`\"`)
	case '\\':
		buf.WriteString(`\\`)
	case '\n':
		buf.WriteString(`\n`)
	case '\r':
		buf.WriteString(`\r`)
	case '\t':
		buf.WriteString(`\t`)
	default:
		buf.WriteString(`\u00`)
		buf.WriteByte(hexChars[c>>4])
		buf.WriteByte(hexChars[c&0x0f])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// appendJSONFieldValue writes a JSON-encoded field value to the buffer
func appendJSONFieldValue(buf *bytes.Buffer, field core.Field) {
	switch field.Type {
	case core.StringType:
		buf.WriteByte('"')
		appendJSONString(buf, field.Str)
		buf.WriteByte('"')
	case core.IntType, core.Int64Type:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), field.Int64, 10))
	case core.Float64Type:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), field.Float64, 'f', -1, 64))
	case core.BoolType:
		buf.Write(strconv.AppendBool(buf.AvailableBuffer(), field.Int64 == 1))
	case core.TimeType:
		buf.WriteByte('"')
		buf.Write(time.Unix(0, field.Int64).AppendFormat(buf.AvailableBuffer(), time.RFC3339Nano))
		buf.WriteByte('"')
	case core.DurationType:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), field.Int64, 10))
	case core.ErrorType:
		buf.WriteByte('"')
		appendJSONString(buf, field.Str)
		buf.WriteByte('"')
	default:
		buf.WriteByte('"')
		appendJSONString(buf, field.StringValue())
		buf.WriteByte('"')
	}
}
