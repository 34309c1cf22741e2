package formatter

import (
	"bytes"
	"time"

	"github.com/frondlog/frond/colors"
	"github.com/frondlog/frond/core"
)

// Text formats records as human-readable lines:
//
//	2026-08-24T10:00:00Z [INFO] [app/net] listening port=8080
type Text struct {
	TextConfig
}

// TextConfig holds configuration for the text formatter
type TextConfig struct {
	// TimestampFormat specifies the time layout (empty for RFC3339)
	TimestampFormat string
	// OmitTimestamp drops the leading timestamp
	OmitTimestamp bool
	// OmitTarget drops the [target] segment
	OmitTarget bool
	// OmitFields drops trailing key=value pairs
	OmitFields bool
	// Colors wraps the level tag in ANSI color sequences
	Colors bool
	// Palette selects per-level colors (default: colors.Default)
	Palette colors.Palette
}

// NewText creates a new text formatter
func NewText(cfg TextConfig) *Text {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	if cfg.Colors && cfg.Palette == (colors.Palette{}) {
		cfg.Palette = colors.Default()
	}
	return &Text{TextConfig: cfg}
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.TraceLevel: "[TRACE] ",
	core.DebugLevel: "[DEBUG] ",
	core.InfoLevel:  "[INFO] ",
	core.WarnLevel:  "[WARN] ",
	core.ErrorLevel: "[ERROR] ",
}

// Format implements Formatter.
func (f *Text) Format(rec *core.Record, payload []byte, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	if !f.OmitTimestamp {
		buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteByte(' ')
	}

	// Level - use pre-formatted string
	tag := "[UNKNOWN] "
	if int(rec.Level) < len(levelBrackets) {
		tag = levelBrackets[rec.Level]
	}
	if f.Colors {
		f.Palette.Append(buf, rec.Level, tag[:len(tag)-1])
		buf.WriteByte(' ')
	} else {
		buf.WriteString(tag)
	}

	// Target
	if !f.OmitTarget && rec.Target != "" {
		buf.WriteByte('[')
		buf.WriteString(rec.Target)
		buf.WriteString("] ")
	}

	// Message: the payload from the previous stage wins over the raw
	// record message so that formatter chaining composes.
	if payload != nil {
		buf.Write(payload)
	} else {
		buf.WriteString(rec.Message)
	}

	// Fields
	if !f.OmitFields {
		for _, field := range rec.Fields {
			buf.WriteByte(' ')
			buf.WriteString(field.Key)
			buf.WriteByte('=')
			buf.WriteString(field.StringValue())
		}
	}
}
