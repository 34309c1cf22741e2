package colors

import (
	"bytes"
	"strconv"

	"github.com/frondlog/frond/core"
)

// Color is an ANSI foreground color code.
type Color uint8

const (
	Black Color = iota + 30
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

const (
	BrightBlack Color = iota + 90
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Palette assigns a color to each severity level. The zero value is not
// useful; start from Default and override with the With* methods:
//
//	pal := colors.Default().WithInfo(colors.Green).WithDebug(colors.Magenta)
//
// Palette is a plain value and safe to copy.
type Palette struct {
	Error Color
	Warn  Color
	Info  Color
	Debug Color
	Trace Color
}

// Default returns the default palette: Error red, Warn yellow, and
// white for everything else.
func Default() Palette {
	return Palette{
		Error: Red,
		Warn:  Yellow,
		Info:  White,
		Debug: White,
		Trace: White,
	}
}

// WithError overrides the ErrorLevel color.
func (p Palette) WithError(c Color) Palette {
	p.Error = c
	return p
}

// WithWarn overrides the WarnLevel color.
func (p Palette) WithWarn(c Color) Palette {
	p.Warn = c
	return p
}

// WithInfo overrides the InfoLevel color.
func (p Palette) WithInfo(c Color) Palette {
	p.Info = c
	return p
}

// WithDebug overrides the DebugLevel color.
func (p Palette) WithDebug(c Color) Palette {
	p.Debug = c
	return p
}

// WithTrace overrides the TraceLevel color.
func (p Palette) WithTrace(c Color) Palette {
	p.Trace = c
	return p
}

// Get returns the color assigned to the given level.
func (p Palette) Get(l core.Level) Color {
	switch l {
	case core.ErrorLevel:
		return p.Error
	case core.WarnLevel:
		return p.Warn
	case core.InfoLevel:
		return p.Info
	case core.DebugLevel:
		return p.Debug
	default:
		return p.Trace
	}
}

// Append writes s wrapped in SGR set/reset sequences for the level's
// color into buf, without any intermediate allocation.
func (p Palette) Append(buf *bytes.Buffer, l core.Level, s string) {
	buf.WriteString("\x1b[")
	buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(p.Get(l)), 10))
	buf.WriteByte('m')
	buf.WriteString(s)
	buf.WriteString("\x1b[0m")
}

// Wrap returns s wrapped in SGR set/reset sequences for the level's
// color.
func (p Palette) Wrap(l core.Level, s string) string {
	var buf bytes.Buffer
	buf.Grow(len(s) + 10)
	p.Append(&buf, l, s)
	return buf.String()
}
