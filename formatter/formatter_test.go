package formatter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/frondlog/frond/colors"
	"github.com/frondlog/frond/core"
)

func testRecord() *core.Record {
	return &core.Record{
		Time:    time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Target:  "app/net",
		Message: "listening",
		Fields: []core.Field{
			{Key: "port", Type: core.IntType, Int64: 8080},
			{Key: "proto", Type: core.StringType, Str: "tcp"},
		},
	}
}

func TestText_Format(t *testing.T) {
	var buf bytes.Buffer
	NewText(TextConfig{}).Format(testRecord(), nil, &buf)

	got := buf.String()
	want := "2026-08-24T10:30:00Z [INFO] [app/net] listening port=8080 proto=tcp"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestText_Omissions(t *testing.T) {
	var buf bytes.Buffer
	NewText(TextConfig{
		OmitTimestamp: true,
		OmitTarget:    true,
		OmitFields:    true,
	}).Format(testRecord(), nil, &buf)

	if got, want := buf.String(), "[INFO] listening"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestText_CustomTimestamp(t *testing.T) {
	var buf bytes.Buffer
	NewText(TextConfig{
		TimestampFormat: "15:04:05",
		OmitTarget:      true,
		OmitFields:      true,
	}).Format(testRecord(), nil, &buf)

	if got, want := buf.String(), "10:30:00 [INFO] listening"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestText_Colors(t *testing.T) {
	var buf bytes.Buffer
	NewText(TextConfig{
		OmitTimestamp: true,
		OmitTarget:    true,
		OmitFields:    true,
		Colors:        true,
	}).Format(testRecord(), nil, &buf)

	// Default palette renders Info in white.
	if got, want := buf.String(), "\x1b[37m[INFO]\x1b[0m listening"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestText_CustomPalette(t *testing.T) {
	rec := testRecord()
	rec.Level = core.ErrorLevel

	var buf bytes.Buffer
	NewText(TextConfig{
		OmitTimestamp: true,
		OmitTarget:    true,
		OmitFields:    true,
		Colors:        true,
		Palette:       colors.Default().WithError(colors.BrightRed),
	}).Format(rec, nil, &buf)

	if !strings.Contains(buf.String(), "\x1b[91m[ERROR]\x1b[0m") {
		t.Errorf("expected bright red error tag, got %q", buf.String())
	}
}

func TestText_PayloadWinsOverMessage(t *testing.T) {
	var buf bytes.Buffer
	NewText(TextConfig{
		OmitTimestamp: true,
		OmitTarget:    true,
		OmitFields:    true,
	}).Format(testRecord(), []byte("already formatted"), &buf)

	if got, want := buf.String(), "[INFO] already formatted"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestText_NoNewline(t *testing.T) {
	var buf bytes.Buffer
	NewText(TextConfig{}).Format(testRecord(), nil, &buf)
	if strings.HasSuffix(buf.String(), "\n") {
		t.Error("formatter must not append a line separator; sinks own it")
	}
}

func TestJSON_Format(t *testing.T) {
	var buf bytes.Buffer
	NewJSON(JSONConfig{}).Format(testRecord(), nil, &buf)

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, buf.String())
	}

	if decoded["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", decoded["level"])
	}
	if decoded["target"] != "app/net" {
		t.Errorf("target = %v, want app/net", decoded["target"])
	}
	if decoded["message"] != "listening" {
		t.Errorf("message = %v, want listening", decoded["message"])
	}
	if decoded["port"] != float64(8080) {
		t.Errorf("port = %v, want 8080", decoded["port"])
	}
	if decoded["proto"] != "tcp" {
		t.Errorf("proto = %v, want tcp", decoded["proto"])
	}
}

func TestJSON_Escaping(t *testing.T) {
	rec := &core.Record{
		Time:    time.Now(),
		Level:   core.WarnLevel,
		Message: "line one\nline \"two\"\tand \\ back",
		Fields: []core.Field{
			{Key: "ctl", Type: core.StringType, Str: "bell\x07char"},
		},
	}

	var buf bytes.Buffer
	NewJSON(JSONConfig{}).Format(rec, nil, &buf)

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, buf.String())
	}
	if decoded["message"] != rec.Message {
		t.Errorf("message = %q, want %q", decoded["message"], rec.Message)
	}
	if decoded["ctl"] != "bell\x07char" {
		t.Errorf("ctl = %q, want %q", decoded["ctl"], "bell\x07char")
	}
}

func TestJSON_FieldTypes(t *testing.T) {
	rec := &core.Record{
		Time:  time.Now(),
		Level: core.DebugLevel,
		Fields: []core.Field{
			{Key: "b", Type: core.BoolType, Int64: 1},
			{Key: "f", Type: core.Float64Type, Float64: 2.5},
			{Key: "d", Type: core.DurationType, Int64: int64(time.Second)},
			{Key: "e", Type: core.ErrorType, Str: "boom"},
		},
	}

	var buf bytes.Buffer
	NewJSON(JSONConfig{}).Format(rec, nil, &buf)

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, buf.String())
	}
	if decoded["b"] != true {
		t.Errorf("b = %v, want true", decoded["b"])
	}
	if decoded["f"] != 2.5 {
		t.Errorf("f = %v, want 2.5", decoded["f"])
	}
	if decoded["d"] != float64(time.Second) {
		t.Errorf("d = %v, want %v", decoded["d"], float64(time.Second))
	}
	if decoded["e"] != "boom" {
		t.Errorf("e = %v, want boom", decoded["e"])
	}
}

func TestFunc_Adapter(t *testing.T) {
	f := Func(func(rec *core.Record, payload []byte, buf *bytes.Buffer) {
		buf.WriteString(rec.Level.String())
		buf.WriteByte(' ')
		buf.WriteString(rec.Message)
	})

	var buf bytes.Buffer
	f.Format(testRecord(), nil, &buf)
	if got, want := buf.String(), "INFO listening"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestBufferPool(t *testing.T) {
	buf := GetBuffer()
	if buf.Len() != 0 {
		t.Errorf("fresh buffer has %d bytes", buf.Len())
	}
	buf.WriteString("data")
	PutBuffer(buf)

	buf2 := GetBuffer()
	if buf2.Len() != 0 {
		t.Errorf("recycled buffer not reset, has %d bytes", buf2.Len())
	}
	PutBuffer(buf2)
}
