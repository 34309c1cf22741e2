package frond

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/frondlog/frond/formatter"
	"github.com/frondlog/frond/output"
)

func newSlogLogger(buf *bytes.Buffer, level Level) *slog.Logger {
	l := New().
		Level(level).
		Format(formatter.NewText(formatter.TextConfig{OmitTimestamp: true})).
		Chain(output.NewWriter(buf)).
		Build()
	return slog.New(l.Handler())
}

func TestHandler_BasicRecord(t *testing.T) {
	var buf bytes.Buffer
	log := newSlogLogger(&buf, InfoLevel)

	log.Info("listening", "port", 8080, "proto", "tcp")

	out := buf.String()
	for _, want := range []string{"[INFO]", "listening", "port=8080", "proto=tcp"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %s", want, out)
		}
	}
}

func TestHandler_LevelGate(t *testing.T) {
	var buf bytes.Buffer
	log := newSlogLogger(&buf, WarnLevel)

	log.Info("quiet")
	if buf.Len() > 0 {
		t.Errorf("info record passed a warn-level tree: %s", buf.String())
	}
	log.Warn("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Errorf("warn record missing: %s", buf.String())
	}
}

func TestHandler_TargetAttr(t *testing.T) {
	var buf bytes.Buffer
	log := newSlogLogger(&buf, TraceLevel)

	log.Info("routed", "target", "app/net")

	out := buf.String()
	if !strings.Contains(out, "[app/net]") {
		t.Errorf("target attribute should set the record target, got: %s", out)
	}
	if strings.Contains(out, "target=") {
		t.Errorf("target attribute must not also appear as a field: %s", out)
	}
}

func TestHandler_TargetViaWith(t *testing.T) {
	var buf bytes.Buffer
	log := newSlogLogger(&buf, TraceLevel).With("target", "app/db")

	log.Info("query done")

	if !strings.Contains(buf.String(), "[app/db]") {
		t.Errorf("With-bound target missing: %s", buf.String())
	}
}

func TestHandler_TargetRouting(t *testing.T) {
	var buf bytes.Buffer
	l := New().
		Level(ErrorLevel).
		LevelFor("app/net", DebugLevel).
		Chain(output.NewWriter(&buf)).
		Build()
	log := slog.New(l.Handler())

	log.Debug("dropped")
	log.With("target", "app/net").Debug("admitted")

	if got := buf.String(); got != "admitted\n" {
		t.Errorf("output = %q, want only the record matching the override", got)
	}
}

func TestHandler_Groups(t *testing.T) {
	var buf bytes.Buffer
	log := newSlogLogger(&buf, TraceLevel)

	log.WithGroup("req").Info("handled", "method", "GET", slog.Group("peer", "ip", "10.0.0.1"))

	out := buf.String()
	if !strings.Contains(out, "req.method=GET") {
		t.Errorf("expected flattened group key, got: %s", out)
	}
	if !strings.Contains(out, "req.peer.ip=10.0.0.1") {
		t.Errorf("expected nested group key, got: %s", out)
	}
}

func TestHandler_AttrKinds(t *testing.T) {
	var buf bytes.Buffer
	log := newSlogLogger(&buf, TraceLevel)

	log.Info("kinds",
		slog.Bool("ok", true),
		slog.Float64("ratio", 0.5),
		slog.Int64("count", 7),
		slog.Any("err", errors.New("wrapped")),
	)

	out := buf.String()
	for _, want := range []string{"ok=true", "ratio=0.5", "count=7", "err=wrapped"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %s", want, out)
		}
	}
}

func TestHandler_TraceMapping(t *testing.T) {
	var buf bytes.Buffer
	l := New().
		Level(TraceLevel).
		Format(formatter.NewText(formatter.TextConfig{OmitTimestamp: true})).
		Chain(output.NewWriter(&buf)).
		Build()
	log := slog.New(l.Handler())

	// Levels below slog.LevelDebug map to trace.
	log.Log(nil, slog.LevelDebug-4, "very fine grained")

	if !strings.Contains(buf.String(), "[TRACE]") {
		t.Errorf("expected TRACE tag, got: %s", buf.String())
	}
}

func TestHandler_EnabledHonorsTreeFloor(t *testing.T) {
	l := New().Level(ErrorLevel).Chain(output.Null()).Build()
	h := l.Handler()

	if h.Enabled(nil, slog.LevelInfo) {
		t.Error("info should be disabled on an error-level tree")
	}
	if !h.Enabled(nil, slog.LevelError) {
		t.Error("error should be enabled")
	}
}

func TestApply_Once(t *testing.T) {
	if !applied.CompareAndSwap(false, true) {
		t.Skip("global logger already applied by another test")
	}
	applied.Store(false)

	l, err := New().Chain(output.Null()).Apply()
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if l == nil {
		t.Fatal("Apply returned nil logger")
	}

	if _, err := New().Chain(output.Null()).Apply(); !errors.Is(err, ErrAlreadyApplied) {
		t.Errorf("second Apply error = %v, want ErrAlreadyApplied", err)
	}
}
