package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frondlog/frond"
)

func TestFromEnv_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	t.Setenv("FRONDTEST_LEVEL", "debug")
	t.Setenv("FRONDTEST_FILE", path)

	d, err := FromEnv("frondtest")
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}

	log := d.Build()
	log.Named("app").Debug("from env")
	log.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "from env") {
		t.Errorf("file contains %q", data)
	}
}

func TestFromEnv_Levels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	t.Setenv("FRONDTEST_LEVEL", "error")
	t.Setenv("FRONDTEST_LEVELS", "app/net=debug, db=warn")
	t.Setenv("FRONDTEST_FILE", path)

	d, err := FromEnv("frondtest")
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}

	log := d.Build()
	if got := log.MinLevel(); got != frond.DebugLevel {
		t.Errorf("MinLevel() = %v, want DebugLevel via the app/net override", got)
	}

	log.Named("app/net").Debug("admitted")
	log.Named("other").Warn("rejected")
	log.Close()

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "admitted") || strings.Contains(string(data), "rejected") {
		t.Errorf("unexpected file contents: %s", data)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	// No variables set: info level, text format, stderr output.
	d, err := FromEnv("frondtest")
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if got := d.Build().MinLevel(); got != frond.InfoLevel {
		t.Errorf("MinLevel() = %v, want InfoLevel", got)
	}
}

func TestFromEnv_MalformedLevels(t *testing.T) {
	t.Setenv("FRONDTEST_LEVELS", "no-equals-sign")
	if _, err := FromEnv("frondtest"); err == nil {
		t.Error("expected error for malformed override")
	}
}

func TestFromEnv_BadLevel(t *testing.T) {
	t.Setenv("FRONDTEST_LEVEL", "shouty")
	if _, err := FromEnv("frondtest"); err == nil {
		t.Error("expected error for unknown level")
	}
}
