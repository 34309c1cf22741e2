package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/frondlog/frond"
)

// envSpec mirrors Config as flat environment variables. With prefix
// "APP" the variables are APP_LEVEL, APP_LEVELS, APP_FORMAT, APP_COLOR
// and APP_FILE.
type envSpec struct {
	// Level is the default minimum level
	Level string `default:"info"`
	// Levels holds per-target overrides as "target=level,target=level"
	Levels string
	// Format selects "text" or "json"
	Format string `default:"text"`
	// Color enables ANSI colors on terminal outputs
	Color bool
	// File redirects output to a file instead of stderr
	File string
}

// FromEnv builds a dispatch from prefixed environment variables. The
// shape is deliberately flat: one output, either stderr or a file.
// Programs needing a full tree should use Load or Build.
func FromEnv(prefix string) (*frond.Dispatch, error) {
	var spec envSpec
	if err := envconfig.Process(prefix, &spec); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	cfg := Config{Level: spec.Level}

	if spec.Levels != "" {
		cfg.Levels = make(map[string]string)
		for _, pair := range strings.Split(spec.Levels, ",") {
			target, level, ok := strings.Cut(strings.TrimSpace(pair), "=")
			if !ok {
				return nil, fmt.Errorf("malformed level override %q, want target=level", pair)
			}
			cfg.Levels[target] = level
		}
	}

	out := Output{Kind: "stderr", Format: spec.Format, Colors: spec.Color}
	if spec.File != "" {
		out.Kind = "file"
		out.Path = spec.File
	}
	cfg.Outputs = []Output{out}

	return Build(cfg)
}
