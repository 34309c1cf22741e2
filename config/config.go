package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/frondlog/frond"
	"github.com/frondlog/frond/colors"
	"github.com/frondlog/frond/core"
	"github.com/frondlog/frond/formatter"
	"github.com/frondlog/frond/output"
)

// Config is the declarative form of a dispatch tree, loadable from a
// TOML file:
//
//	level = "info"
//
//	[levels]
//	"app/net" = "debug"
//
//	[[outputs]]
//	kind = "stderr"
//	colors = true
//
//	[[outputs]]
//	kind = "file"
//	path = "app.log"
//	format = "json"
type Config struct {
	// Level is the default minimum level (default: "info")
	Level string `toml:"level"`
	// Levels maps targets to per-target minimum levels
	Levels map[string]string `toml:"levels"`
	// Outputs lists the destinations; each gets its own formatter
	Outputs []Output `toml:"outputs"`
}

// Output describes one destination of the tree.
type Output struct {
	// Kind selects the sink: "stdout", "stderr", "file" or "datebased"
	Kind string `toml:"kind"`
	// Path is the file path ("file") or prefix ("datebased")
	Path string `toml:"path"`
	// Format selects the formatter: "text" (default) or "json"
	Format string `toml:"format"`
	// Timestamp overrides the formatter's time layout
	Timestamp string `toml:"timestamp"`
	// Colors enables ANSI level colors; honored for terminal outputs
	// only, and auto-disabled when the stream is not a TTY
	Colors bool `toml:"colors"`
}

// Load reads a TOML file and returns the dispatch builder it describes.
// The builder can be further customized (filters, extra sinks) before
// Build or Apply.
func Load(path string) (*frond.Dispatch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse builds a dispatch from raw TOML.
func Parse(data []byte) (*frond.Dispatch, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return Build(cfg)
}

// Build converts an already-decoded Config into a dispatch builder.
func Build(cfg Config) (*frond.Dispatch, error) {
	d := frond.New()

	level := core.InfoLevel
	if cfg.Level != "" {
		var err error
		level, err = core.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
	}
	d.Level(level)

	for target, name := range cfg.Levels {
		l, err := core.ParseLevel(name)
		if err != nil {
			return nil, fmt.Errorf("level for target %q: %w", target, err)
		}
		d.LevelFor(target, l)
	}

	for i, out := range cfg.Outputs {
		sub, err := buildOutput(out)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", i, err)
		}
		d.ChainDispatch(sub)
	}

	return d, nil
}

// buildOutput makes a sub-dispatch carrying one output's formatter and
// sink, so each destination formats independently.
func buildOutput(out Output) (*frond.Dispatch, error) {
	var sink output.Sink
	colorable := false

	switch out.Kind {
	case "stdout":
		sink = output.Stdout()
		colorable = colors.IsTerminal(os.Stdout)
	case "stderr":
		sink = output.Stderr()
		colorable = colors.IsTerminal(os.Stderr)
	case "file":
		if out.Path == "" {
			return nil, fmt.Errorf("file output requires a path")
		}
		f, err := output.NewFile(out.Path)
		if err != nil {
			return nil, err
		}
		sink = f
	case "datebased":
		if out.Path == "" {
			return nil, fmt.Errorf("datebased output requires a path prefix")
		}
		f, err := output.NewDateBased(out.Path)
		if err != nil {
			return nil, err
		}
		sink = f
	default:
		return nil, fmt.Errorf("unknown output kind %q", out.Kind)
	}

	var format formatter.Formatter
	switch out.Format {
	case "", "text":
		format = formatter.NewText(formatter.TextConfig{
			TimestampFormat: out.Timestamp,
			Colors:          out.Colors && colorable,
		})
	case "json":
		format = formatter.NewJSON(formatter.JSONConfig{
			TimestampFormat: out.Timestamp,
		})
	default:
		return nil, fmt.Errorf("unknown format %q", out.Format)
	}

	return frond.New().Format(format).Chain(sink), nil
}
