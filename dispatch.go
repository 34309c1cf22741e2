package frond

import (
	"github.com/frondlog/frond/core"
	"github.com/frondlog/frond/formatter"
	"github.com/frondlog/frond/output"
)

// FilterFunc is a predicate applied to records passing through a
// dispatch node. A record proceeds only if every filter returns true.
// Level and LevelFor are preferred where they apply.
type FilterFunc func(rec *core.Record) bool

// Dispatch is a builder for one node of the routing tree. It collects
// a default level, per-target overrides, filters, a formatter, and an
// ordered list of children, then freezes into an immutable Logger via
// Build or Apply.
//
// All methods are position-insensitive: New().Format(f).Chain(s)
// produces the same tree as New().Chain(s).Format(f). Putting modifiers
// before Chain is preferred for clarity.
type Dispatch struct {
	format       formatter.Formatter
	children     []builderChild
	defaultLevel core.Level
	levels       []levelEntry
	filters      []FilterFunc
}

type builderChild struct {
	sink output.Sink
	node *node
}

// New creates a dispatch builder that initially passes every record
// through unchanged (default level TraceLevel, no children).
func New() *Dispatch {
	return &Dispatch{
		defaultLevel: core.TraceLevel,
	}
}

// Level sets the default minimum level for this node. Records below it
// are discarded unless a more specific LevelFor override applies to
// their target.
func (d *Dispatch) Level(level core.Level) *Dispatch {
	d.defaultLevel = level
	return d
}

// LevelFor sets a per-target minimum level. Targets are slash-separated
// paths; lookup picks the most specific override first, so for a record
// targeted at "app/net/http" the node consults "app/net/http", then
// "app/net", then "app", then the default level. Re-specifying a target
// replaces the previous override.
func (d *Dispatch) LevelFor(target string, level core.Level) *Dispatch {
	for i, e := range d.levels {
		if e.target == target {
			d.levels = append(d.levels[:i], d.levels[i+1:]...)
			break
		}
	}
	d.levels = append(d.levels, levelEntry{target: target, level: level})
	return d
}

// Filter adds a custom predicate that can reject records passing
// through this node.
func (d *Dispatch) Filter(f FilterFunc) *Dispatch {
	d.filters = append(d.filters, f)
	return d
}

// Format sets the formatter of this node. The formatter runs exactly
// once per passing record; every child receives the same formatted
// bytes. Without a formatter the incoming payload (initially the raw
// message) passes through unchanged.
func (d *Dispatch) Format(f formatter.Formatter) *Dispatch {
	d.format = f
	return d
}

// Chain appends a sink as a child of this node. All records that pass
// the node's filters are formatted and then sent to every child in
// order.
func (d *Dispatch) Chain(s output.Sink) *Dispatch {
	d.children = append(d.children, builderChild{sink: s})
	return d
}

// ChainDispatch appends a nested dispatch node as a child. The child is
// built immediately; if it cannot accept any record (level Off, or no
// children of its own) it is dropped from the tree.
func (d *Dispatch) ChainDispatch(sub *Dispatch) *Dispatch {
	d.children = append(d.children, builderChild{node: sub.Build().root})
	return d
}

// ChainLogger appends an already-built Logger as a child, allowing one
// built tree (for example a shared log file) to serve as an output for
// several parents. Closing any parent closes the shared sinks.
func (d *Dispatch) ChainLogger(l *Logger) *Dispatch {
	d.children = append(d.children, builderChild{node: l.root})
	return d
}

// Build freezes the builder into an immutable Logger and computes the
// minimum record level that has any chance of reaching a sink. A
// builder with no usable children builds into a null logger.
func (d *Dispatch) Build() *Logger {
	// The most verbose threshold anywhere on this node: a target
	// override may admit records below the default level.
	floor := d.defaultLevel
	for _, e := range d.levels {
		if e.level < floor {
			floor = e.level
		}
	}

	// Children cap what can usefully pass: a record this node accepts
	// still goes nowhere if every child rejects it.
	childFloor := core.OffLevel
	outs := make([]outputRef, 0, len(d.children))
	for _, c := range d.children {
		if c.node != nil {
			if c.node.minLevel >= core.OffLevel {
				continue // child can never accept a record
			}
			if c.node.minLevel < childFloor {
				childFloor = c.node.minLevel
			}
			outs = append(outs, outputRef{node: c.node})
		} else {
			childFloor = core.TraceLevel
			outs = append(outs, outputRef{sink: c.sink})
		}
	}

	minLevel := floor
	if childFloor > minLevel {
		minLevel = childFloor
	}
	if len(outs) == 0 {
		minLevel = core.OffLevel
	}

	return &Logger{root: &node{
		format:       d.format,
		outs:         outs,
		defaultLevel: d.defaultLevel,
		minLevel:     minLevel,
		levels:       newLevelConfig(d.levels),
		filters:      append([]FilterFunc(nil), d.filters...),
	}}
}
