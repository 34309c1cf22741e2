package frond

import (
	"github.com/frondlog/frond/core"
)

type levelEntry struct {
	target string
	level  core.Level
}

// Linear scan beats a map for small override sets; switch to a map
// above this many entries.
const levelMapThreshold = 15

// levelConfig is the frozen form of a node's per-target overrides.
type levelConfig struct {
	entries []levelEntry
	table   map[string]core.Level
}

func newLevelConfig(entries []levelEntry) levelConfig {
	switch {
	case len(entries) == 0:
		return levelConfig{}
	case len(entries) > levelMapThreshold:
		table := make(map[string]core.Level, len(entries))
		for _, e := range entries {
			table[e.target] = e.level
		}
		return levelConfig{table: table}
	default:
		return levelConfig{entries: append([]levelEntry(nil), entries...)}
	}
}

func (c levelConfig) findExact(target string) (core.Level, bool) {
	if c.table != nil {
		l, ok := c.table[target]
		return l, ok
	}
	for _, e := range c.entries {
		if e.target == target {
			return e.level, true
		}
	}
	return 0, false
}

// find returns the most specific override for the target, testing the
// full path first and then progressively shorter slash-separated
// prefixes: "app/net/http", then "app/net", then "app".
func (c levelConfig) find(target string) (core.Level, bool) {
	if c.entries == nil && c.table == nil {
		return 0, false
	}
	if l, ok := c.findExact(target); ok {
		return l, true
	}
	for i := len(target) - 1; i > 0; i-- {
		if target[i] == '/' {
			if l, ok := c.findExact(target[:i]); ok {
				return l, true
			}
		}
	}
	return 0, false
}
