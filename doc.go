// Package frond is a builder-style logging dispatch library. A Dispatch
// describes a tree of routing nodes, each with its own level threshold,
// per-target overrides, filters, formatter, and children; Build freezes
// the tree into an immutable Logger and Apply additionally installs it
// as the process-wide slog default.
//
// A minimal setup logging to stderr and a file:
//
//	file, err := output.NewFile("app.log")
//	if err != nil {
//		// configuration-time failure, before any logging happens
//	}
//	log, err := frond.New().
//		Level(frond.InfoLevel).
//		LevelFor("app/net", frond.DebugLevel).
//		Format(formatter.NewText(formatter.TextConfig{Colors: true})).
//		Chain(output.Stderr()).
//		Chain(file).
//		Apply()
//
// Records flow down the tree: each node checks its threshold (the most
// specific LevelFor override wins over the default) and its filters,
// runs its formatter exactly once, and hands the same formatted bytes
// to every child, which is either a sink or a nested node with its own
// rules. Sink write failures are reported on stderr rather than
// returned to the logging call site; only constructors fail.
package frond
