// Package output provides the Sink interface and its built-in
// implementations: terminal destinations that write formatted log
// records somewhere.
//
// Built-in sinks:
//
//   - Writer wraps any io.Writer behind a mutex; Stdout and Stderr are
//     shorthands over the process streams.
//   - File appends to a log file, with optional size-based rotation and
//     old-backup cleanup.
//   - DateBased writes to date-suffixed files, rolling when the date
//     (or any other configured time layout) changes.
//   - Chan forwards lines to a string channel.
//   - Func adapts a callback, Null discards, Panic panics.
//   - Tee fans out to several sinks.
//   - Async wraps any sink with a bounded queue and a background
//     writer, applying a per-level OverflowPolicy when the queue fills:
//     DropNewest (default below Error), DropOldest, or Block with a
//     timeout. Dropped, blocked, and processed counts are tracked in
//     Stats and can be queried at runtime.
//
// Constructors that acquire resources (files) return an error at
// configuration time; Write-time failures are reported to the
// dispatcher instead of the logging call site.
package output
