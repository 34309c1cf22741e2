// Package formatter defines how records are rendered to bytes.
//
// Formatters append into a caller-provided bytes.Buffer backed by a
// shared pool, so a record is formatted with at most one transient
// buffer regardless of how many sinks receive it. The incoming payload
// argument carries the output of an upstream dispatch node's formatter,
// which lets nested nodes wrap an already-formatted line instead of the
// raw message.
//
// Two formatters are built in: Text for human-readable console output
// (optionally ANSI-colored via the colors package) and JSON for
// machine-readable single-line objects.
package formatter
