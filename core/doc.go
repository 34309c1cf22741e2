// Package core contains the basic vocabulary shared by every other
// frond package: severity levels, the Record passed through the
// dispatch tree, and the Field tagged union for structured values.
//
// Records are pooled via GetRecord/PutRecord so that a filtered-out or
// fully-delivered record costs no heap allocation on the hot path.
//
// This package has no dependencies on the rest of the module and can be
// imported by custom sinks and formatters without pulling in the
// dispatch machinery.
package core
