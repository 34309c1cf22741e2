// Package colors provides ANSI level coloring for text-formatted
// output. A Palette maps each severity level to a foreground color and
// can wrap text in the corresponding escape sequences without
// allocating.
package colors
