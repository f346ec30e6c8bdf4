// Package corpus reads the plain-text sentence format spec.md §6
// describes: one whitespace-tokenised sentence per line, with optional
// leading/trailing "*"/"#" boundary markers that are stripped before the
// sequence reaches the graph builder (rdsgraph.NewGraph inserts its own
// Start/End sentinels).
package corpus
