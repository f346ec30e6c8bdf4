// Package pcfg implements probability estimation and grammar emission
// from a distilled graph (spec.md §4.9), and random sequence generation
// back out of it (spec.md §4.10).
package pcfg
