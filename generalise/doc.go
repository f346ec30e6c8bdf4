// Package generalise implements the bootstrap / equivalence-class
// discovery step described in spec.md §4.5: for each context window of
// a path, it finds the set of node ids interchangeable at an interior
// slot, optionally reuses an existing equivalence class via overlap
// matching, and simulates installing each resulting candidate on a
// disposable clone of the graph to see whether it produces a
// significant pattern. Only the single best candidate across every
// window of a path is returned; committing it into the real graph is a
// separate step so the caller can apply it alongside the ordinary
// rewiring operator.
package generalise
