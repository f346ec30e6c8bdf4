// Package rdsgraph implements the RDS (Representation Data Structure) graph:
// the mutable hypergraph at the core of the ADIOS grammar-induction algorithm.
//
// A Graph owns an arena of Nodes (terminals, Start, End, Patterns, and
// EquivalenceClasses), a list of Paths (one per input sentence, rewritten
// in place as structure is discovered), and one ParseTree per Path. Nodes
// never mutate their LexiconUnit payload once installed — new structure
// always means a new Node — and the forward (connections) / backward
// (parents) indices are always rebuilt from scratch in a single pass
// rather than patched incrementally, so they can never drift from the
// paths they index.
//
// The package is single-threaded by design: the ADIOS algorithm runs to
// convergence on one goroutine, and Graph.Clone gives the generalisation
// package an isolated scratch copy to simulate a rewiring on before
// committing it to the original.
package rdsgraph
