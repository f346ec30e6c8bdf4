// Package significance implements the pattern-boundary search described
// in spec.md §4.4: given the flow/descent matrices and the connection
// matrix for one path, it finds the subrange whose two edges both carry
// a statistically sharp drop in continuation probability, scored by a
// binomial-tail p-value on each side.
//
// The search itself is pure and allocates no graph state — it only reads
// the matrices the matrix package already built — which keeps it cheap
// to call once per candidate during generalisation's simulated rewirings
// (spec.md §4.5).
package significance
