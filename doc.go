// Package adios implements ADIOS (Automatic DIstillation Of Structure),
// an unsupervised grammar-induction algorithm: given a corpus of token
// sequences, it iteratively discovers recurrent significant
// subsequences and interchangeable slot positions, rewiring them into a
// growing hypergraph of non-terminals until no further statistical
// structure can be extracted, then emits the result as a probabilistic
// context-free grammar.
//
// Package layout:
//
//   - rdsgraph: the mutable hypergraph — nodes, paths, parse trees, and
//     the rewiring operator that atomically mutates all three.
//   - matrix: the connection/flow/descent matrix triple built per path.
//   - significance: the binomial-tail boundary search over that triple.
//   - generalise: bootstrap and equivalence-class discovery via
//     simulated rewiring on a disposable graph clone.
//   - pcfg: probability estimation, grammar emission, and sequence
//     generation.
//   - distill: the outer fixed-point driver tying the above together.
//   - mathx: the special functions (log-gamma, digamma, binomial tail)
//     the significance kernel depends on.
//   - corpus: the plain-text sentence reader.
//   - telemetry: Prometheus counters for patterns installed and
//     rewirings applied.
//   - cmd/adios: a thin CLI wrapper over distill.
package adios
