// Package matrix implements the connection / flow / descent matrix
// triple described in spec.md §4.2-§4.3: for one path through the RDS
// graph, it computes, for every pair of positions (i,j), the set of
// corpus occurrences that share the sub-path between them, and the
// derived continuation-probability (flow) and probability-drop (descent)
// matrices the significance kernel searches for pattern boundaries.
//
// This package replaces the teacher's (katalvlaran/lvlath) general-purpose
// adjacency/incidence Matrix facade with a domain-specific ConnectionMatrix
// (a set-valued matrix, not float-valued) plus a small row-major Dense
// type for the float64-valued flow/descent matrices, built in the same
// style as the teacher's matrix.Dense/validators/errors.go: sentinel
// errors, an explicit shape check on every constructor, no panics on
// caller-triggered conditions.
package matrix
