package distill

import (
	"github.com/adios/adios/pcfg"
	"github.com/adios/adios/rdsgraph"
	"github.com/adios/adios/telemetry"
)

// Result is the outcome of one Distill run: the final graph, its
// estimated grammar, and this run's telemetry (spec.md §6).
type Result struct {
	Graph      *rdsgraph.Graph
	Grammar    *pcfg.Grammar
	Iterations int

	counters *telemetry.Counters
}

// PatternCount returns pattern_count(): the number of Pattern and
// EquivalenceClass nodes installed during this run.
func (r *Result) PatternCount() int { return r.counters.PatternCount() }

// RewiringCount returns rewiring_count(): the number of rewrites applied
// during this run.
func (r *Result) RewiringCount() int { return r.counters.RewiringCount() }
