package distill

import (
	"github.com/adios/adios/generalise"
	"github.com/adios/adios/matrix"
	"github.com/adios/adios/pcfg"
	"github.com/adios/adios/rdsgraph"
	"github.com/adios/adios/significance"
	"github.com/adios/adios/telemetry"
)

// Distill builds the initial graph from sequences and runs the outer
// fixed-point loop of spec.md §4.7 to convergence, then estimates
// production probabilities. Paths are swept in insertion order; within
// a path, the significance kernel evaluates candidates in
// (start, end) lexicographic order and breaks p-value ties by
// first-found (spec.md §4.7, "Tie-breaks and ordering").
func Distill(sequences [][]string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(sequences) == 0 {
		return nil, ErrEmptyCorpus
	}

	g, err := rdsgraph.NewGraph(sequences)
	if err != nil {
		return nil, err
	}

	counters := telemetry.NewCounters()
	iterations := 0

	for {
		changed := false
		for p := 0; p < g.NumPaths(); p++ {
			pathID := rdsgraph.PathID(p)
			pathLen, err := g.PathLen(pathID)
			if err != nil {
				return nil, err
			}

			var didChange bool
			if cfg.ContextSize < 3 || pathLen < cfg.ContextSize {
				didChange, err = plainDistill(g, pathID, cfg, counters)
			} else {
				didChange, err = generalisedDistill(g, pathID, cfg, counters)
			}
			if err != nil {
				return nil, err
			}
			changed = changed || didChange
		}

		iterations++
		counters.Iteration()
		cfg.Logger.Printf("distill: iteration %d, changed=%v\n", iterations, changed)

		if !changed {
			break
		}
	}

	grammar, err := pcfg.Estimate(g)
	if err != nil {
		return nil, err
	}

	return &Result{
		Graph:      g,
		Grammar:    grammar,
		Iterations: iterations,
		counters:   counters,
	}, nil
}

// plainDistill implements spec.md §4.7's plain_distill: run the
// significance kernel on the raw path and rewire the best candidate, if
// any. A false return is spec.md §7's NoPatternFound — not an error.
func plainDistill(g *rdsgraph.Graph, p rdsgraph.PathID, cfg Options, counters *telemetry.Counters) (bool, error) {
	path, err := g.Path(p)
	if err != nil {
		return false, err
	}
	if len(path) == 0 {
		return false, nil
	}

	cm, err := matrix.BuildConnections(g, path)
	if err != nil {
		return false, err
	}
	flow, descent, err := matrix.ComputeFlowsAndDescents(cm, g.CorpusSize())
	if err != nil {
		return false, err
	}
	cand, ok, err := significance.FindBestPattern(flow, descent, cm, cfg.Eta, cfg.Alpha)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	// The anchored occurrence set at (cand.End, cand.Start) names every
	// place in the corpus the winning range recurs, not just the single
	// occurrence found in path p — rewiring only p here would install a
	// separate Pattern node per path across iterations instead of one
	// shared node (spec.md §4.4/§8 scenario 2).
	occurrences, err := cm.At(cand.End, cand.Start)
	if err != nil {
		return false, err
	}

	children := append([]rdsgraph.NodeID(nil), path[cand.Start:cand.End+1]...)
	_, rewired, err := g.InstallPattern(children, occurrences)
	if err != nil {
		return false, err
	}

	counters.PatternInstalled()
	for i := 0; i < rewired; i++ {
		counters.Rewired()
	}
	cfg.Logger.Printf("distill: path %d installed pattern over [%d,%d], %d occurrences rewired\n", p, cand.Start, cand.End, rewired)
	return true, nil
}

// generalisedDistill implements spec.md §4.7's generalised_distill: run
// the bootstrap/simulation search of spec.md §4.5 and commit its winning
// candidate, if any.
func generalisedDistill(g *rdsgraph.Graph, p rdsgraph.PathID, cfg Options, counters *telemetry.Counters) (bool, error) {
	params := generalise.Params{
		ContextSize:      cfg.ContextSize,
		OverlapThreshold: cfg.OverlapThreshold,
		Eta:              cfg.Eta,
		Alpha:            cfg.Alpha,
	}

	result, ok, err := generalise.Search(g, p, params)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	ecID, patID, rewired, err := generalise.Commit(g, result)
	if err != nil {
		return false, err
	}
	if result.IsNewEC {
		counters.EquivalenceClassInstalled()
	}
	counters.PatternInstalled()
	for i := 0; i < rewired; i++ {
		counters.Rewired()
	}
	cfg.Logger.Printf("distill: path %d installed pattern %d over equivalence class %d, %d occurrences rewired\n", p, patID, ecID, rewired)
	return true, nil
}
