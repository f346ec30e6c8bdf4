package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	patternsInstalledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "adios_patterns_installed_total",
		Help: "Total Pattern nodes installed by the rewiring operator.",
	})

	equivalenceClassesInstalledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "adios_equivalence_classes_installed_total",
		Help: "Total EquivalenceClass nodes installed by generalisation.",
	})

	rewiringsAppliedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "adios_rewirings_applied_total",
		Help: "Total path/parse-tree rewrites applied by the rewiring operator.",
	})

	distillationIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "adios_distillation_iterations",
		Help:    "Outer fixed-point loop iterations per distillation run.",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
	})
)

// Counters is a per-run accessor over the package's Prometheus metrics.
// It tracks the run's own totals locally so Result.PatternCount and
// Result.RewiringCount (spec.md §6) can report this run's contribution
// without reading back through the global Prometheus collector.
type Counters struct {
	patterns          int
	equivalenceClasses int
	rewirings         int
	iterations        int
}

// NewCounters returns a zeroed counter set for one distillation run.
func NewCounters() *Counters { return &Counters{} }

// PatternInstalled records one new Pattern node.
func (c *Counters) PatternInstalled() {
	c.patterns++
	patternsInstalledTotal.Inc()
}

// EquivalenceClassInstalled records one new EquivalenceClass node.
func (c *Counters) EquivalenceClassInstalled() {
	c.equivalenceClasses++
	equivalenceClassesInstalledTotal.Inc()
}

// Rewired records one applied rewiring (one InstallPattern/InstallEquivalenceClass
// connection actually collapsed into a path).
func (c *Counters) Rewired() {
	c.rewirings++
	rewiringsAppliedTotal.Inc()
}

// Iteration records the completion of one outer-loop pass.
func (c *Counters) Iteration() {
	c.iterations++
	distillationIterations.Observe(float64(c.iterations))
}

// PatternCount returns pattern_count(): Pattern + EquivalenceClass nodes
// installed this run (spec.md §6).
func (c *Counters) PatternCount() int {
	return c.patterns + c.equivalenceClasses
}

// RewiringCount returns rewiring_count(): rewrites applied this run.
func (c *Counters) RewiringCount() int {
	return c.rewirings
}
