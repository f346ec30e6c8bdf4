// Command adios runs grammar induction over a corpus file and prints
// the resulting PCFG. It is a thin wrapper over the distill package —
// the CLI surface itself carries no algorithmic logic.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/adios/adios/corpus"
	"github.com/adios/adios/distill"
)

func main() {
	var (
		eta              = flag.Float64("eta", 0.9, "descent threshold")
		alpha            = flag.Float64("alpha", 0.01, "significance p-value threshold")
		contextSize      = flag.Int("context", 0, "generalisation window size (<3 disables generalisation)")
		overlapThreshold = flag.Float64("overlap", 0.5, "equivalence-class reuse overlap threshold")
		seed             = flag.Int64("seed", 1, "deterministic RNG seed")
		verbose          = flag.Bool("verbose", false, "log one line per outer-loop iteration")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: adios [flags] <corpus-file>")
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	sequences, warning, err := corpus.ReadSequences(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if warning != nil {
		fmt.Fprintf(os.Stderr, "warning: line %d: %s\n", warning.Line, warning.Message)
	}

	opts := []distill.Option{
		distill.WithEta(*eta),
		distill.WithAlpha(*alpha),
		distill.WithContextSize(*contextSize),
		distill.WithOverlapThreshold(*overlapThreshold),
		distill.WithRand(rand.New(rand.NewSource(*seed))),
	}
	if *verbose {
		opts = append(opts, distill.WithLogger(distill.StdLogger{}))
	}

	result, err := distill.Distill(sequences, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := result.Grammar.Emit(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "patterns=%d rewirings=%d iterations=%d\n",
		result.PatternCount(), result.RewiringCount(), result.Iterations)
}
