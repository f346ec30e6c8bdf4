package distill

import "fmt"

// Logger receives the driver's progress lines. It mirrors the single
// Printf-style method the teacher's flow package gates behind a
// Verbose option (flow.WithVerbose, fmt.Printf to stdout); here it is a
// caller-supplied interface instead of a bool, so tests can capture
// output and production callers can route it into their own logging
// stack.
type Logger interface {
	Printf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Printf(string, ...interface{}) {}

// StdLogger is a Logger that writes straight to fmt.Printf, for callers
// who want the teacher's original stdout-verbose behavior with no setup.
type StdLogger struct{}

func (StdLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}
