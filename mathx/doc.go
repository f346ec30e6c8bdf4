// Package mathx provides the special functions spec.md §1 assumes are
// available from an external "special-function library": log-gamma,
// digamma, log-factorial, and the binomial pmf/tail used by the
// significance kernel's binomial tail tests.
//
// No such library appears anywhere in the retrieval pack (no gonum/stat,
// no gonum/mathext, no equivalent) — see DESIGN.md. mathx is therefore
// implemented directly on the standard library's math.Lgamma, following
// the Lanczos-approximation structure of the original madios
// implementation's src/maths/special.h, which is the normal, idiomatic
// way to provide this in Go absent a third-party numerics dependency in
// scope.
package mathx
