package distill

import "math/rand"

// Options configures one Distill run.
//
// Eta              – descent threshold below which a probability drop
//
//	counts as a candidate boundary. Must be in [0,1]. Default 0.9.
//
// Alpha            – significance threshold on the binomial-tail p-value.
//
//	Must be in [0,1]. Default 0.01.
//
// ContextSize      – bootstrap window size; generalisation is disabled
//
//	when < 3. Must be >= 0. Default 0 (disabled).
//
// OverlapThreshold – minimum member-overlap ratio to reuse an existing
//
//	equivalence class during bootstrap. Must be in [0,1]. Default 0.5.
//
// Logger           – receives one line per outer-loop iteration and per
//
//	installed pattern. Default is a no-op logger.
//
// Rand             – an RNG kept with the options; Distill draws nothing
//
//	from it and does not return it. Default is rand.New(rand.NewSource(1)).
type Options struct {
	Eta              float64
	Alpha            float64
	ContextSize      int
	OverlapThreshold float64
	Logger           Logger
	Rand             *rand.Rand
}

// DefaultOptions returns the parameter defaults spec.md §6 implies when
// a caller only needs to override a few fields.
func DefaultOptions() Options {
	return Options{
		Eta:              0.9,
		Alpha:            0.01,
		ContextSize:      0,
		OverlapThreshold: 0.5,
		Logger:           noopLogger{},
		Rand:             rand.New(rand.NewSource(1)),
	}
}

// Option represents a functional option for configuring Distill.
type Option func(*Options)

// WithEta sets the descent threshold.
func WithEta(eta float64) Option {
	return func(o *Options) { o.Eta = eta }
}

// WithAlpha sets the significance p-value threshold.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// WithContextSize sets the generalisation bootstrap window size.
func WithContextSize(n int) Option {
	return func(o *Options) { o.ContextSize = n }
}

// WithOverlapThreshold sets the equivalence-class reuse threshold.
func WithOverlapThreshold(ratio float64) Option {
	return func(o *Options) { o.OverlapThreshold = ratio }
}

// WithLogger overrides the default no-op logger.
func WithLogger(l Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithRand overrides the default deterministic RNG.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

func (o Options) validate() error {
	if o.Eta < 0 || o.Eta > 1 {
		return ErrInvalidParameters
	}
	if o.Alpha < 0 || o.Alpha > 1 {
		return ErrInvalidParameters
	}
	if o.OverlapThreshold < 0 || o.OverlapThreshold > 1 {
		return ErrInvalidParameters
	}
	if o.ContextSize < 0 {
		return ErrInvalidParameters
	}
	return nil
}
