package rank

import (
	"fmt"
	"math"
)

// DEFAULTS — single source of truth for DefaultOptions.
const (
	// DefaultDamp is the probability of following an out-link rather
	// than teleporting; 0.85 is the classic web-graph choice.
	DefaultDamp = 0.85

	// DefaultEps is the L1-residual convergence threshold.
	DefaultEps = 1e-7

	// DefaultMaxIters caps the number of power-iteration steps.
	DefaultMaxIters = 50

	// DefaultWorkers runs the sparse product on a single goroutine.
	DefaultWorkers = 1
)

// normTolerance bounds the allowed drift of ‖r‖₁ from 1 in the
// post-iteration invariant check.
const normTolerance = 1e-4

// Options configures Solve.
//
// Fields:
//   - Damp     — damping factor in [0, 1]; 1−Damp is the teleport
//     probability.
//   - Eps      — non-negative residual threshold; iteration stops once
//     ‖r_old − r‖₁ ≤ Eps.
//   - MaxIters — non-negative iteration cap; 0 returns the uniform
//     starting vector untouched.
//   - Workers  — goroutines for the sparse matrix-vector product;
//     0 means DefaultWorkers. The result is identical for any count.
//   - Observer — optional progress hooks; nil disables them.
//
// Example:
//
//	opts := rank.DefaultOptions()
//	opts.Eps = 1e-10
//	opts.Workers = runtime.NumCPU()
//	res, err := rank.Solve(g, opts)
type Options struct {
	Damp     float64
	Eps      float64
	MaxIters int
	Workers  int
	Observer Observer
}

// DefaultOptions returns the documented defaults:
// Damp=0.85, Eps=1e-7, MaxIters=50, Workers=1, no Observer.
func DefaultOptions() Options {
	return Options{
		Damp:     DefaultDamp,
		Eps:      DefaultEps,
		MaxIters: DefaultMaxIters,
		Workers:  DefaultWorkers,
	}
}

// validate checks every parameter domain before the first iteration
// and normalizes Workers=0 to the default. Violations wrap
// ErrInvalidParameter.
func (o *Options) validate() error {
	if math.IsNaN(o.Damp) || o.Damp < 0 || o.Damp > 1 {
		return fmt.Errorf("damp %v outside [0, 1]: %w", o.Damp, ErrInvalidParameter)
	}
	if math.IsNaN(o.Eps) || o.Eps < 0 {
		return fmt.Errorf("eps %v is negative: %w", o.Eps, ErrInvalidParameter)
	}
	if o.MaxIters < 0 {
		return fmt.Errorf("maxIters %d is negative: %w", o.MaxIters, ErrInvalidParameter)
	}
	if o.Workers < 0 {
		return fmt.Errorf("workers %d is negative: %w", o.Workers, ErrInvalidParameter)
	}
	if o.Workers == 0 {
		o.Workers = DefaultWorkers
	}

	return nil
}
