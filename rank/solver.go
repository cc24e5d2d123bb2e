package rank

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pagerank/linkgraph"
)

// Solve runs damped power iteration over the snapshot g until the L1
// residual between successive iterates drops to opts.Eps or
// opts.MaxIters steps have run, and returns the final rank vector with
// the residual, iteration count and stop reason.
//
// Implementation:
//   - Stage 1: validate parameters and snapshot dimensions
//     (ErrInvalidParameter / ErrNilGraph; nothing is computed on
//     failure).
//   - Stage 2: initialize r to the uniform vector u = 1/n and seed the
//     residual with the sentinel Eps+1, strictly above any admissible
//     threshold, so the first loop-top check never stops prematurely.
//   - Stage 3: loop — stop on residual ≤ Eps (StopResidual) or
//     iterations == MaxIters (StopIters), both checked before doing
//     any work; otherwise run one update step in the fixed order
//     documented in the package comment.
//   - Stage 4: verify the post-iteration invariant |1 − ‖r‖₁| <
//     normTolerance; violation is ErrRankNotNormalized, a solver
//     defect rather than an input error.
//
// The snapshot is never mutated; r and r_old are double-buffered, so
// every worker of the sparse product reads a frozen r_old and writes
// disjoint rows of r.
//
// Complexity: O(n + m) time per iteration, O(n) working memory.
func Solve(g *linkgraph.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	n := g.N
	if g.Links.Dims() != n || len(g.Dangling) != n {
		return Result{}, fmt.Errorf(
			"snapshot dimensions disagree (n=%d, links=%d, dangling=%d): %w",
			n, g.Links.Dims(), len(g.Dangling), ErrInvalidParameter)
	}
	if n == 0 {
		return Result{}, fmt.Errorf("graph has no nodes: %w", ErrInvalidParameter)
	}

	uniform := 1.0 / float64(n) // every element of u
	r := make([]float64, n)
	fill(r, uniform)
	rOld := make([]float64, n)

	residual := opts.Eps + 1 // sentinel: strictly above Eps
	iters := 0
	var stop StopReason

	for {
		if residual <= opts.Eps {
			stop = StopResidual

			break
		}
		if iters == opts.MaxIters {
			stop = StopIters

			break
		}
		iters++
		if opts.Observer != nil {
			opts.Observer.OnIterationStart(iters)
		}

		copy(rOld, r)

		// Mass trapped at dangling nodes this iteration; the reduction
		// completes before any redistribution below.
		danglingMass := 0.0
		for i, d := range g.Dangling {
			if d {
				danglingMass += rOld[i]
			}
		}
		danglingMass *= opts.Damp

		// r = danglingMass·u + (1−damp)·u, then r += damp·(L·r_old).
		fill(r, danglingMass*uniform+(1-opts.Damp)*uniform)
		if err := g.Links.AddScaledMulVec(r, rOld, opts.Damp, opts.Workers); err != nil {
			return Result{}, fmt.Errorf("rank: sparse product: %w", err)
		}

		scaleInPlace(r, 1/norm1(r)) // require ‖r‖₁ = 1

		residual = l1Distance(rOld, r)
		if opts.Observer != nil {
			opts.Observer.OnIterationEnd(iters, residual)
		}
	}

	// NaN-safe phrasing of |1 − ‖r‖₁| < normTolerance.
	if !(math.Abs(1-norm1(r)) < normTolerance) {
		return Result{}, fmt.Errorf("‖r‖₁ = %v after %d iterations: %w", norm1(r), iters, ErrRankNotNormalized)
	}

	return Result{Rank: r, Residual: residual, Iterations: iters, Stop: stop}, nil
}
