// Package rank: domain types for solver results and progress hooks.
package rank

// StopReason names the terminal state of a solve.
type StopReason string

const (
	// StopResidual — the L1 residual between successive iterates
	// dropped to Eps before the iteration cap was reached.
	StopResidual StopReason = "residual"

	// StopIters — MaxIters iterations ran without the residual
	// reaching Eps.
	StopIters StopReason = "iters"
)

// Result is the output artifact of one solve.
type Result struct {
	// Rank is the final rank vector: non-negative, ‖Rank‖₁ = 1,
	// one entry per node in id order. Owned by the caller on return.
	Rank []float64

	// Residual is the L1 distance between the last two iterates
	// (the sentinel Eps+1 when no iteration ran).
	Residual float64

	// Iterations is the number of power-iteration steps performed.
	Iterations int

	// Stop records which terminal condition ended the loop.
	Stop StopReason
}

// Observer receives solver progress notifications. Implementations
// must be fast; both hooks run synchronously inside the iteration
// loop. A nil Observer in Options disables notification entirely.
type Observer interface {
	// OnIterationStart fires before iteration iter (1-based) begins.
	OnIterationStart(iter int)

	// OnIterationEnd fires after iteration iter completes, with the
	// residual it produced.
	OnIterationEnd(iter int, residual float64)
}
