package rank

import "errors"

// Sentinel errors for the solver. Parameter problems are detected
// before the first iteration; no computation is attempted on invalid
// input. Match with errors.Is.
var (
	// ErrInvalidParameter indicates a solver parameter outside its
	// valid domain: Damp ∉ [0,1], Eps < 0, MaxIters < 0, Workers < 0,
	// or a snapshot whose dimensions disagree.
	ErrInvalidParameter = errors.New("rank: invalid solver parameter")

	// ErrNilGraph indicates a nil *linkgraph.Graph was passed to Solve.
	ErrNilGraph = errors.New("rank: graph snapshot is nil")

	// ErrRankNotNormalized reports a failed post-iteration invariant:
	// ‖r‖₁ drifted outside 1 ± normTolerance. It signals a numeric
	// defect in the solver itself, never a bad input.
	ErrRankNotNormalized = errors.New("rank: rank vector is not L1-normalized")
)
