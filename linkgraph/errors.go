package linkgraph

import "errors"

// Sentinel errors for linkgraph operations. Loader errors carry line
// context via fmt.Errorf("...: %w", ErrMalformedInput); match them with
// errors.Is.
var (
	// ErrMalformedInput indicates a structural problem in the edge-list
	// source: non-integer fields, node ids outside [0, n), a negative
	// node or edge count, missing header lines, or a mismatch between
	// the declared edge count and the number of parsed links.
	ErrMalformedInput = errors.New("linkgraph: malformed edge-list input")

	// ErrNilMatrix indicates a nil *LinkMatrix receiver.
	ErrNilMatrix = errors.New("linkgraph: nil LinkMatrix receiver")

	// ErrDimensionMismatch indicates a vector whose length does not
	// match the matrix dimension.
	ErrDimensionMismatch = errors.New("linkgraph: vector length does not match matrix dimension")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("linkgraph: worker count must be ≥ 1")
)
