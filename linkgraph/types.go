// Package linkgraph: domain types for the sparse link-graph snapshot.
package linkgraph

import "sync"

// LinkMatrix is the sparse transition matrix of a link graph, stored in
// compressed sparse row form indexed by destination: row d lists every
// source s that links to d together with weight 1/outdeg(s).
//
// The layout is three parallel slices:
//
//	rowStart — n+1 offsets; row d occupies [rowStart[d], rowStart[d+1])
//	srcIDs   — m source ids, grouped by destination
//	weights  — m transition weights, aligned with srcIDs
//
// A LinkMatrix is immutable once built (only Load constructs one) and
// safe for concurrent read access.
type LinkMatrix struct {
	n        int       // node count (matrix is n×n)
	rowStart []int     // CSR row offsets, len n+1
	srcIDs   []int32   // source id per stored entry, len m
	weights  []float64 // transition weight per stored entry, len m
}

// Dims returns the node count n (the matrix is n×n).
// Complexity: O(1).
func (lm *LinkMatrix) Dims() int {
	if lm == nil {
		return 0
	}

	return lm.n
}

// Edges returns the number of stored links m.
// Complexity: O(1).
func (lm *LinkMatrix) Edges() int {
	if lm == nil {
		return 0
	}

	return len(lm.srcIDs)
}

// OutWeightSums returns, per source node, the total weight of its
// outgoing links. For every non-dangling source the sum is 1 within
// floating tolerance (column-stochastic property); for dangling sources
// it is 0. Intended for validation and tests.
// Complexity: O(n + m) time, O(n) memory.
func (lm *LinkMatrix) OutWeightSums() []float64 {
	if lm == nil {
		return nil
	}
	sums := make([]float64, lm.n)
	for k, s := range lm.srcIDs {
		sums[s] += lm.weights[k]
	}

	return sums
}

// AddScaledMulVec accumulates dst += scale * (L · x), where L is the
// transition matrix: for each destination d it sums weight·x[source]
// over all stored links into d. This is the O(n + m) kernel of one
// power-iteration step; no dense intermediate is ever formed.
//
// workers selects how many goroutines share the work. Rows are split
// into contiguous destination ranges, each summed sequentially by
// exactly one worker, so the result is deterministic and no two
// workers ever write the same dst element. x must not alias dst.
//
// Errors:
//   - ErrNilMatrix when the receiver is nil.
//   - ErrDimensionMismatch when len(dst) or len(x) differs from Dims.
//   - ErrBadWorkers when workers < 1.
func (lm *LinkMatrix) AddScaledMulVec(dst, x []float64, scale float64, workers int) error {
	if lm == nil {
		return ErrNilMatrix
	}
	if len(dst) != lm.n || len(x) != lm.n {
		return ErrDimensionMismatch
	}
	if workers < 1 {
		return ErrBadWorkers
	}
	if workers > lm.n {
		workers = lm.n // never spawn more workers than rows
	}
	if workers <= 1 {
		lm.addScaledMulVecRange(dst, x, scale, 0, lm.n)

		return nil
	}

	// Partition destination rows into contiguous chunks.
	chunk := (lm.n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < lm.n; lo += chunk {
		hi := lo + chunk
		if hi > lm.n {
			hi = lm.n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			lm.addScaledMulVecRange(dst, x, scale, lo, hi)
		}(lo, hi)
	}
	wg.Wait()

	return nil
}

// addScaledMulVecRange accumulates rows [lo, hi). Bounds are the
// caller's responsibility.
func (lm *LinkMatrix) addScaledMulVecRange(dst, x []float64, scale float64, lo, hi int) {
	for d := lo; d < hi; d++ {
		sum := 0.0
		for k := lm.rowStart[d]; k < lm.rowStart[d+1]; k++ {
			sum += lm.weights[k] * x[lm.srcIDs[k]]
		}
		dst[d] += scale * sum
	}
}

// Graph is the immutable link-graph snapshot handed to the solver.
//
// Invariants (established by Load, relied upon by rank.Solve):
//   - Links.Dims() == N == len(Dangling)
//   - Dangling[i] == true ⇔ node i appears as a source in no link
//   - for every non-dangling source, its outgoing weights sum to 1
//     within floating tolerance
type Graph struct {
	N        int         // node count
	Links    *LinkMatrix // transition weights, CSR by destination
	Dangling []bool      // true ⇔ node has zero out-links
}
