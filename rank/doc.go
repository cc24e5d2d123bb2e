// Package rank runs damped power iteration over a linkgraph.Graph
// snapshot and returns the PageRank vector — the stationary
// distribution of the damped random-surfer Markov chain.
//
// Update rule (one iteration, fixed order):
//
//	danglingMass = damp · Σ r_old[i] over dangling i
//	r  = danglingMass · u          // redistribute trapped mass
//	r += (1 − damp) · u            // teleportation
//	r += damp · (L · r_old)        // sparse product, O(m)
//	r /= ‖r‖₁                      // keep r a probability distribution
//	residual = ‖r_old − r‖₁
//
// where u is the uniform vector (1/n everywhere) and L the
// CSR-by-destination transition matrix. Iteration stops when the
// residual drops to Eps (StopResidual) or after MaxIters steps
// (StopIters), whichever comes first; the check happens before any
// work for that iteration, so MaxIters = 0 returns the untouched
// uniform vector.
//
// Without the dangling-mass term, nodes with no out-links would leak
// probability mass every iteration and ‖r‖₁ would drift below 1; the
// explicit redistribution plus the post-step normalization keep r a
// valid distribution after every iteration.
//
// The solver never logs. Progress reporting goes through the optional
// Observer hooks (OnIterationStart / OnIterationEnd).
//
// Performance:
//
//   - Time:   O(n + m) per iteration; the sparse product may be split
//     across Options.Workers goroutines
//   - Memory: O(n) working state (double-buffered r / r_old)
//
// The Graph snapshot is read-only for the whole solve; iterations are
// strictly sequential (k+1 consumes the full result of k).
package rank
