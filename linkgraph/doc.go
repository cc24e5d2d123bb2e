// Package linkgraph loads flat edge-list descriptions of directed link
// graphs into a compact sparse transition structure suitable for
// PageRank-style iteration.
//
// Input format (text, line-oriented):
//
//	<n>                      node count; ids are dense integers 0..n-1
//	<m>                      total out-link count across all nodes
//	<source>, <d1>, <d2>...  one line per node with ≥1 out-link
//
// Nodes with no outgoing links may be omitted entirely; their presence
// is inferred by absence and recorded in the dangling flags.
//
// The loader produces a Graph snapshot:
//
//   - LinkMatrix — the column-stochastic transition weights
//     (weight = 1/outdeg(source)) stored in CSR indexed by destination,
//     so that the matrix-vector product sums, per destination, the
//     weighted contributions of all sources pointing to it in O(n+m).
//   - Dangling — one flag per node, true iff the node has no out-links.
//
// The snapshot is built once and is immutable afterwards; it may be
// shared read-only across goroutines without locks.
//
// Performance:
//
//   - Load: O(n + m) time, O(n + m) memory (no dense n×n intermediate)
//   - AddScaledMulVec: O(n + m) time, optionally partitioned across
//     workers by destination-row ranges
//
// All structural input problems (bad integers, ids outside [0,n),
// declared-vs-parsed edge count mismatch) are reported as
// ErrMalformedInput; no partial Graph is ever returned.
package linkgraph
