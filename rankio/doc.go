// Package rankio serializes rank vectors in the line-oriented text
// format emitted after a solve:
//
//	<node_id>, <rank_value>
//
// one line per node, in node-id order, rank values in Go's shortest
// round-trippable decimal form. Read is the exact inverse of Write, so
// a persisted vector reloads bit-for-bit.
package rankio
