// Package pagerank computes the PageRank vector of large directed
// link graphs via damped power iteration — from edge-list ingestion to
// a converged probability distribution.
//
// 🚀 What is pagerank?
//
//	A small, focused library for web-scale link analysis:
//		• linkgraph: parse flat edge lists into a compact sparse
//		  transition matrix (CSR by destination) + dangling flags
//		• rank: the damped power-iteration solver with an L1-residual
//		  stopping rule, dangling-mass redistribution and teleportation
//		• rankio: the `id, rank` text format for persisted rank vectors
//
// ✨ Why choose pagerank?
//
//   - O(n + m) memory, O(m) work per iteration — millions of nodes,
//     hundreds of millions of links on a single machine
//   - Deterministic numerics — a fixed, documented update order
//   - Extensible — observer hooks (OnIterationStart, OnIterationEnd)
//     for progress reporting without any logging in the core
//
// Under the hood, everything is organized under three subpackages:
//
//	linkgraph/ — edge-list loader, sparse LinkMatrix, Graph snapshot
//	rank/      — power-iteration solver, Options, Result, Observer
//	rankio/    — rank-vector text serialization
//
// Quick example:
//
//	g, err := linkgraph.LoadFile("links.txt")
//	if err != nil { ... }
//	res, err := rank.Solve(g, rank.DefaultOptions())
//	if err != nil { ... }
//	_ = rankio.WriteFile("ranks", res.Rank)
//
// A ready-made driver lives in cmd/pagerank.
//
//	go get github.com/katalvlaran/pagerank
package pagerank
