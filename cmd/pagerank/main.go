// Command pagerank loads an edge-list file, computes the PageRank
// vector via damped power iteration and writes the ranks file.
//
// Usage:
//
//	pagerank links.txt [--damp 0.85] [--eps 1e-7] [--max-iters 50]
//	         [--workers N] [--output ranks] [--verbose]
//
// Edge lists ending in .gz are decompressed on the fly.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pagerank/linkgraph"
	"github.com/katalvlaran/pagerank/rank"
	"github.com/katalvlaran/pagerank/rankio"
)

var rootCmd = &cobra.Command{
	Use:   "pagerank <links-file>",
	Short: "Compute PageRank of a directed link graph",
	Long: "pagerank reads a line-oriented edge list (node count, edge count,\n" +
		"then one \"SOURCE, DEST1, DEST2, ...\" line per node with out-links),\n" +
		"runs damped power iteration until the L1 residual converges, and\n" +
		"writes one \"id, rank\" line per node to the output file.",
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().Float64("damp", rank.DefaultDamp, "damping factor in [0,1]")
	rootCmd.Flags().Float64("eps", rank.DefaultEps, "L1-residual convergence threshold")
	rootCmd.Flags().Int("max-iters", rank.DefaultMaxIters, "iteration cap")
	rootCmd.Flags().Int("workers", rank.DefaultWorkers, "goroutines for the sparse product")
	rootCmd.Flags().StringP("output", "o", "ranks", "output ranks file")
	rootCmd.Flags().BoolP("verbose", "v", false, "log per-iteration residuals")
}

func run(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := rank.DefaultOptions()
	opts.Damp, _ = cmd.Flags().GetFloat64("damp")
	opts.Eps, _ = cmd.Flags().GetFloat64("eps")
	opts.MaxIters, _ = cmd.Flags().GetInt("max-iters")
	opts.Workers, _ = cmd.Flags().GetInt("workers")
	opts.Observer = &slogObserver{log: log}
	output, _ := cmd.Flags().GetString("output")

	log.Info("reading links file", "path", args[0])
	g, err := linkgraph.LoadFile(args[0])
	if err != nil {
		return err
	}
	log.Info("links file loaded", "nodes", g.N, "links", g.Links.Edges())

	log.Info("computing PageRank",
		"damp", opts.Damp, "eps", opts.Eps, "maxIters", opts.MaxIters, "workers", opts.Workers)
	res, err := rank.Solve(g, opts)
	if err != nil {
		return err
	}
	log.Info("done", "stop", string(res.Stop), "iterations", res.Iterations, "residual", res.Residual)

	top := argmax(res.Rank)
	log.Debug("highest-ranked node", "node", top, "rank", res.Rank[top])

	log.Info("writing ranks file", "path", output)
	if err = rankio.WriteFile(output, res.Rank); err != nil {
		return err
	}
	log.Info("done")

	return nil
}

// argmax returns the index of the largest element (first on ties).
func argmax(v []float64) int {
	best := 0
	for i, x := range v {
		if x > v[best] {
			best = i
		}
	}

	return best
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
