package linkgraph

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line. A node with a very large
// out-degree lists every destination on one line; 64 MiB accommodates
// multi-million-degree hubs without unbounded allocation.
const maxLineBytes = 64 << 20

// initialLineBytes is the scanner's starting buffer size.
const initialLineBytes = 64 << 10

// Load parses an edge-list description from r and builds the Graph
// snapshot: node count, CSR-by-destination transition matrix and
// per-node dangling flags.
//
// Implementation:
//   - Stage 1: read the two header lines (node count n, edge count m).
//   - Stage 2: scan the remaining lines into three parallel triple
//     arrays (source, destination, 1/outdeg), clearing the dangling
//     flag of every source with ≥1 destination. Blank lines are
//     skipped; omitted nodes stay dangling.
//   - Stage 3: verify the parsed link count equals the declared m.
//   - Stage 4: counting-sort the triples by destination into CSR form
//     in one linear pass.
//
// Memory stays O(n + m) throughout; no dense n×n structure is formed.
//
// Errors: every structural problem (non-integer fields, ids outside
// [0, n), negative counts, missing headers, edge-count mismatch) is
// reported as a wrapped ErrMalformedInput with line context, and no
// partial Graph is returned.
//
// Complexity: O(n + m) time, O(n + m) memory.
func Load(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialLineBytes), maxLineBytes)

	n, err := readHeaderCount(sc, "node count")
	if err != nil {
		return nil, err
	}
	m, err := readHeaderCount(sc, "edge count")
	if err != nil {
		return nil, err
	}

	// Parallel triple arrays, exactly m slots.
	srcs := make([]int32, m)
	dsts := make([]int32, m)
	wts := make([]float64, m)
	dangling := make([]bool, n)
	for i := range dangling {
		dangling[i] = true
	}

	seen := 0   // triples written so far
	lineNo := 2 // header lines already consumed
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue // omitted nodes are dangling; blank lines carry no fields
		}
		fields := strings.Split(line, ",")
		source, err := parseNodeID(fields[0], n, lineNo)
		if err != nil {
			return nil, err
		}
		outdeg := len(fields) - 1
		if outdeg == 0 {
			continue // a bare source line contributes no links
		}
		dangling[source] = false
		w := 1.0 / float64(outdeg)
		for _, f := range fields[1:] {
			dest, err := parseNodeID(f, n, lineNo)
			if err != nil {
				return nil, err
			}
			if seen == m {
				return nil, fmt.Errorf("line %d: more than the declared %d links: %w", lineNo, m, ErrMalformedInput)
			}
			srcs[seen] = source
			dsts[seen] = dest
			wts[seen] = w
			seen++
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("linkgraph: reading edge list: %w", err)
	}
	if seen != m {
		return nil, fmt.Errorf("declared %d links but parsed %d: %w", m, seen, ErrMalformedInput)
	}

	return &Graph{N: n, Links: buildCSR(n, srcs, dsts, wts), Dangling: dangling}, nil
}

// LoadFile opens path and delegates to Load. Paths ending in ".gz" are
// transparently decompressed, so multi-gigabyte edge lists can stay
// compressed on disk.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("linkgraph: open edge list: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, gzErr := gzip.NewReader(f)
		if gzErr != nil {
			return nil, fmt.Errorf("linkgraph: open gzip edge list: %w", gzErr)
		}
		defer gz.Close()
		r = gz
	}

	return Load(r)
}

// readHeaderCount consumes one header line and parses it as a
// non-negative integer.
func readHeaderCount(sc *bufio.Scanner, what string) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("linkgraph: reading %s: %w", what, err)
		}

		return 0, fmt.Errorf("missing %s header line: %w", what, ErrMalformedInput)
	}
	v, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return 0, fmt.Errorf("bad %s %q: %w", what, strings.TrimSpace(sc.Text()), ErrMalformedInput)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative %s %d: %w", what, v, ErrMalformedInput)
	}

	return v, nil
}

// parseNodeID parses one comma-separated field as a node id in [0, n).
func parseNodeID(field string, n, lineNo int) (int32, error) {
	id, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, fmt.Errorf("line %d: bad node id %q: %w", lineNo, strings.TrimSpace(field), ErrMalformedInput)
	}
	if id < 0 || id >= n {
		return 0, fmt.Errorf("line %d: node id %d outside [0, %d): %w", lineNo, id, n, ErrMalformedInput)
	}

	return int32(id), nil
}

// buildCSR counting-sorts m (source, dest, weight) triples by
// destination into the CSR layout in one linear pass.
func buildCSR(n int, srcs, dsts []int32, wts []float64) *LinkMatrix {
	m := len(srcs)
	rowStart := make([]int, n+1)
	for _, d := range dsts {
		rowStart[d+1]++
	}
	for d := 0; d < n; d++ {
		rowStart[d+1] += rowStart[d]
	}

	srcIDs := make([]int32, m)
	weights := make([]float64, m)
	next := make([]int, n)
	for k := 0; k < m; k++ {
		d := dsts[k]
		pos := rowStart[d] + next[d]
		next[d]++
		srcIDs[pos] = srcs[k]
		weights[pos] = wts[k]
	}

	return &LinkMatrix{n: n, rowStart: rowStart, srcIDs: srcIDs, weights: weights}
}
