package rankio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMalformedRanks indicates a structural problem in a ranks file:
// a bad field count, a non-numeric field, or node ids that are not
// exactly 0..n−1 in order.
var ErrMalformedRanks = errors.New("rankio: malformed ranks input")

// Write emits one "<id>, <rank>" line per node in id order.
// Values use strconv.FormatFloat(v, 'g', -1, 64), the shortest decimal
// form that parses back to the identical float64.
// Complexity: O(n).
func Write(w io.Writer, ranks []float64) error {
	bw := bufio.NewWriter(w)
	for i, v := range ranks {
		if _, err := bw.WriteString(strconv.Itoa(i)); err != nil {
			return fmt.Errorf("rankio: write ranks: %w", err)
		}
		if _, err := bw.WriteString(", "); err != nil {
			return fmt.Errorf("rankio: write ranks: %w", err)
		}
		if _, err := bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
			return fmt.Errorf("rankio: write ranks: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("rankio: write ranks: %w", err)
		}
	}

	return bw.Flush()
}

// Read parses the Write format back into a dense vector. Node ids must
// be exactly 0, 1, 2, ... in order; any gap, reorder, extra field or
// unparsable number yields a wrapped ErrMalformedRanks.
// Complexity: O(n).
func Read(r io.Reader) ([]float64, error) {
	var ranks []float64
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 fields, got %d: %w", lineNo, len(fields), ErrMalformedRanks)
		}
		id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad node id %q: %w", lineNo, strings.TrimSpace(fields[0]), ErrMalformedRanks)
		}
		if id != len(ranks) {
			return nil, fmt.Errorf("line %d: node id %d, expected %d: %w", lineNo, id, len(ranks), ErrMalformedRanks)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad rank value %q: %w", lineNo, strings.TrimSpace(fields[1]), ErrMalformedRanks)
		}
		ranks = append(ranks, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("rankio: read ranks: %w", err)
	}

	return ranks, nil
}

// WriteFile writes ranks to path, truncating any existing file.
func WriteFile(path string, ranks []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rankio: create ranks file: %w", err)
	}
	if err = Write(f, ranks); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// ReadFile reads a ranks file written by WriteFile.
func ReadFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rankio: open ranks file: %w", err)
	}
	defer f.Close()

	return Read(f)
}
