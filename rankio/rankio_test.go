package rankio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pagerank/rankio"
)

// TestWriteRead_RoundTrip: the 'g'/-1 formatting is the shortest form
// that parses back to the identical float64, so the round trip is
// exact, not just within tolerance.
func TestWriteRead_RoundTrip(t *testing.T) {
	ranks := []float64{0.38779, 0.21481, 0.3974, 1.0 / 3, 1e-12}

	var buf bytes.Buffer
	require.NoError(t, rankio.Write(&buf, ranks))

	got, err := rankio.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, ranks, got, "round trip must be bit-exact")
}

// TestWrite_Format pins the exact line layout: "<id>, <rank>".
func TestWrite_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, rankio.Write(&buf, []float64{0.5, 0.25, 0.25}))

	assert.Equal(t, "0, 0.5\n1, 0.25\n2, 0.25\n", buf.String())
}

// TestWrite_Empty writes nothing for an empty vector.
func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, rankio.Write(&buf, nil))
	assert.Zero(t, buf.Len())

	got, err := rankio.Read(&buf)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestRead_Malformed exercises every structural error path.
func TestRead_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"missing field", "0\n"},
		{"extra field", "0, 0.5, 0.5\n"},
		{"bad id", "zero, 0.5\n"},
		{"bad value", "0, half\n"},
		{"id gap", "0, 0.5\n2, 0.5\n"},
		{"id out of order", "1, 0.5\n0, 0.5\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := rankio.Read(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, rankio.ErrMalformedRanks, "input %q", tc.in)
			assert.Nil(t, got)
		})
	}
}

// TestWriteFileReadFile covers the file-path conveniences.
func TestWriteFileReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranks")
	ranks := []float64{0.6, 0.3, 0.1}

	require.NoError(t, rankio.WriteFile(path, ranks))
	got, err := rankio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ranks, got)

	_, err = rankio.ReadFile(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
