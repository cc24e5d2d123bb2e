package linkgraph_test

import (
	"math/rand"
	"strconv"
	"strings"
)

// randomEdgeList builds a deterministic pseudo-random edge-list text:
// every node except each 10th (kept dangling) gets outdeg random
// destinations. Seeded rand keeps runs reproducible.
func randomEdgeList(n, outdeg int, seed int64) string {
	rng := rand.New(rand.NewSource(seed))
	var sb strings.Builder

	links := 0
	var body strings.Builder
	for s := 0; s < n; s++ {
		if s%10 == 0 {
			continue // dangling: no line at all
		}
		body.WriteString(strconv.Itoa(s))
		for i := 0; i < outdeg; i++ {
			body.WriteString(", ")
			body.WriteString(strconv.Itoa(rng.Intn(n)))
		}
		body.WriteByte('\n')
		links += outdeg
	}

	sb.WriteString(strconv.Itoa(n))
	sb.WriteByte('\n')
	sb.WriteString(strconv.Itoa(links))
	sb.WriteByte('\n')
	sb.WriteString(body.String())

	return sb.String()
}
