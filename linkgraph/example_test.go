package linkgraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pagerank/linkgraph"
)

// ExampleLoad parses the documentation graph: 3 pages, page 0 links to
// 1 and 2, page 1 links to 2, page 2 links to 0.
func ExampleLoad() {
	in := "3\n" +
		"4\n" +
		"0, 1, 2\n" +
		"1, 2\n" +
		"2, 0\n"

	g, err := linkgraph.Load(strings.NewReader(in))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	dangling := 0
	for _, d := range g.Dangling {
		if d {
			dangling++
		}
	}
	fmt.Printf("nodes=%d links=%d dangling=%d\n", g.N, g.Links.Edges(), dangling)
	// Output: nodes=3 links=4 dangling=0
}
