package rankio_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/pagerank/rankio"
)

// ExampleWrite emits one "<id>, <rank>" line per node in id order.
func ExampleWrite() {
	if err := rankio.Write(os.Stdout, []float64{0.5, 0.25, 0.25}); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// 0, 0.5
	// 1, 0.25
	// 2, 0.25
}
