package cli

import (
	"bufio"
	"fmt"

	"github.com/katalvlaran/roomgraph/mst"
	"github.com/katalvlaran/roomgraph/tsp"
)

// writeTree prints the tree weight, then one "a b " line per edge with a < b.
// Write errors surface on the final Flush.
func writeTree(w *bufio.Writer, t *mst.Tree) {
	fmt.Fprintf(w, "%.2f\n", t.Total())
	for _, e := range t.Edges() {
		fmt.Fprintf(w, "%d %d \n", e.A, e.B)
	}
}

// writeTour prints the tour length, then the visitation order on one line,
// each index followed by a space.
func writeTour(w *bufio.Writer, res tsp.Result) {
	fmt.Fprintf(w, "%.2f\n", res.Cost)
	for _, v := range res.Tour {
		fmt.Fprintf(w, "%d ", v)
	}
	w.WriteByte('\n')
}
