// Command roomgraph computes an MST, a fast TSP tour or an optimal TSP tour
// over the rooms read from standard input.
package main

import (
	"os"

	"github.com/katalvlaran/roomgraph/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
