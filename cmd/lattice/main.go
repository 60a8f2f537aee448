// Command lattice inspects lattice widget trees from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/lattice/cmd/lattice/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
