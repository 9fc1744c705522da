// Command molchain generates idealized atomic-chain and lattice geometries.
package main

import (
	"os"

	"github.com/katalvlaran/molchain/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
