// Command strpart prints every way to cut a string, or a length, into
// pieces no shorter than a given minimum.
package main

import (
	"os"

	"github.com/katalvlaran/strpart/cmd/strpart/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
