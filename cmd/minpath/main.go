// Command minpath finds minimum-cost paths in directed weighted graphs.
package main

import (
	"os"

	"github.com/katalvlaran/minpath/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
