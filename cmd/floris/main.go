// Command floris is a command-line interface for the wind-farm wake
// solver.
package main

import (
	"fmt"
	"os"

	"github.com/nrel/florisgo/floriscli"
)

func main() {
	cfg := floriscli.InitializeConfig()
	if err := cfg.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
