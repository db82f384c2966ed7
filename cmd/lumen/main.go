// Command lumen is the Lumen interpreter CLI.
package main

import (
	"fmt"
	"os"

	"github.com/lumen-lang/lumen/cmd/lumen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
