// Command csstok exposes every §6 entry point of the css package
// as a cobra subcommand, for inspecting how a stylesheet, rule, or
// component-value list tokenizes and parses.
package main

import (
	"fmt"
	"os"

	"github.com/lukehoban/csssyntax/cmd/csstok/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
