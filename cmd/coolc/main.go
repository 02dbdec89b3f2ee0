// Command coolc is the static semantic analyzer for Cool. It reads a
// serialized AST, validates the inheritance graph, type-checks every
// expression, and writes either the type-annotated AST or a list of
// diagnostics.
package main

import (
	"fmt"
	"os"

	"github.com/freaknbigpanda/coolc/cmd/coolc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
