package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "coolc",
	Short: "Static semantic analyzer for Cool",
	Long: `coolc is a static semantic analyzer for Cool, the Classroom
Object-Oriented Language: a small, statically-typed, single-inheritance,
class-based teaching language.

Given a serialized abstract syntax tree on standard input (or a file),
coolc validates the class hierarchy, resolves method and attribute
inheritance, and recursively type-checks every expression. On success
it writes the type-annotated AST to standard output; on failure it
writes one diagnostic per line to standard error and exits 1.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}
