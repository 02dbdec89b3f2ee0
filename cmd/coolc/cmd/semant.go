package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/freaknbigpanda/coolc/internal/printer"
	"github.com/freaknbigpanda/coolc/internal/reader"
	"github.com/freaknbigpanda/coolc/internal/semantic"
	"github.com/freaknbigpanda/coolc/pkg/symbol"
	"github.com/spf13/cobra"
)

var semantDebug bool

var semantCmd = &cobra.Command{
	Use:   "semant [file]",
	Short: "Run inheritance validation and type checking over a serialized AST",
	Long: `semant reads a serialized Cool AST from file (or standard input when
no file is given), runs the two-phase semantic pipeline, and either
writes the type-annotated AST to standard output or a list of
diagnostics to standard error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSemant,
}

func init() {
	rootCmd.AddCommand(semantCmd)
	semantCmd.Flags().BoolVarP(&semantDebug, "semant-debug", "s", false, "trace the inheritance graph to stderr")
}

func runSemant(_ *cobra.Command, args []string) (err error) {
	filename := "<stdin>"
	var in io.Reader = os.Stdin

	if len(args) == 1 {
		filename = args[0]
		f, openErr := os.Open(filename)
		if openErr != nil {
			return fmt.Errorf("failed to open %s: %w", filename, openErr)
		}
		defer f.Close()
		in = f
	}

	// A panic here means an analyzer invariant was violated (e.g. an
	// unhandled expression variant reaching typecheck) rather than a
	// problem with the input program; report it like any other fatal
	// tool error instead of crashing with a raw stack trace.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	symbols, builtins := symbol.NewTableWithBuiltins()

	prog, readErr := reader.Read(in, filename, symbols)
	if readErr != nil {
		return fmt.Errorf("failed to parse AST: %w", readErr)
	}

	analyzer := semantic.New(symbols, builtins)
	if semantDebug {
		analyzer.SetDebugOutput(os.Stderr)
	}

	sink := analyzer.Analyze(prog)
	if sink.HasErrors() {
		sink.Emit(os.Stderr)
		fmt.Fprintln(os.Stderr, "Compilation halted due to static semantic errors.")
		os.Exit(1)
	}

	printer.Print(os.Stdout, prog)
	return nil
}
