// Package semantic implements the two-phase pipeline of spec.md §4:
// inheritance validation followed by the four-pass type checker.
//
// Grounded on the teacher's internal/semantic package shape
// (CWBudde-go-dws): a single Analyzer struct owning the class/method
// registries and the diagnostic sink, with one file per concern
// (validator, the four checker passes, expression rules, subtyping).
package semantic

import (
	"fmt"
	"io"

	"github.com/freaknbigpanda/coolc/internal/ast"
	"github.com/freaknbigpanda/coolc/internal/diag"
	"github.com/freaknbigpanda/coolc/internal/inheritance"
	"github.com/freaknbigpanda/coolc/pkg/symbol"
)

// Analyzer runs inheritance validation and type checking over a
// *ast.Program, accumulating diagnostics in a Sink.
type Analyzer struct {
	symbols *symbol.Table
	b       *symbol.Builtins
	sink    *diag.Sink
	graph   *inheritance.Graph
	classes map[*symbol.Symbol]*ast.Class
	methods *MethodMap

	// globalSymbols is the single scoped symbol table shared by every
	// class processed in Pass D; it lives for the duration of one
	// checkTypes call (spec.md §4.2, §5).
	globalSymbols *SymbolTable
	// currentClass is the class whose features are being type-checked,
	// used to resolve `self`'s type and dispatch-on-self rules in
	// expr.go.
	currentClass *ast.Class

	debugOut io.Writer // non-nil enables -s style tracing to stderr
}

// New creates an Analyzer. symbols/builtins come from a single
// symbol.NewTableWithBuiltins() call shared with the AST reader, since
// Symbol identity is the analyzer's only notion of "same name"
// (spec.md §3).
func New(symbols *symbol.Table, b *symbol.Builtins) *Analyzer {
	return &Analyzer{
		symbols: symbols,
		b:       b,
		sink:    diag.NewSink(),
		graph:   inheritance.NewGraph(),
		classes: make(map[*symbol.Symbol]*ast.Class),
		methods: NewMethodMap(),
	}
}

// SetDebugOutput enables the -s tracing described in spec.md §6; nil
// disables it (the default).
func (a *Analyzer) SetDebugOutput(w io.Writer) {
	a.debugOut = w
}

// Analyze runs the full pipeline: inheritance validation, then (only
// if validation reported no errors) the four type-checker passes.
// Returns the diagnostic sink; callers check sink.HasErrors().
func (a *Analyzer) Analyze(prog *ast.Program) *diag.Sink {
	allClasses := append(installBasicClasses(a.b), prog.Classes...)

	ok := a.validateInheritance(allClasses)
	if a.debugOut != nil {
		a.traceInheritance(allClasses)
	}
	if !ok {
		return a.sink
	}

	a.checkTypes(allClasses)
	return a.sink
}

func (a *Analyzer) traceInheritance(classes []*ast.Class) {
	noClassNode, ok := a.graph.Lookup(a.b.NoClass)
	if ok {
		fmt.Fprintf(a.debugOut, "inheritance graph: %d node(s) under _no_class\n", noClassNode.NumDescendants+1)
	}
	fmt.Fprintf(a.debugOut, "inheritance graph: %d node(s) total\n", len(a.graph.Nodes()))
	for _, c := range classes {
		fmt.Fprintf(a.debugOut, "  class %s inherits %s\n", c.Name, c.Parent)
	}
}
