package semantic

import (
	"github.com/freaknbigpanda/coolc/internal/ast"
	"github.com/freaknbigpanda/coolc/pkg/symbol"
)

// validateInheritance performs the single pass over classes described
// in spec.md §4.1 — five per-class structural checks followed by two
// post-pass integrity checks (orphaned parents, missing Main) — and
// reports whether the inheritance graph can be trusted for type
// checking. Grounded on original_source/semant.cc's
// ClassTable::ValidateInheritance.
func (a *Analyzer) validateInheritance(classes []*ast.Class) bool {
	definedChildren := make(map[*symbol.Symbol]bool)

	for _, c := range classes {
		if c.Name == a.b.SelfType {
			a.sink.Errorf(c.Filename, c.Line, "Redefinition of basic class SELF_TYPE")
			continue
		}

		if c.Parent == a.b.Int || c.Parent == a.b.Bool || c.Parent == a.b.String {
			a.sink.Errorf(c.Filename, c.Line, "Class %s inherits from either Int, Bool, or String. This is illegal.", c.Name)
			continue
		}

		if definedChildren[c.Name] {
			a.sink.Errorf(c.Filename, c.Line, "Class %s multiply defined", c.Name)
			continue
		}

		if c.Parent == c.Name {
			a.sink.Errorf(c.Filename, c.Line, "Class %s inherits from itself", c.Name)
			continue
		}

		definedChildren[c.Name] = true
		a.classes[c.Name] = c

		childNode := a.graph.GetOrCreate(c.Name)
		parentNode := a.graph.GetOrCreate(c.Parent)

		if cycleDetected := parentNode.AddChild(childNode); cycleDetected {
			a.sink.Errorf(c.Filename, c.Line, "Cycle detected with class %s", c.Name)
			// A structural cycle makes the graph untrustworthy for
			// every later check; stop scanning immediately (spec.md
			// §4.5, §7).
			return false
		}
	}

	// Walk classes in their declared order, not a.graph.Nodes() (a Go
	// map), so diagnostic order is deterministic across runs (spec.md
	// §8, graph.go's own "callers that need determinism should sort by
	// name" contract).
	for _, c := range classes {
		parentNode, ok := a.graph.Lookup(c.Parent)
		if !ok || parentNode.Name == a.b.NoClass || parentNode.Parent != nil {
			continue
		}
		a.sink.Errorf(c.Filename, c.Line, "parent class of %s is not defined", c.Name)
	}

	if _, ok := a.classes[a.b.Main]; !ok {
		a.sink.ErrorfNoPos("Class Main is not defined.")
	}

	return !a.sink.HasErrors()
}
