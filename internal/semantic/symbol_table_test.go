package semantic

import (
	"testing"

	"github.com/freaknbigpanda/coolc/pkg/symbol"
)

func TestSymbolTableShadowing(t *testing.T) {
	table := symbol.NewTable()
	x := table.Intern("x")
	intT := table.Intern("Int")
	strT := table.Intern("String")

	st := NewSymbolTable()
	st.Add(x, intT)

	st.EnterScope()
	defer st.ExitScope()
	st.Add(x, strT)

	got, ok := st.Lookup(x)
	if !ok || got != strT {
		t.Fatalf("expected innermost binding of x to shadow outer one")
	}

	if _, ok := st.Probe(x); !ok {
		t.Fatalf("Probe should find x bound directly in the current scope")
	}
}

func TestSymbolTableExitScopeRestoresOuterBinding(t *testing.T) {
	table := symbol.NewTable()
	x := table.Intern("x")
	intT := table.Intern("Int")
	strT := table.Intern("String")

	st := NewSymbolTable()
	st.Add(x, intT)

	st.EnterScope()
	st.Add(x, strT)
	st.ExitScope()

	got, ok := st.Lookup(x)
	if !ok || got != intT {
		t.Fatalf("expected outer binding of x to be restored after ExitScope")
	}
}

func TestSymbolTableProbeDoesNotWalkOutward(t *testing.T) {
	table := symbol.NewTable()
	x := table.Intern("x")
	intT := table.Intern("Int")

	st := NewSymbolTable()
	st.Add(x, intT)

	st.EnterScope()
	defer st.ExitScope()

	if _, ok := st.Probe(x); ok {
		t.Fatalf("Probe must not see bindings from an outer scope")
	}
	if _, ok := st.Lookup(x); !ok {
		t.Fatalf("Lookup must still walk outward and find x")
	}
}

func TestSymbolTableDepth(t *testing.T) {
	st := NewSymbolTable()
	if st.Depth() != 1 {
		t.Fatalf("a fresh symbol table should start with depth 1, got %d", st.Depth())
	}
	st.EnterScope()
	st.EnterScope()
	if st.Depth() != 3 {
		t.Fatalf("expected depth 3 after two EnterScope calls, got %d", st.Depth())
	}
	st.ExitScope()
	if st.Depth() != 2 {
		t.Fatalf("expected depth 2 after one ExitScope call, got %d", st.Depth())
	}
}
