package symbol

import "testing"

func TestInternReturnsSameHandle(t *testing.T) {
	table := NewTable()

	a := table.Intern("Object")
	b := table.Intern("Object")

	if a != b {
		t.Fatalf("Intern returned different handles for the same name")
	}
}

func TestInternDistinctNames(t *testing.T) {
	table := NewTable()

	a := table.Intern("Int")
	b := table.Intern("Bool")

	if a == b {
		t.Fatalf("distinct names interned to the same handle")
	}
}

func TestLookupWithoutInterning(t *testing.T) {
	table := NewTable()

	if _, ok := table.Lookup("Main"); ok {
		t.Fatalf("Lookup found a name that was never interned")
	}

	sym := table.Intern("Main")
	found, ok := table.Lookup("Main")
	if !ok || found != sym {
		t.Fatalf("Lookup did not return the interned handle")
	}
}

func TestBuiltinsPreInterned(t *testing.T) {
	table, b := NewTableWithBuiltins()

	if sym, ok := table.Lookup("SELF_TYPE"); !ok || sym != b.SelfType {
		t.Fatalf("SELF_TYPE was not pre-interned consistently with Builtins.SelfType")
	}
	if b.Object.String() != "Object" {
		t.Fatalf("unexpected String() for Object symbol: %q", b.Object.String())
	}
}
