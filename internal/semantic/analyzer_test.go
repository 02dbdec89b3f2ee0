package semantic

import (
	"testing"

	"github.com/freaknbigpanda/coolc/internal/ast"
	"github.com/freaknbigpanda/coolc/pkg/symbol"
)

func TestAnalyzeMinimalSuccess(t *testing.T) {
	table, b := symbol.NewTableWithBuiltins()

	body := selfDispatch(b, b.OutString, strConst("Hi"))
	mainClass := class(table, "Main", "IO", 1, method(b.MainMeth, b.Object, body))

	sink := New(table, b).Analyze(&ast.Program{Classes: []*ast.Class{mainClass}})

	if sink.HasErrors() {
		t.Fatalf("expected no diagnostics, got: %v", sink.Errors())
	}
	if body.Type() != b.SelfType {
		t.Fatalf("expected out_string call to be annotated SELF_TYPE, got %v", body.Type())
	}
}

func TestAnalyzeMissingMain(t *testing.T) {
	table, b := symbol.NewTableWithBuiltins()
	a := class(table, "A", "Object", 1)

	sink := New(table, b).Analyze(&ast.Program{Classes: []*ast.Class{a}})

	if !sink.HasErrors() {
		t.Fatalf("expected a diagnostic for a program with no Main class")
	}
	found := false
	for _, e := range sink.Errors() {
		if e.String() == "Class Main is not defined." {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected exact diagnostic %q, got: %v", "Class Main is not defined.", sink.Errors())
	}
}

func TestAnalyzeInheritanceCycle(t *testing.T) {
	table, b := symbol.NewTableWithBuiltins()
	classA := class(table, "A", "B", 1)
	classB := class(table, "B", "A", 2)
	mainClass := class(table, "Main", "Object", 3, method(b.MainMeth, b.Int, intConst("0")))

	sink := New(table, b).Analyze(&ast.Program{Classes: []*ast.Class{classA, classB, mainClass}})

	if !sink.HasErrors() {
		t.Fatalf("expected a cycle diagnostic")
	}
	foundCycle := false
	for _, e := range sink.Errors() {
		if e.HasLine && e.Message == "Cycle detected with class B" {
			foundCycle = true
		}
	}
	if !foundCycle {
		t.Fatalf("expected a cycle diagnostic mentioning class B, got: %v", sink.Errors())
	}
	// Type-check phase is skipped once a cycle halts validation; the
	// class's only method body must never have been visited.
	mainMethod := mainClass.Features[0].(*ast.Method)
	if mainMethod.Body.Type() != nil {
		t.Fatalf("expected type-check phase to be skipped after a cycle, but main's body was annotated")
	}
}

func TestAnalyzeIllegalInheritanceFromBasicType(t *testing.T) {
	table, b := symbol.NewTableWithBuiltins()
	classX := class(table, "X", "Int", 1)
	mainClass := class(table, "Main", "Object", 2, method(b.MainMeth, b.Int, intConst("0")))

	sink := New(table, b).Analyze(&ast.Program{Classes: []*ast.Class{classX, mainClass}})

	if !sink.HasErrors() {
		t.Fatalf("expected a diagnostic for inheriting from Int")
	}
	found := false
	for _, e := range sink.Errors() {
		if e.Message == "Class X inherits from either Int, Bool, or String. This is illegal." {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a diagnostic mentioning Int/Bool/String, got: %v", sink.Errors())
	}
}

func TestAnalyzeOverrideMismatch(t *testing.T) {
	table, b := symbol.NewTableWithBuiltins()
	intT := table.Intern("Int")
	strT := table.Intern("String")
	x := table.Intern("x")

	classA := class(table, "A", "Object", 1,
		method(table.Intern("f"), intT, &ast.Object{Name: x}, &ast.Formal{Name: x, DeclaredType: intT}))
	classB := class(table, "B", "A", 2,
		method(table.Intern("f"), intT, intConst("0"), &ast.Formal{Name: x, DeclaredType: strT}))
	mainClass := class(table, "Main", "A", 3, method(b.MainMeth, b.Int, intConst("0")))

	sink := New(table, b).Analyze(&ast.Program{Classes: []*ast.Class{classA, classB, mainClass}})

	if !sink.HasErrors() {
		t.Fatalf("expected a diagnostic for the mismatched override of f in B")
	}
	found := false
	for _, e := range sink.Errors() {
		if e.Message == "Method redefined in B does not match parent class method signature" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a diagnostic naming B's override of f, got: %v", sink.Errors())
	}
}

func TestAnalyzeLeastUpperBoundInConditional(t *testing.T) {
	table, b := symbol.NewTableWithBuiltins()
	classA := class(table, "A", "Object", 1)
	classB := class(table, "B", "A", 2)
	classC := class(table, "C", "A", 3)

	ifExpr := &ast.Conditional{
		Pred: &ast.BoolConst{Value: true},
		Then: &ast.New{TypeName: classB.Name},
		Else: &ast.New{TypeName: classC.Name},
	}
	mainClass := class(table, "Main", "Object", 4, method(b.MainMeth, classA.Name, ifExpr))

	sink := New(table, b).Analyze(&ast.Program{Classes: []*ast.Class{classA, classB, classC, mainClass}})

	if sink.HasErrors() {
		t.Fatalf("expected no diagnostics, got: %v", sink.Errors())
	}
	if ifExpr.Type() != classA.Name {
		t.Fatalf("expected the conditional's LUB to be annotated A, got %v", ifExpr.Type())
	}
}
