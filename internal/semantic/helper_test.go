package semantic

import (
	"github.com/freaknbigpanda/coolc/internal/ast"
	"github.com/freaknbigpanda/coolc/pkg/symbol"
)

// The helpers below build small ast.Program trees by hand, the way a
// test for a single analysis pass would, rather than routing every
// scenario through internal/reader's serialized text format.

func selfDispatch(b *symbol.Builtins, method *symbol.Symbol, args ...ast.Expr) *ast.Dispatch {
	return &ast.Dispatch{
		Receiver: &ast.Object{Name: b.Self},
		Method:   method,
		Args:     args,
	}
}

func strConst(v string) *ast.StringConst {
	return &ast.StringConst{Value: v}
}

func intConst(v string) *ast.IntConst {
	return &ast.IntConst{Value: v}
}

func method(name *symbol.Symbol, ret *symbol.Symbol, body ast.Expr, formals ...*ast.Formal) *ast.Method {
	return &ast.Method{Name: name, ReturnType: ret, Body: body, Formals: formals}
}

func class(table *symbol.Table, name, parent string, line int, features ...ast.Feature) *ast.Class {
	return &ast.Class{
		Name:     table.Intern(name),
		Parent:   table.Intern(parent),
		Filename: "test.cl",
		Line:     line,
		Features: features,
	}
}
