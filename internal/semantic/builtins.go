package semantic

import (
	"github.com/freaknbigpanda/coolc/internal/ast"
	"github.com/freaknbigpanda/coolc/pkg/symbol"
)

const basicClassFilename = "<basic class>"

// installBasicClasses synthesizes Object, IO, Int, Bool and String
// exactly as original_source/semant.cc's install_basic_classes does:
// same parents, same method/attribute layout, all bodies NoExpr, all
// filenames "<basic class>" (spec.md §6).
func installBasicClasses(b *symbol.Builtins) []*ast.Class {
	noExpr := func() ast.Expr { return &ast.NoExpr{} }

	formal := func(name, typ *symbol.Symbol) *ast.Formal {
		return &ast.Formal{Name: name, DeclaredType: typ}
	}

	method := func(name *symbol.Symbol, formals []*ast.Formal, ret *symbol.Symbol) *ast.Method {
		return &ast.Method{Name: name, Formals: formals, ReturnType: ret, Body: noExpr()}
	}

	attr := func(name, typ *symbol.Symbol) *ast.Attribute {
		return &ast.Attribute{Name: name, DeclaredType: typ, Init: noExpr()}
	}

	objectClass := &ast.Class{
		Name:     b.Object,
		Parent:   b.NoClass,
		Filename: basicClassFilename,
		Features: []ast.Feature{
			method(b.Abort, nil, b.Object),
			method(b.TypeName, nil, b.String),
			method(b.Copy, nil, b.SelfType),
		},
	}

	ioClass := &ast.Class{
		Name:     b.IO,
		Parent:   b.Object,
		Filename: basicClassFilename,
		Features: []ast.Feature{
			method(b.OutString, []*ast.Formal{formal(b.Arg, b.String)}, b.SelfType),
			method(b.OutInt, []*ast.Formal{formal(b.Arg, b.Int)}, b.SelfType),
			method(b.InString, nil, b.String),
			method(b.InInt, nil, b.Int),
		},
	}

	intClass := &ast.Class{
		Name:     b.Int,
		Parent:   b.Object,
		Filename: basicClassFilename,
		Features: []ast.Feature{
			attr(b.Val, b.PrimSlot),
		},
	}

	boolClass := &ast.Class{
		Name:     b.Bool,
		Parent:   b.Object,
		Filename: basicClassFilename,
		Features: []ast.Feature{
			attr(b.Val, b.PrimSlot),
		},
	}

	stringClass := &ast.Class{
		Name:     b.String,
		Parent:   b.Object,
		Filename: basicClassFilename,
		Features: []ast.Feature{
			attr(b.Val, b.Int),
			attr(b.StrField, b.PrimSlot),
			method(b.Length, nil, b.Int),
			method(b.Concat, []*ast.Formal{formal(b.Arg, b.String)}, b.String),
			method(b.Substr, []*ast.Formal{formal(b.Arg, b.Int), formal(b.Arg2, b.Int)}, b.String),
		},
	}

	return []*ast.Class{objectClass, ioClass, intClass, boolClass, stringClass}
}
