// Package printer serializes a type-annotated *ast.Program back into
// the format internal/reader consumes, with every expression's type
// slot filled in (spec.md §6). Grounded in the teacher's
// String()-method-per-node convention (ast/classes.go in
// CWBudde-go-dws), adapted to a fixed-format line-oriented serializer
// instead of free-form source reconstruction.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/freaknbigpanda/coolc/internal/ast"
	"github.com/freaknbigpanda/coolc/pkg/symbol"
)

type printer struct {
	w     io.Writer
	depth int
}

// Print writes prog to w in the serialized AST format, annotating
// every expression node with its inferred type.
func Print(w io.Writer, prog *ast.Program) {
	p := &printer{w: w}
	p.printProgram(prog)
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.depth), fmt.Sprintf(format, args...))
}

func (p *printer) printList(n int, elem func(i int)) {
	p.line("(")
	p.depth++
	for i := 0; i < n; i++ {
		elem(i)
	}
	p.depth--
	p.line(")")
}

func (p *printer) printProgram(prog *ast.Program) {
	p.line("0")
	p.line("_program")
	p.printList(len(prog.Classes), func(i int) { p.printClass(prog.Classes[i]) })
}

func (p *printer) printClass(c *ast.Class) {
	p.line("%d", c.Line)
	p.line("_class")
	p.line("%s", c.Name)
	p.line("%s", c.Parent)
	p.line("%s", quote(c.Filename))
	p.printList(len(c.Features), func(i int) { p.printFeature(c.Features[i]) })
}

func (p *printer) printFeature(f ast.Feature) {
	switch feat := f.(type) {
	case *ast.Attribute:
		p.line("%d", feat.Line)
		p.line("_attr")
		p.line("%s", feat.Name)
		p.line("%s", feat.DeclaredType)
		p.printExpr(feat.Init)
	case *ast.Method:
		p.line("%d", feat.Line)
		p.line("_method")
		p.line("%s", feat.Name)
		p.printList(len(feat.Formals), func(i int) { p.printFormal(feat.Formals[i]) })
		p.line("%s", feat.ReturnType)
		p.printExpr(feat.Body)
	default:
		panic(fmt.Sprintf("printer: unhandled feature variant %T", f))
	}
}

func (p *printer) printFormal(f *ast.Formal) {
	p.line("%d", f.Line)
	p.line("_formal")
	p.line("%s", f.Name)
	p.line("%s", f.DeclaredType)
}

func (p *printer) printCaseBranch(b *ast.CaseBranch) {
	p.line("%d", b.Line)
	p.line("_branch")
	p.line("%s", b.Name)
	p.line("%s", b.DeclType)
	p.printExpr(b.Body)
}

func (p *printer) printExpr(e ast.Expr) {
	switch expr := e.(type) {
	case *ast.NoExpr:
		p.line("%d", expr.Pos())
		p.line("_no_expr")
		p.printType(nil)
		return
	case *ast.IntConst:
		p.line("%d", expr.Pos())
		p.line("_int")
		p.line("%s", expr.Value)
	case *ast.BoolConst:
		p.line("%d", expr.Pos())
		p.line("_bool")
		p.line("%t", expr.Value)
	case *ast.StringConst:
		p.line("%d", expr.Pos())
		p.line("_string")
		p.line("%s", quote(expr.Value))
	case *ast.Object:
		p.line("%d", expr.Pos())
		p.line("_object")
		p.line("%s", expr.Name)
	case *ast.New:
		p.line("%d", expr.Pos())
		p.line("_new")
		p.line("%s", expr.TypeName)
	case *ast.IsVoid:
		p.line("%d", expr.Pos())
		p.line("_isvoid")
		p.printExpr(expr.Expr)
	case *ast.Comp:
		p.line("%d", expr.Pos())
		p.line("_comp")
		p.printExpr(expr.Expr)
	case *ast.Neg:
		p.line("%d", expr.Pos())
		p.line("_neg")
		p.printExpr(expr.Expr)
	case *ast.BinOp:
		p.line("%d", expr.Pos())
		p.line("%s", binOpTag(expr.Op))
		p.printExpr(expr.Left)
		p.printExpr(expr.Right)
	case *ast.Assign:
		p.line("%d", expr.Pos())
		p.line("_assign")
		p.line("%s", expr.Name)
		p.printExpr(expr.Value)
	case *ast.Conditional:
		p.line("%d", expr.Pos())
		p.line("_cond")
		p.printExpr(expr.Pred)
		p.printExpr(expr.Then)
		p.printExpr(expr.Else)
	case *ast.Loop:
		p.line("%d", expr.Pos())
		p.line("_loop")
		p.printExpr(expr.Pred)
		p.printExpr(expr.Body)
	case *ast.Block:
		p.line("%d", expr.Pos())
		p.line("_block")
		p.printList(len(expr.Exprs), func(i int) { p.printExpr(expr.Exprs[i]) })
	case *ast.Let:
		p.line("%d", expr.Pos())
		p.line("_let")
		p.line("%s", expr.Name)
		p.line("%s", expr.DeclType)
		p.printExpr(expr.Init)
		p.printExpr(expr.Body)
	case *ast.TypeCase:
		p.line("%d", expr.Pos())
		p.line("_typcase")
		p.printExpr(expr.Expr)
		p.printList(len(expr.Branches), func(i int) { p.printCaseBranch(expr.Branches[i]) })
	case *ast.Dispatch:
		p.line("%d", expr.Pos())
		p.line("_dispatch")
		p.printExpr(expr.Receiver)
		p.line("%s", expr.Method)
		p.printList(len(expr.Args), func(i int) { p.printExpr(expr.Args[i]) })
	case *ast.StaticDispatch:
		p.line("%d", expr.Pos())
		p.line("_static_dispatch")
		p.printExpr(expr.Receiver)
		p.line("%s", expr.StaticType)
		p.line("%s", expr.Method)
		p.printList(len(expr.Args), func(i int) { p.printExpr(expr.Args[i]) })
	default:
		panic(fmt.Sprintf("printer: unhandled expression variant %T", e))
	}

	p.printType(e.Type())
}

func (p *printer) printType(t *symbol.Symbol) {
	if t == nil {
		p.line(": _no_type")
		return
	}
	p.line(": _%s", t)
}

func binOpTag(op ast.BinOpKind) string {
	switch op {
	case ast.OpPlus:
		return "_plus"
	case ast.OpSub:
		return "_sub"
	case ast.OpMul:
		return "_mul"
	case ast.OpDivide:
		return "_divide"
	case ast.OpLt:
		return "_lt"
	case ast.OpEq:
		return "_eq"
	case ast.OpLeq:
		return "_leq"
	default:
		panic("printer: unhandled BinOp kind")
	}
}

func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
