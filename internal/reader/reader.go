package reader

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/freaknbigpanda/coolc/internal/ast"
	"github.com/freaknbigpanda/coolc/pkg/symbol"
)

// reader is a recursive-descent consumer of the scanner's flat token
// stream. One token of lookahead is kept so list bodies ("(" elem*
// ")") can peek for the closing paren.
type reader struct {
	sc        *scanner
	filename  string
	symbols   *symbol.Table
	lookahead *string
}

// Read parses the s-expression-like AST format of spec.md §6 from r
// into a *ast.Program. filename labels any I/O error this function
// returns; it is not consulted for per-class filenames, which the
// serialized format carries itself. Malformed input is a fatal error,
// never a diagnostic (spec.md §7, SPEC_FULL.md §4.6).
func Read(r io.Reader, filename string, symbols *symbol.Table) (*ast.Program, error) {
	rd := &reader{sc: newScanner(r), filename: filename, symbols: symbols}

	prog, err := rd.readProgram()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if err := rd.sc.err(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return prog, nil
}

func (rd *reader) raw() (string, error) {
	tok, ok := rd.sc.next()
	if !ok {
		if err := rd.sc.err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return tok, nil
}

func (rd *reader) peek() (string, error) {
	if rd.lookahead == nil {
		tok, err := rd.raw()
		if err != nil {
			return "", err
		}
		rd.lookahead = &tok
	}
	return *rd.lookahead, nil
}

func (rd *reader) next() (string, error) {
	if rd.lookahead != nil {
		tok := *rd.lookahead
		rd.lookahead = nil
		return tok, nil
	}
	return rd.raw()
}

func (rd *reader) expectToken(want string) error {
	tok, err := rd.next()
	if err != nil {
		return err
	}
	if tok != want {
		return fmt.Errorf("expected %q, got %q", want, tok)
	}
	return nil
}

func (rd *reader) readInt() (int, error) {
	tok, err := rd.next()
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(tok)
	if convErr != nil {
		return 0, fmt.Errorf("expected line number, got %q", tok)
	}
	return n, nil
}

func (rd *reader) readSymbol() (*symbol.Symbol, error) {
	tok, err := rd.next()
	if err != nil {
		return nil, err
	}
	return rd.symbols.Intern(tok), nil
}

func (rd *reader) readString() (string, error) {
	tok, err := rd.next()
	if err != nil {
		return "", err
	}
	return unquote(tok)
}

func unquote(tok string) (string, error) {
	if len(tok) < 2 || tok[0] != '"' || tok[len(tok)-1] != '"' {
		return "", fmt.Errorf("expected quoted string, got %q", tok)
	}
	inner := tok[1 : len(tok)-1]
	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c == '\\' && i+1 < len(inner) {
			i++
			switch inner[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				b.WriteByte(inner[i])
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

// readList consumes a parenthesized, zero-or-more sequence: "(" elem*
// ")". elem is invoked once per list member.
func (rd *reader) readList(elem func() error) error {
	if err := rd.expectToken("("); err != nil {
		return err
	}
	for {
		tok, err := rd.peek()
		if err != nil {
			return err
		}
		if tok == ")" {
			_, _ = rd.next()
			return nil
		}
		if err := elem(); err != nil {
			return err
		}
	}
}

func (rd *reader) readProgram() (*ast.Program, error) {
	if _, err := rd.readInt(); err != nil {
		return nil, err
	}
	if err := rd.expectToken("_program"); err != nil {
		return nil, err
	}

	var classes []*ast.Class
	err := rd.readList(func() error {
		c, err := rd.readClass()
		if err != nil {
			return err
		}
		classes = append(classes, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ast.Program{Classes: classes}, nil
}

func (rd *reader) readClass() (*ast.Class, error) {
	line, err := rd.readInt()
	if err != nil {
		return nil, err
	}
	if err := rd.expectToken("_class"); err != nil {
		return nil, err
	}
	name, err := rd.readSymbol()
	if err != nil {
		return nil, err
	}
	parent, err := rd.readSymbol()
	if err != nil {
		return nil, err
	}
	filename, err := rd.readString()
	if err != nil {
		return nil, err
	}

	var features []ast.Feature
	err = rd.readList(func() error {
		f, err := rd.readFeature()
		if err != nil {
			return err
		}
		features = append(features, f)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ast.Class{Name: name, Parent: parent, Filename: filename, Line: line, Features: features}, nil
}

func (rd *reader) readFeature() (ast.Feature, error) {
	line, err := rd.readInt()
	if err != nil {
		return nil, err
	}
	tag, err := rd.next()
	if err != nil {
		return nil, err
	}

	switch tag {
	case "_attr":
		return rd.readAttribute(line)
	case "_method":
		return rd.readMethod(line)
	default:
		return nil, fmt.Errorf("unexpected feature tag %q", tag)
	}
}

func (rd *reader) readAttribute(line int) (*ast.Attribute, error) {
	name, err := rd.readSymbol()
	if err != nil {
		return nil, err
	}
	declType, err := rd.readSymbol()
	if err != nil {
		return nil, err
	}
	init, err := rd.readExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Attribute{Line: line, Name: name, DeclaredType: declType, Init: init}, nil
}

func (rd *reader) readMethod(line int) (*ast.Method, error) {
	name, err := rd.readSymbol()
	if err != nil {
		return nil, err
	}

	var formals []*ast.Formal
	err = rd.readList(func() error {
		f, err := rd.readFormal()
		if err != nil {
			return err
		}
		formals = append(formals, f)
		return nil
	})
	if err != nil {
		return nil, err
	}

	retType, err := rd.readSymbol()
	if err != nil {
		return nil, err
	}
	body, err := rd.readExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Method{Line: line, Name: name, Formals: formals, ReturnType: retType, Body: body}, nil
}

func (rd *reader) readFormal() (*ast.Formal, error) {
	line, err := rd.readInt()
	if err != nil {
		return nil, err
	}
	if err := rd.expectToken("_formal"); err != nil {
		return nil, err
	}
	name, err := rd.readSymbol()
	if err != nil {
		return nil, err
	}
	declType, err := rd.readSymbol()
	if err != nil {
		return nil, err
	}
	return &ast.Formal{Line: line, Name: name, DeclaredType: declType}, nil
}

func (rd *reader) readCaseBranch() (*ast.CaseBranch, error) {
	line, err := rd.readInt()
	if err != nil {
		return nil, err
	}
	if err := rd.expectToken("_branch"); err != nil {
		return nil, err
	}
	name, err := rd.readSymbol()
	if err != nil {
		return nil, err
	}
	declType, err := rd.readSymbol()
	if err != nil {
		return nil, err
	}
	body, err := rd.readExpr()
	if err != nil {
		return nil, err
	}
	return &ast.CaseBranch{Line: line, Name: name, DeclType: declType, Body: body}, nil
}

func binOpFromTag(tag string) (ast.BinOpKind, bool) {
	switch tag {
	case "_plus":
		return ast.OpPlus, true
	case "_sub":
		return ast.OpSub, true
	case "_mul":
		return ast.OpMul, true
	case "_divide":
		return ast.OpDivide, true
	case "_lt":
		return ast.OpLt, true
	case "_eq":
		return ast.OpEq, true
	case "_leq":
		return ast.OpLeq, true
	default:
		return 0, false
	}
}

// readExpr reads one expression node: <line> <tag> <fields...> and
// the trailing ": <type>" annotation, which is discarded — the
// analyzer recomputes every type from scratch (SPEC_FULL.md §4.6).
func (rd *reader) readExpr() (ast.Expr, error) {
	line, err := rd.readInt()
	if err != nil {
		return nil, err
	}
	tag, err := rd.next()
	if err != nil {
		return nil, err
	}

	var e ast.Expr
	switch {
	case tag == "_no_expr":
		e = &ast.NoExpr{}
	case tag == "_int":
		val, err := rd.next()
		if err != nil {
			return nil, err
		}
		e = &ast.IntConst{Value: val}
	case tag == "_bool":
		val, err := rd.next()
		if err != nil {
			return nil, err
		}
		e = &ast.BoolConst{Value: val == "true"}
	case tag == "_string":
		s, err := rd.readString()
		if err != nil {
			return nil, err
		}
		e = &ast.StringConst{Value: s}
	case tag == "_object":
		name, err := rd.readSymbol()
		if err != nil {
			return nil, err
		}
		e = &ast.Object{Name: name}
	case tag == "_new":
		t, err := rd.readSymbol()
		if err != nil {
			return nil, err
		}
		e = &ast.New{TypeName: t}
	case tag == "_isvoid":
		sub, err := rd.readExpr()
		if err != nil {
			return nil, err
		}
		e = &ast.IsVoid{Expr: sub}
	case tag == "_comp":
		sub, err := rd.readExpr()
		if err != nil {
			return nil, err
		}
		e = &ast.Comp{Expr: sub}
	case tag == "_neg":
		sub, err := rd.readExpr()
		if err != nil {
			return nil, err
		}
		e = &ast.Neg{Expr: sub}
	case isBinOpTag(tag):
		op, _ := binOpFromTag(tag)
		left, err := rd.readExpr()
		if err != nil {
			return nil, err
		}
		right, err := rd.readExpr()
		if err != nil {
			return nil, err
		}
		e = &ast.BinOp{Op: op, Left: left, Right: right}
	case tag == "_assign":
		name, err := rd.readSymbol()
		if err != nil {
			return nil, err
		}
		val, err := rd.readExpr()
		if err != nil {
			return nil, err
		}
		e = &ast.Assign{Name: name, Value: val}
	case tag == "_cond":
		pred, err := rd.readExpr()
		if err != nil {
			return nil, err
		}
		then, err := rd.readExpr()
		if err != nil {
			return nil, err
		}
		els, err := rd.readExpr()
		if err != nil {
			return nil, err
		}
		e = &ast.Conditional{Pred: pred, Then: then, Else: els}
	case tag == "_loop":
		pred, err := rd.readExpr()
		if err != nil {
			return nil, err
		}
		body, err := rd.readExpr()
		if err != nil {
			return nil, err
		}
		e = &ast.Loop{Pred: pred, Body: body}
	case tag == "_block":
		var exprs []ast.Expr
		err := rd.readList(func() error {
			sub, err := rd.readExpr()
			if err != nil {
				return err
			}
			exprs = append(exprs, sub)
			return nil
		})
		if err != nil {
			return nil, err
		}
		e = &ast.Block{Exprs: exprs}
	case tag == "_let":
		name, err := rd.readSymbol()
		if err != nil {
			return nil, err
		}
		declType, err := rd.readSymbol()
		if err != nil {
			return nil, err
		}
		init, err := rd.readExpr()
		if err != nil {
			return nil, err
		}
		body, err := rd.readExpr()
		if err != nil {
			return nil, err
		}
		e = &ast.Let{Name: name, DeclType: declType, Init: init, Body: body}
	case tag == "_typcase":
		subject, err := rd.readExpr()
		if err != nil {
			return nil, err
		}
		var branches []*ast.CaseBranch
		err = rd.readList(func() error {
			b, err := rd.readCaseBranch()
			if err != nil {
				return err
			}
			branches = append(branches, b)
			return nil
		})
		if err != nil {
			return nil, err
		}
		e = &ast.TypeCase{Expr: subject, Branches: branches}
	case tag == "_dispatch":
		recv, err := rd.readExpr()
		if err != nil {
			return nil, err
		}
		method, err := rd.readSymbol()
		if err != nil {
			return nil, err
		}
		var args []ast.Expr
		err = rd.readList(func() error {
			arg, err := rd.readExpr()
			if err != nil {
				return err
			}
			args = append(args, arg)
			return nil
		})
		if err != nil {
			return nil, err
		}
		e = &ast.Dispatch{Receiver: recv, Method: method, Args: args}
	case tag == "_static_dispatch":
		recv, err := rd.readExpr()
		if err != nil {
			return nil, err
		}
		staticType, err := rd.readSymbol()
		if err != nil {
			return nil, err
		}
		method, err := rd.readSymbol()
		if err != nil {
			return nil, err
		}
		var args []ast.Expr
		err = rd.readList(func() error {
			arg, err := rd.readExpr()
			if err != nil {
				return err
			}
			args = append(args, arg)
			return nil
		})
		if err != nil {
			return nil, err
		}
		e = &ast.StaticDispatch{Receiver: recv, StaticType: staticType, Method: method, Args: args}
	default:
		return nil, fmt.Errorf("unexpected expression tag %q", tag)
	}

	e.SetLine(line)

	if err := rd.skipTypeAnnotation(); err != nil {
		return nil, err
	}
	return e, nil
}

func isBinOpTag(tag string) bool {
	_, ok := binOpFromTag(tag)
	return ok
}

// skipTypeAnnotation discards the input AST's "`:` <type>` slot; the
// analyzer recomputes every expression's type from scratch.
func (rd *reader) skipTypeAnnotation() error {
	if err := rd.expectToken(":"); err != nil {
		return err
	}
	if _, err := rd.next(); err != nil {
		return err
	}
	return nil
}
