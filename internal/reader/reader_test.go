package reader

import (
	"strings"
	"testing"

	"github.com/freaknbigpanda/coolc/internal/ast"
	"github.com/freaknbigpanda/coolc/pkg/symbol"
)

const simpleProgram = `
0
_program
(
  1
  _class
  Main
  Object
  "test.cl"
  (
    2
    _method
    main
    ( )
    Object
    3
    _int
    42
    : _no_type
  )
)
`

func TestReadSimpleProgram(t *testing.T) {
	symbols := symbol.NewTable()

	prog, err := Read(strings.NewReader(simpleProgram), "test.cl", symbols)
	if err != nil {
		t.Fatalf("Read returned an error: %v", err)
	}
	if len(prog.Classes) != 1 {
		t.Fatalf("expected 1 class, got %d", len(prog.Classes))
	}

	c := prog.Classes[0]
	if c.Name.String() != "Main" || c.Parent.String() != "Object" || c.Filename != "test.cl" || c.Line != 1 {
		t.Fatalf("unexpected class header: %+v", c)
	}
	if len(c.Features) != 1 {
		t.Fatalf("expected 1 feature, got %d", len(c.Features))
	}

	m, ok := c.Features[0].(*ast.Method)
	if !ok {
		t.Fatalf("expected a *ast.Method feature, got %T", c.Features[0])
	}
	if m.Name.String() != "main" || len(m.Formals) != 0 || m.ReturnType.String() != "Object" {
		t.Fatalf("unexpected method header: %+v", m)
	}

	body, ok := m.Body.(*ast.IntConst)
	if !ok {
		t.Fatalf("expected an *ast.IntConst body, got %T", m.Body)
	}
	if body.Value != "42" || body.Pos() != 3 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestReadInternsRepeatedNames(t *testing.T) {
	symbols := symbol.NewTable()

	prog, err := Read(strings.NewReader(simpleProgram), "test.cl", symbols)
	if err != nil {
		t.Fatalf("Read returned an error: %v", err)
	}

	object, ok := symbols.Lookup("Object")
	if !ok {
		t.Fatalf("expected Object to have been interned while reading")
	}
	if prog.Classes[0].Parent != object {
		t.Fatalf("expected the class's parent symbol to be the same handle as a fresh lookup of Object")
	}
}

func TestReadMalformedInputIsAnError(t *testing.T) {
	symbols := symbol.NewTable()

	if _, err := Read(strings.NewReader("0\n_program\n(\n1\n_class\n"), "broken.cl", symbols); err == nil {
		t.Fatalf("expected an error for truncated input")
	}
}

func TestReadEscapedStringLiteral(t *testing.T) {
	symbols := symbol.NewTable()
	input := `
0
_program
(
  1
  _class
  Main
  Object
  "a\"b.cl"
  ( )
)
`
	prog, err := Read(strings.NewReader(input), "a.cl", symbols)
	if err != nil {
		t.Fatalf("Read returned an error: %v", err)
	}
	if prog.Classes[0].Filename != `a"b.cl` {
		t.Fatalf("expected unescaped filename %q, got %q", `a"b.cl`, prog.Classes[0].Filename)
	}
}
