// Package ast defines the Cool abstract syntax tree (spec.md §3). The
// tree is produced by internal/reader and consumed by internal/semantic
// and internal/printer; this package owns no analysis logic of its own.
//
// Grounded in the teacher's per-concern split across ast/classes.go,
// ast/functions.go and ast/control_flow.go (CWBudde-go-dws), adapted to
// Cool's much smaller, closed set of node kinds.
package ast

import "github.com/freaknbigpanda/coolc/pkg/symbol"

// Program is the root of a parsed Cool source file: an ordered list of
// class declarations.
type Program struct {
	Classes []*Class
}

// Class is a class declaration (spec.md §3). Built-in classes are
// synthesized with Filename "<basic class>" by internal/semantic before
// validation begins.
type Class struct {
	Name     *symbol.Symbol
	Parent   *symbol.Symbol
	Filename string
	Line     int
	Features []Feature
}

// Feature is a class member: an Attribute or a Method.
type Feature interface {
	featureNode()
	Pos() int
	FeatureName() *symbol.Symbol
}

// Attribute is a field declaration with an optional initializer
// expression (NoExpr when absent).
type Attribute struct {
	Line         int
	Name         *symbol.Symbol
	DeclaredType *symbol.Symbol
	Init         Expr
}

func (a *Attribute) featureNode()             {}
func (a *Attribute) Pos() int                 { return a.Line }
func (a *Attribute) FeatureName() *symbol.Symbol { return a.Name }

// Method is a method declaration with an ordered list of formals and a
// body expression (NoExpr for built-in classes).
type Method struct {
	Line       int
	Name       *symbol.Symbol
	Formals    []*Formal
	ReturnType *symbol.Symbol
	Body       Expr
}

func (m *Method) featureNode()               {}
func (m *Method) Pos() int                   { return m.Line }
func (m *Method) FeatureName() *symbol.Symbol { return m.Name }

// Formal is a single method parameter declaration.
type Formal struct {
	Line         int
	Name         *symbol.Symbol
	DeclaredType *symbol.Symbol
}
