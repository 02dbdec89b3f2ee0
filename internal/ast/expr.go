package ast

import "github.com/freaknbigpanda/coolc/pkg/symbol"

// Expr is the closed tagged union over Cool's 24 expression variants
// (spec.md §3). Every concrete type below embeds exprBase and is the
// only implementer of exprNode(), so a type switch over Expr that
// forgets a case is the closest Go gets to the exhaustiveness the
// design notes (spec.md §9) ask for: any missing branch falls through
// to the checker's explicit "unhandled expression variant" panic
// instead of silently doing nothing.
type Expr interface {
	exprNode()
	Pos() int
	// SetLine is used only by internal/reader while building the tree
	// from serialized input; every other caller treats Line as
	// read-only via Pos().
	SetLine(line int)
	// SetType writes the node's inferred type exactly once, per
	// spec.md §3's "mutable type field ... written exactly once".
	SetType(t *symbol.Symbol)
	// Type returns the inferred type, or nil if not yet resolved.
	Type() *symbol.Symbol
}

type exprBase struct {
	Line int
	typ  *symbol.Symbol
}

func (b *exprBase) Pos() int                { return b.Line }
func (b *exprBase) SetLine(line int)        { b.Line = line }
func (b *exprBase) SetType(t *symbol.Symbol) { b.typ = t }
func (b *exprBase) Type() *symbol.Symbol     { return b.typ }

// Assign is `id <- expr`.
type Assign struct {
	exprBase
	Name  *symbol.Symbol
	Value Expr
}

func (*Assign) exprNode() {}

// StaticDispatch is `expr@Type.id(args)`.
type StaticDispatch struct {
	exprBase
	Receiver   Expr
	StaticType *symbol.Symbol
	Method     *symbol.Symbol
	Args       []Expr
}

func (*StaticDispatch) exprNode() {}

// Dispatch is `expr.id(args)`. The implicit-self form `id(args)` uses
// the same node with a self Object receiver; internal/reader reads the
// receiver exactly as the serialized AST gives it.
type Dispatch struct {
	exprBase
	Receiver Expr
	Method   *symbol.Symbol
	Args     []Expr
}

func (*Dispatch) exprNode() {}

// Conditional is `if pred then thenExpr else elseExpr fi`.
type Conditional struct {
	exprBase
	Pred Expr
	Then Expr
	Else Expr
}

func (*Conditional) exprNode() {}

// Loop is `while pred loop body pool`.
type Loop struct {
	exprBase
	Pred Expr
	Body Expr
}

func (*Loop) exprNode() {}

// CaseBranch is one `id : Type => body` arm of a TypeCase.
type CaseBranch struct {
	Line     int
	Name     *symbol.Symbol
	DeclType *symbol.Symbol
	Body     Expr
}

// TypeCase is `case expr of branches esac`.
type TypeCase struct {
	exprBase
	Expr     Expr
	Branches []*CaseBranch
}

func (*TypeCase) exprNode() {}

// Block is `{ e1; e2; ...; en; }`. Deliberately does not open a new
// scope (spec.md §4.3, §5).
type Block struct {
	exprBase
	Exprs []Expr
}

func (*Block) exprNode() {}

// Let is `let id : Type [<- init] in body`. Init is the NoExpr
// sentinel when no initializer was written.
type Let struct {
	exprBase
	Name     *symbol.Symbol
	DeclType *symbol.Symbol
	Init     Expr
	Body     Expr
}

func (*Let) exprNode() {}

// BinOp covers Plus, Sub, Mul, Divide, Lt, Eq, Leq — all binary
// operators share the same shape; Op distinguishes them for the
// checker's dispatch.
type BinOpKind int

const (
	OpPlus BinOpKind = iota
	OpSub
	OpMul
	OpDivide
	OpLt
	OpEq
	OpLeq
)

type BinOp struct {
	exprBase
	Op    BinOpKind
	Left  Expr
	Right Expr
}

func (*BinOp) exprNode() {}

// Comp is boolean `not expr`.
type Comp struct {
	exprBase
	Expr Expr
}

func (*Comp) exprNode() {}

// Neg is arithmetic `~expr`.
type Neg struct {
	exprBase
	Expr Expr
}

func (*Neg) exprNode() {}

// IntConst is an integer literal.
type IntConst struct {
	exprBase
	Value string
}

func (*IntConst) exprNode() {}

// BoolConst is a boolean literal.
type BoolConst struct {
	exprBase
	Value bool
}

func (*BoolConst) exprNode() {}

// StringConst is a string literal.
type StringConst struct {
	exprBase
	Value string
}

func (*StringConst) exprNode() {}

// New is `new Type` (Type may be SELF_TYPE, preserved per spec.md §9).
type New struct {
	exprBase
	TypeName *symbol.Symbol
}

func (*New) exprNode() {}

// IsVoid is `isvoid expr`.
type IsVoid struct {
	exprBase
	Expr Expr
}

func (*IsVoid) exprNode() {}

// NoExpr is the sentinel variant used where Cool grammar allows an
// expression slot to be empty (a feature body, a let without an
// initializer). It is never handed to the recursive typechecker;
// callers check for it first (spec.md §4.3).
type NoExpr struct {
	exprBase
}

func (*NoExpr) exprNode() {}

// Object is an identifier reference, including `self`.
type Object struct {
	exprBase
	Name *symbol.Symbol
}

func (*Object) exprNode() {}
