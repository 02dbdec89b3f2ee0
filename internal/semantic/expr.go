package semantic

import (
	"fmt"

	"github.com/freaknbigpanda/coolc/internal/ast"
	"github.com/freaknbigpanda/coolc/pkg/symbol"
)

// typecheck implements spec.md §4.3's expression-typing rules: for
// every Expr variant, infer its type, record it via SetType, and
// return it. Callers never pass a NoExpr — they check for it first,
// since NoExpr carries no typing rule of its own.
func (a *Analyzer) typecheck(e ast.Expr) *symbol.Symbol {
	var t *symbol.Symbol

	switch expr := e.(type) {
	case *ast.Assign:
		t = a.typecheckAssign(expr)
	case *ast.StaticDispatch:
		t = a.typecheckStaticDispatch(expr)
	case *ast.Dispatch:
		t = a.typecheckDispatch(expr)
	case *ast.Conditional:
		t = a.typecheckConditional(expr)
	case *ast.Loop:
		t = a.typecheckLoop(expr)
	case *ast.TypeCase:
		t = a.typecheckTypeCase(expr)
	case *ast.Block:
		t = a.typecheckBlock(expr)
	case *ast.Let:
		t = a.typecheckLet(expr)
	case *ast.BinOp:
		t = a.typecheckBinOp(expr)
	case *ast.Comp:
		t = a.typecheckComp(expr)
	case *ast.Neg:
		t = a.typecheckNeg(expr)
	case *ast.IntConst:
		t = a.b.Int
	case *ast.BoolConst:
		t = a.b.Bool
	case *ast.StringConst:
		t = a.b.String
	case *ast.New:
		t = a.typecheckNew(expr)
	case *ast.IsVoid:
		a.typecheck(expr.Expr)
		t = a.b.Bool
	case *ast.Object:
		t = a.typecheckObject(expr)
	default:
		panic(fmt.Sprintf("semantic: unhandled expression variant %T", e))
	}

	e.SetType(t)
	return t
}

func (a *Analyzer) typecheckAssign(e *ast.Assign) *symbol.Symbol {
	valType := a.typecheck(e.Value)

	if e.Name == a.b.Self {
		a.sink.Errorf(a.currentClass.Filename, e.Line, "Cannot assign to 'self'")
		return a.b.Object
	}

	declType, ok := a.globalSymbols.Lookup(e.Name)
	if !ok {
		a.sink.Errorf(a.currentClass.Filename, e.Line, "Assignment to undeclared identifier %s", e.Name)
		return valType
	}

	if !a.subtype(valType, declType) {
		a.sink.Errorf(a.currentClass.Filename, e.Line, "Type %s of assigned expression does not conform to declared type %s of identifier %s", valType, declType, e.Name)
		return a.b.Object
	}
	return valType
}

func (a *Analyzer) typecheckObject(e *ast.Object) *symbol.Symbol {
	if e.Name == a.b.Self {
		return a.b.SelfType
	}
	if t, ok := a.globalSymbols.Lookup(e.Name); ok {
		return t
	}
	a.sink.Errorf(a.currentClass.Filename, e.Line, "Undeclared identifier %s", e.Name)
	return a.b.Object
}

func (a *Analyzer) typecheckNew(e *ast.New) *symbol.Symbol {
	if e.TypeName == a.b.SelfType {
		return a.b.SelfType
	}
	if _, ok := a.classes[e.TypeName]; !ok {
		a.sink.Errorf(a.currentClass.Filename, e.Line, "'new' used with undefined class %s", e.TypeName)
		return a.b.Object
	}
	return e.TypeName
}

func (a *Analyzer) typecheckComp(e *ast.Comp) *symbol.Symbol {
	t := a.typecheck(e.Expr)
	if t != a.b.Bool {
		a.sink.Errorf(a.currentClass.Filename, e.Line, "Argument of 'not' has type %s instead of Bool", t)
	}
	return a.b.Bool
}

func (a *Analyzer) typecheckNeg(e *ast.Neg) *symbol.Symbol {
	t := a.typecheck(e.Expr)
	if t != a.b.Int {
		a.sink.Errorf(a.currentClass.Filename, e.Line, "Argument of '~' has type %s instead of Int", t)
	}
	return a.b.Int
}

func binOpSymbol(op ast.BinOpKind) string {
	switch op {
	case ast.OpPlus:
		return "+"
	case ast.OpSub:
		return "-"
	case ast.OpMul:
		return "*"
	case ast.OpDivide:
		return "/"
	case ast.OpLt:
		return "<"
	case ast.OpLeq:
		return "<="
	default:
		return "="
	}
}

func (a *Analyzer) typecheckBinOp(e *ast.BinOp) *symbol.Symbol {
	lt := a.typecheck(e.Left)
	rt := a.typecheck(e.Right)

	switch e.Op {
	case ast.OpPlus, ast.OpSub, ast.OpMul, ast.OpDivide:
		if lt != a.b.Int || rt != a.b.Int {
			a.sink.Errorf(a.currentClass.Filename, e.Line, "non-Int arguments: %s %s %s", lt, binOpSymbol(e.Op), rt)
		}
		return a.b.Int
	case ast.OpLt, ast.OpLeq:
		if lt != a.b.Int || rt != a.b.Int {
			a.sink.Errorf(a.currentClass.Filename, e.Line, "non-Int arguments: %s %s %s", lt, binOpSymbol(e.Op), rt)
		}
		return a.b.Bool
	case ast.OpEq:
		if (a.isBasicType(lt) || a.isBasicType(rt)) && lt != rt {
			a.sink.Errorf(a.currentClass.Filename, e.Line, "Illegal comparison with a basic type")
		}
		return a.b.Bool
	default:
		panic("semantic: unhandled BinOp kind")
	}
}

func (a *Analyzer) typecheckConditional(e *ast.Conditional) *symbol.Symbol {
	if predType := a.typecheck(e.Pred); predType != a.b.Bool {
		a.sink.Errorf(a.currentClass.Filename, e.Line, "Predicate of 'if' does not have type Bool")
	}
	thenType := a.typecheck(e.Then)
	elseType := a.typecheck(e.Else)
	return a.leastUpperBound(thenType, elseType)
}

func (a *Analyzer) typecheckLoop(e *ast.Loop) *symbol.Symbol {
	if predType := a.typecheck(e.Pred); predType != a.b.Bool {
		a.sink.Errorf(a.currentClass.Filename, e.Line, "Loop condition does not have type Bool")
	}
	a.typecheck(e.Body)
	return a.b.Object
}

func (a *Analyzer) typecheckBlock(e *ast.Block) *symbol.Symbol {
	last := a.b.Object
	for _, sub := range e.Exprs {
		last = a.typecheck(sub)
	}
	return last
}

func (a *Analyzer) typecheckLet(e *ast.Let) *symbol.Symbol {
	if e.Name == a.b.Self {
		a.sink.Errorf(a.currentClass.Filename, e.Line, "'self' cannot be bound in a 'let' expression")
	}

	declType := e.DeclType
	if declType != a.b.SelfType {
		if _, ok := a.classes[declType]; !ok {
			a.sink.Errorf(a.currentClass.Filename, e.Line, "Class %s of let-bound identifier %s is undefined", declType, e.Name)
			declType = a.b.Object
		}
	}

	if _, isNoExpr := e.Init.(*ast.NoExpr); !isNoExpr {
		initType := a.typecheck(e.Init)
		conforms := initType != nil && (declType == a.b.SelfType && initType == a.b.SelfType || a.subtype(initType, declType))
		if !conforms {
			a.sink.Errorf(a.currentClass.Filename, e.Line, "Inferred type %s of initialization of %s does not conform to identifier's declared type %s", initType, e.Name, declType)
		}
	}

	a.globalSymbols.EnterScope()
	defer a.globalSymbols.ExitScope()
	a.globalSymbols.Add(e.Name, declType)
	return a.typecheck(e.Body)
}

func (a *Analyzer) typecheckTypeCase(e *ast.TypeCase) *symbol.Symbol {
	a.typecheck(e.Expr)

	seen := make(map[*symbol.Symbol]bool)
	var result *symbol.Symbol

	for _, branch := range e.Branches {
		if branch.DeclType == a.b.SelfType {
			a.sink.Errorf(a.currentClass.Filename, branch.Line, "case branch type may not be SELF_TYPE")
		} else if seen[branch.DeclType] {
			a.sink.Errorf(a.currentClass.Filename, branch.Line, "Duplicate branch %s in case statement.", branch.DeclType)
		}
		seen[branch.DeclType] = true

		a.globalSymbols.EnterScope()
		a.globalSymbols.Add(branch.Name, branch.DeclType)
		branchType := a.typecheck(branch.Body)
		a.globalSymbols.ExitScope()

		if result == nil {
			result = branchType
		} else {
			result = a.leastUpperBound(result, branchType)
		}
	}

	if result == nil {
		return a.b.Object
	}
	return result
}

// checkArgs validates a call's actual argument types against sig's
// formals, reporting an arity mismatch or any non-conforming argument
// (spec.md §4.3's dispatch rule).
func (a *Analyzer) checkArgs(line int, method *symbol.Symbol, sig *MethodSignature, argTypes []*symbol.Symbol) {
	if len(argTypes) != len(sig.FormalTypes) {
		a.sink.Errorf(a.currentClass.Filename, line, "Method %s called with wrong number of arguments", method)
		return
	}
	for i, argType := range argTypes {
		if !a.subtype(argType, sig.FormalTypes[i]) {
			a.sink.Errorf(a.currentClass.Filename, line, "In call of method %s, type %s of parameter does not conform to declared type %s", method, argType, sig.FormalTypes[i])
		}
	}
}

func (a *Analyzer) typecheckDispatch(e *ast.Dispatch) *symbol.Symbol {
	receiverType := a.typecheck(e.Receiver)

	lookupType := receiverType
	if lookupType == a.b.SelfType {
		lookupType = a.currentClass.Name
	}
	sig, found := a.lookupMethod(lookupType, e.Method)

	argTypes := make([]*symbol.Symbol, len(e.Args))
	for i, arg := range e.Args {
		argTypes[i] = a.typecheck(arg)
	}

	if !found {
		a.sink.Errorf(a.currentClass.Filename, e.Line, "Tried to call method that was not defined in the specified class hierarchy")
		return a.b.Object
	}
	a.checkArgs(e.Line, e.Method, sig, argTypes)

	if sig.ReturnType == a.b.SelfType {
		return receiverType
	}
	return sig.ReturnType
}

func (a *Analyzer) typecheckStaticDispatch(e *ast.StaticDispatch) *symbol.Symbol {
	receiverType := a.typecheck(e.Receiver)

	if e.StaticType == a.b.SelfType {
		a.sink.Errorf(a.currentClass.Filename, e.Line, "Static dispatch to SELF_TYPE is illegal")
		for _, arg := range e.Args {
			a.typecheck(arg)
		}
		return a.b.Object
	}

	if _, ok := a.classes[e.StaticType]; !ok {
		a.sink.Errorf(a.currentClass.Filename, e.Line, "Static dispatch to undefined class %s", e.StaticType)
		for _, arg := range e.Args {
			a.typecheck(arg)
		}
		return a.b.Object
	}

	if !a.subtype(receiverType, e.StaticType) {
		a.sink.Errorf(a.currentClass.Filename, e.Line, "Expression type %s does not conform to declared static dispatch type %s", receiverType, e.StaticType)
	}

	sig, found := a.lookupMethod(e.StaticType, e.Method)
	argTypes := make([]*symbol.Symbol, len(e.Args))
	for i, arg := range e.Args {
		argTypes[i] = a.typecheck(arg)
	}

	if !found {
		a.sink.Errorf(a.currentClass.Filename, e.Line, "Tried to call method that was not defined in the specified class hierarchy")
		return a.b.Object
	}
	a.checkArgs(e.Line, e.Method, sig, argTypes)

	if sig.ReturnType == a.b.SelfType {
		return receiverType
	}
	return sig.ReturnType
}
