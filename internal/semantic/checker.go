package semantic

import (
	"github.com/freaknbigpanda/coolc/internal/ast"
	"github.com/freaknbigpanda/coolc/pkg/symbol"
)

// checkTypes runs the four ordered passes of spec.md §4.2 over a
// validated class list. Only called once inheritance validation
// reported zero errors.
func (a *Analyzer) checkTypes(classes []*ast.Class) {
	a.globalSymbols = NewSymbolTable()

	a.passClassGather(classes)
	mainDefined := a.passMethodGather(classes)
	if !mainDefined {
		mainClass := a.classes[a.b.Main]
		a.sink.Errorf(mainClass.Filename, mainClass.Line, "main() method that takes no params must be declared in Main class")
	}
	a.passOverrideConformance(classes)
	a.passAttributesAndExpressions(classes)
}

// passClassGather is Pass A: every class name is bound to itself in
// the outermost scope of the shared symbol table, and the class
// registry is already complete from validation.
func (a *Analyzer) passClassGather(classes []*ast.Class) {
	for _, c := range classes {
		a.globalSymbols.Add(c.Name, c.Name)
	}
}

// passMethodGather is Pass B: record every method's signature, reject
// duplicate method names, reject malformed formals, and detect whether
// Main::main() with zero formals was declared.
func (a *Analyzer) passMethodGather(classes []*ast.Class) bool {
	mainDefined := false

	for _, c := range classes {
		seenMethods := make(map[*symbol.Symbol]bool)

		for _, f := range c.Features {
			method, ok := f.(*ast.Method)
			if !ok {
				continue
			}

			name := f.FeatureName()
			if seenMethods[name] {
				a.sink.Errorf(c.Filename, method.Line, "Method %s defined twice in class %s", name, c.Name)
				continue
			}
			seenMethods[name] = true

			formalTypes, ok := a.gatherFormals(c, method)
			if !ok {
				continue
			}

			a.methods.Define(c.Name, name, &MethodSignature{
				ReturnType:  method.ReturnType,
				FormalTypes: formalTypes,
			})

			if c.Name == a.b.Main && name == a.b.MainMeth && len(method.Formals) == 0 {
				mainDefined = true
			}
		}
	}

	return mainDefined
}

// gatherFormals validates a method's formal list (no "self" names, no
// SELF_TYPE declared types, no duplicate formal names) and returns the
// ordered formal types on success.
func (a *Analyzer) gatherFormals(c *ast.Class, method *ast.Method) ([]*symbol.Symbol, bool) {
	ok := true
	seen := make(map[*symbol.Symbol]bool)
	formalTypes := make([]*symbol.Symbol, 0, len(method.Formals))

	for _, f := range method.Formals {
		if f.Name == a.b.Self {
			a.sink.Errorf(c.Filename, f.Line, "'self' cannot be the name of a formal parameter")
			ok = false
			continue
		}
		if f.DeclaredType == a.b.SelfType {
			a.sink.Errorf(c.Filename, f.Line, "Formal parameter %s cannot have type SELF_TYPE", f.Name)
			ok = false
			continue
		}
		if seen[f.Name] {
			a.sink.Errorf(c.Filename, f.Line, "Formal parameter %s is multiply defined", f.Name)
			ok = false
			continue
		}
		seen[f.Name] = true
		formalTypes = append(formalTypes, f.DeclaredType)
	}

	return formalTypes, ok
}

// passOverrideConformance is Pass C: every method's signature must
// match the signature of the same-named method in the nearest
// ancestor that declares one.
func (a *Analyzer) passOverrideConformance(classes []*ast.Class) {
	for _, c := range classes {
		node, ok := a.graph.Lookup(c.Name)
		if !ok {
			continue
		}

		for _, f := range c.Features {
			method, ok := f.(*ast.Method)
			if !ok {
				continue
			}

			childSig, _ := a.methods.Lookup(c.Name, method.Name)

			for anc := node.Parent; anc != nil; anc = anc.Parent {
				parentSig, ok := a.methods.Lookup(anc.Name, method.Name)
				if !ok {
					continue
				}
				if !parentSig.Equals(childSig) {
					a.sink.Errorf(c.Filename, method.Line, "Method redefined in %s does not match parent class method signature", c.Name)
				}
				break
			}
		}
	}
}

// passAttributesAndExpressions is Pass D: for every class, gather
// inherited-plus-own attributes into one scope and then recursively
// type-check every feature's body against its declared type.
func (a *Analyzer) passAttributesAndExpressions(classes []*ast.Class) {
	for _, c := range classes {
		a.globalSymbols.EnterScope()
		a.currentClass = c

		a.gatherAttributes(c)

		for _, f := range c.Features {
			a.checkFeature(c, f)
		}

		a.currentClass = nil
		a.globalSymbols.ExitScope()
	}
}

// gatherAttributes walks c's ancestor chain from c upward (excluding
// _no_class), adding every attribute it finds into the current scope
// while rejecting "self" and redefinitions already visible in that
// scope (spec.md §4.2 Pass D, step 2).
func (a *Analyzer) gatherAttributes(c *ast.Class) {
	node, ok := a.graph.Lookup(c.Name)
	if !ok {
		return
	}

	for n := node; n != nil && n.Name != a.b.NoClass; n = n.Parent {
		ancestorClass, ok := a.classes[n.Name]
		if !ok {
			continue
		}

		for _, f := range ancestorClass.Features {
			attr, ok := f.(*ast.Attribute)
			if !ok {
				continue
			}

			name := f.FeatureName()
			if name == a.b.Self {
				a.sink.Errorf(ancestorClass.Filename, attr.Line, "'self' cannot be the name of an attribute")
				continue
			}

			if _, exists := a.globalSymbols.Probe(name); exists {
				a.sink.Errorf(ancestorClass.Filename, attr.Line, "Attribute %s is multiply defined", name)
				continue
			}

			a.globalSymbols.Add(name, attr.DeclaredType)
		}
	}
}

// checkFeature enters a nested scope for one feature's formals (if
// any), type-checks its body/init expression, and verifies declared
// type conformance (spec.md §4.2 Pass D, step 3).
func (a *Analyzer) checkFeature(c *ast.Class, f ast.Feature) {
	a.globalSymbols.EnterScope()
	defer a.globalSymbols.ExitScope()

	var body ast.Expr
	var declaredType *symbol.Symbol
	var isMethod bool

	switch feat := f.(type) {
	case *ast.Method:
		isMethod = true
		declaredType = feat.ReturnType
		body = feat.Body
		for _, formal := range feat.Formals {
			a.globalSymbols.Add(formal.Name, formal.DeclaredType)
		}
	case *ast.Attribute:
		declaredType = feat.DeclaredType
		body = feat.Init
	}

	if _, isNoExpr := body.(*ast.NoExpr); isNoExpr {
		return
	}

	bodyType := a.typecheck(body)
	if bodyType == nil {
		return
	}

	conforms := false
	if declaredType == a.b.SelfType {
		conforms = bodyType == a.b.SelfType
	} else {
		conforms = a.subtype(bodyType, declaredType)
	}

	if !conforms {
		kind := "Attribute initialization"
		if isMethod {
			kind = "Method body"
		}
		a.sink.Errorf(c.Filename, f.Pos(), "%s type %s does not conform to declared type %s", kind, bodyType, declaredType)
	}
}
