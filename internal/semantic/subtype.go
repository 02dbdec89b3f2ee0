package semantic

import "github.com/freaknbigpanda/coolc/pkg/symbol"

// subtype reports whether sub ⊑ super (spec.md §4.4). SELF_TYPE on the
// left resolves to the class currently being checked; SELF_TYPE on the
// right conforms only to itself, never to a concrete ancestor.
func (a *Analyzer) subtype(sub, super *symbol.Symbol) bool {
	if sub == super {
		return true
	}
	if super == a.b.SelfType {
		return false
	}
	if sub == a.b.SelfType {
		sub = a.currentClass.Name
	}

	subNode, ok := a.graph.Lookup(sub)
	if !ok {
		return false
	}
	superNode, ok := a.graph.Lookup(super)
	if !ok {
		return false
	}
	return subNode.IsChildOfOrEqual(superNode)
}

// leastUpperBound computes x ⊔ y (spec.md §4.4): SELF_TYPE_C ⊔
// SELF_TYPE_C is SELF_TYPE_C, any other combination resolves SELF_TYPE
// to the current class and returns the first common ancestor in the
// inheritance graph.
func (a *Analyzer) leastUpperBound(x, y *symbol.Symbol) *symbol.Symbol {
	if x == a.b.SelfType && y == a.b.SelfType {
		return a.b.SelfType
	}
	if x == a.b.SelfType {
		x = a.currentClass.Name
	}
	if y == a.b.SelfType {
		y = a.currentClass.Name
	}
	if x == y {
		return x
	}

	xNode, ok := a.graph.Lookup(x)
	if !ok {
		return a.b.Object
	}
	yNode, ok := a.graph.Lookup(y)
	if !ok {
		return a.b.Object
	}

	anc := xNode.FirstCommonAncestor(yNode)
	if anc == nil {
		return a.b.Object
	}
	return anc.Name
}

// isBasicType reports whether t is one of the three built-in types with
// value-comparison semantics, per spec.md §4.3's `=` rule.
func (a *Analyzer) isBasicType(t *symbol.Symbol) bool {
	return t == a.b.Int || t == a.b.Bool || t == a.b.String
}

// lookupMethod walks class's ancestor chain (starting at class itself)
// for the nearest declaration of method, per spec.md §4.3's dispatch
// rule.
func (a *Analyzer) lookupMethod(class, method *symbol.Symbol) (*MethodSignature, bool) {
	node, ok := a.graph.Lookup(class)
	if !ok {
		return nil, false
	}
	for n := node; n != nil && n.Name != a.b.NoClass; n = n.Parent {
		if sig, ok := a.methods.Lookup(n.Name, method); ok {
			return sig, true
		}
	}
	return nil, false
}
