package semantic

import "github.com/freaknbigpanda/coolc/pkg/symbol"

// MethodSignature is a method's return type and ordered formal types
// (spec.md §3). Two signatures are equal iff both compare equal
// element-wise by symbol identity.
type MethodSignature struct {
	ReturnType  *symbol.Symbol
	FormalTypes []*symbol.Symbol
}

// Equals reports whether two signatures have the same return type and
// the same ordered formal types, per spec.md §3.
func (m *MethodSignature) Equals(other *MethodSignature) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.ReturnType != other.ReturnType {
		return false
	}
	if len(m.FormalTypes) != len(other.FormalTypes) {
		return false
	}
	for i, t := range m.FormalTypes {
		if t != other.FormalTypes[i] {
			return false
		}
	}
	return true
}

// methodKey composites a class name and a method name into a single
// comparable map key (Cool has no overloading, so this pair is always
// sufficient — spec.md §9's "Method map keying" design note).
type methodKey struct {
	class  *symbol.Symbol
	method *symbol.Symbol
}

// MethodMap is the (class-name, method-name) -> MethodSignature
// registry populated by Pass B (method gather) and consulted by Pass C
// (override conformance) and dispatch resolution.
type MethodMap struct {
	entries map[methodKey]*MethodSignature
}

// NewMethodMap creates an empty method signature map.
func NewMethodMap() *MethodMap {
	return &MethodMap{entries: make(map[methodKey]*MethodSignature)}
}

// Define records the signature for (class, method). Overwrites any
// existing entry; callers are responsible for rejecting duplicates
// before calling Define (see passMethodGather).
func (m *MethodMap) Define(class, method *symbol.Symbol, sig *MethodSignature) {
	m.entries[methodKey{class, method}] = sig
}

// Lookup returns the signature declared directly on class for method,
// without searching ancestors.
func (m *MethodMap) Lookup(class, method *symbol.Symbol) (*MethodSignature, bool) {
	sig, ok := m.entries[methodKey{class, method}]
	return sig, ok
}
