package semantic

import "github.com/freaknbigpanda/coolc/pkg/symbol"

// scope is one frame of the scoped symbol table: a mapping from
// attribute/variable name to its declared type.
type scope struct {
	bindings map[*symbol.Symbol]*symbol.Symbol
}

func newScope() *scope {
	return &scope{bindings: make(map[*symbol.Symbol]*symbol.Symbol)}
}

// SymbolTable is the stack of scopes described in spec.md §3 — "a stack
// of mappings name -> attribute-type" with EnterScope/ExitScope/Add/
// Probe/Lookup. Grounded on the teacher's internal/semantic SymbolTable
// (CWBudde-go-dws), trimmed to Cool's single binding kind (there is no
// separate function/overload layer to track here — method signatures
// live in their own MethodMap, see method_map.go).
type SymbolTable struct {
	scopes []*scope
}

// NewSymbolTable creates a symbol table with a single, outermost scope.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{scopes: []*scope{newScope()}}
}

// EnterScope pushes a new, empty scope.
func (st *SymbolTable) EnterScope() {
	st.scopes = append(st.scopes, newScope())
}

// ExitScope pops the innermost scope. Every EnterScope call must be
// matched by exactly one ExitScope on all return paths, including
// error returns (spec.md §5) — callers with early returns use a defer
// immediately after EnterScope; the rest call ExitScope on their single
// exit path.
func (st *SymbolTable) ExitScope() {
	st.scopes = st.scopes[:len(st.scopes)-1]
}

// Add binds name to typ in the current (innermost) scope.
func (st *SymbolTable) Add(name, typ *symbol.Symbol) {
	st.scopes[len(st.scopes)-1].bindings[name] = typ
}

// Probe looks up name in the current scope only, without walking
// outward. Used to detect same-scope redefinitions.
func (st *SymbolTable) Probe(name *symbol.Symbol) (*symbol.Symbol, bool) {
	typ, ok := st.scopes[len(st.scopes)-1].bindings[name]
	return typ, ok
}

// Lookup walks from the innermost scope outward and returns the first
// binding found for name.
func (st *SymbolTable) Lookup(name *symbol.Symbol) (*symbol.Symbol, bool) {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if typ, ok := st.scopes[i].bindings[name]; ok {
			return typ, true
		}
	}
	return nil, false
}

// Depth reports the number of scopes currently on the stack, for
// assertions in tests that every EnterScope is balanced by ExitScope.
func (st *SymbolTable) Depth() int {
	return len(st.scopes)
}
