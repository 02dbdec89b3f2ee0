// Package inheritance implements the inheritance graph described in
// spec.md §3–§4.1: a forest of InheritanceNodes, owned by a single
// Graph, with non-owning parent/child references between them.
//
// Grounded directly on original_source/semant.cc's InheritanceNode and
// ClassTable::ValidateInheritance, translated from C++'s manual
// new/unique_ptr bookkeeping into Go's map-of-owned-nodes idiom (spec.md
// §9's "owning graph with non-owning references" design note).
package inheritance

import "github.com/freaknbigpanda/coolc/pkg/symbol"

// Node is one class in the inheritance forest. The Graph that created
// it owns it; Parent and Children are non-owning references into that
// same Graph.
type Node struct {
	Name           *symbol.Symbol
	Parent         *Node
	Children       map[*symbol.Symbol]*Node
	NumDescendants int
}

// IsChildOfOrEqual walks n's parent chain and reports whether it
// reaches potentialParent (reflexive: a node is always a child-of-or-
// equal to itself).
func (n *Node) IsChildOfOrEqual(potentialParent *Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == potentialParent {
			return true
		}
	}
	return false
}

// FirstCommonAncestor returns the most specific node that is an
// ancestor of both n and other (spec.md §4.4's simultaneous-ancestor
// walk). Returns nil only if the two nodes genuinely share no ancestor,
// which cannot happen in a validated graph rooted at _no_class.
func (n *Node) FirstCommonAncestor(other *Node) *Node {
	if other == nil {
		return nil
	}
	ancestors := make(map[*Node]bool)
	for p := n; p != nil; p = p.Parent {
		ancestors[p] = true
	}
	for p := other; p != nil; p = p.Parent {
		if ancestors[p] {
			return p
		}
	}
	return nil
}

// Graph owns every Node reached during inheritance validation, keyed
// by interned class-name symbol.
type Graph struct {
	nodes map[*symbol.Symbol]*Node
}

// NewGraph creates an empty inheritance graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[*symbol.Symbol]*Node)}
}

// GetOrCreate returns the node for name, creating an unparented one if
// it has never been seen.
func (g *Graph) GetOrCreate(name *symbol.Symbol) *Node {
	if n, ok := g.nodes[name]; ok {
		return n
	}
	n := &Node{Name: name, Children: make(map[*symbol.Symbol]*Node)}
	g.nodes[name] = n
	return n
}

// Lookup returns the node for name without creating it.
func (g *Graph) Lookup(name *symbol.Symbol) (*Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// Nodes returns every node owned by the graph. Iteration order is
// unspecified; callers that need determinism (diagnostics) should sort
// by the name each node carries.
func (g *Graph) Nodes() map[*symbol.Symbol]*Node {
	return g.nodes
}

// AddChild attaches child as a child of parent, maintaining descendant
// counts and detecting cycles by walking upward from parent. Returns
// cycleDetected=true if attaching creates a cycle, false otherwise; the
// caller (the validator) treats a cycle as a fatal structural error.
func (p *Node) AddChild(child *Node) (cycleDetected bool) {
	if _, exists := p.Children[child.Name]; exists {
		// Multiply-defined children are rejected before AddChild is
		// called (spec.md §4.1 check 3); AddChild itself only guards
		// against the structural cycle case.
		return false
	}
	p.Children[child.Name] = child
	p.NumDescendants += child.NumDescendants + 1
	child.Parent = p

	visited := map[*symbol.Symbol]bool{p.Name: true}
	for anc := p.Parent; anc != nil; anc = anc.Parent {
		if visited[anc.Name] {
			return true
		}
		visited[anc.Name] = true
		anc.NumDescendants += child.NumDescendants + 1
	}
	return false
}
