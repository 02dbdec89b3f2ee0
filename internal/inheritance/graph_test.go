package inheritance

import (
	"testing"

	"github.com/freaknbigpanda/coolc/pkg/symbol"
)

func TestIsChildOfOrEqualReflexive(t *testing.T) {
	table := symbol.NewTable()
	g := NewGraph()
	object := g.GetOrCreate(table.Intern("Object"))

	if !object.IsChildOfOrEqual(object) {
		t.Fatalf("a node must be a child-of-or-equal to itself")
	}
}

func TestIsChildOfOrEqualWalksParentChain(t *testing.T) {
	table := symbol.NewTable()
	g := NewGraph()
	object := g.GetOrCreate(table.Intern("Object"))
	io := g.GetOrCreate(table.Intern("IO"))
	counter := g.GetOrCreate(table.Intern("Counter"))

	object.AddChild(io)
	io.AddChild(counter)

	if !counter.IsChildOfOrEqual(object) {
		t.Fatalf("Counter should be a descendant of Object")
	}
	if counter.IsChildOfOrEqual(nil) {
		t.Fatalf("no node should be a child-of-or-equal to nil")
	}
}

func TestFirstCommonAncestorCommutative(t *testing.T) {
	table := symbol.NewTable()
	g := NewGraph()
	object := g.GetOrCreate(table.Intern("Object"))
	a := g.GetOrCreate(table.Intern("A"))
	b := g.GetOrCreate(table.Intern("B"))
	c := g.GetOrCreate(table.Intern("C"))

	object.AddChild(a)
	a.AddChild(b)
	a.AddChild(c)

	fwd := b.FirstCommonAncestor(c)
	rev := c.FirstCommonAncestor(b)

	if fwd != a || rev != a {
		t.Fatalf("expected A as the common ancestor of B and C, got %v and %v", fwd, rev)
	}
}

func TestAddChildDetectsCycle(t *testing.T) {
	table := symbol.NewTable()
	g := NewGraph()
	a := g.GetOrCreate(table.Intern("A"))
	b := g.GetOrCreate(table.Intern("B"))

	if cycle := a.AddChild(b); cycle {
		t.Fatalf("attaching B under A should not itself be a cycle")
	}
	if cycle := b.AddChild(a); !cycle {
		t.Fatalf("attaching A under its own descendant B should be reported as a cycle")
	}
}

func TestAddChildTracksDescendantCounts(t *testing.T) {
	table := symbol.NewTable()
	g := NewGraph()
	object := g.GetOrCreate(table.Intern("Object"))
	io := g.GetOrCreate(table.Intern("IO"))
	counter := g.GetOrCreate(table.Intern("Counter"))

	object.AddChild(io)
	io.AddChild(counter)

	if object.NumDescendants != 2 {
		t.Fatalf("expected Object to have 2 descendants, got %d", object.NumDescendants)
	}
	if io.NumDescendants != 1 {
		t.Fatalf("expected IO to have 1 descendant, got %d", io.NumDescendants)
	}
}
