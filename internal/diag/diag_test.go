package diag

import (
	"strings"
	"testing"
)

func TestSinkAccumulatesInOrder(t *testing.T) {
	s := NewSink()

	s.Errorf("a.cl", 3, "undefined class %s", "Fooo")
	s.ErrorfNoPos("Class Main is not defined.")
	s.Errorf("a.cl", 10, "Illegal comparison with a basic type")

	if s.Count() != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", s.Count())
	}
	if !s.HasErrors() {
		t.Fatalf("HasErrors should report true once diagnostics exist")
	}

	errs := s.Errors()
	if errs[0].String() != "a.cl:3: undefined class Fooo" {
		t.Fatalf("unexpected first diagnostic: %q", errs[0].String())
	}
	if errs[1].String() != "Class Main is not defined." {
		t.Fatalf("unexpected no-position diagnostic: %q", errs[1].String())
	}
}

func TestEmitWritesOnePerLine(t *testing.T) {
	s := NewSink()
	s.Errorf("a.cl", 1, "first")
	s.Errorf("a.cl", 2, "second")

	var buf strings.Builder
	s.Emit(&buf)

	got := buf.String()
	want := "a.cl:1: first\na.cl:2: second\n"
	if got != want {
		t.Fatalf("Emit output mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestEmptySinkHasNoErrors(t *testing.T) {
	s := NewSink()
	if s.HasErrors() {
		t.Fatalf("a freshly created sink must report no errors")
	}
	if s.Count() != 0 {
		t.Fatalf("expected Count 0, got %d", s.Count())
	}
}
