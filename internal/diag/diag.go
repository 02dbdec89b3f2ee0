// Package diag implements the diagnostic sink described in spec.md §4.5:
// a counted list of one-line, best-effort error messages, optionally
// tagged with a source file and line, written one per line to a stream.
//
// Grounded in the teacher's internal/errors package (CompilerError),
// trimmed down to Cool's single-line "<file>:<line>: <message>" format —
// Cool diagnostics carry no source snippet or caret, unlike DWScript's.
package diag

import (
	"fmt"
	"io"
)

// Error is a single semantic diagnostic. HasLine is false for the rare
// diagnostic that is not attributable to a specific node (e.g. "Class
// Main is not defined.", per spec.md §4.1).
type Error struct {
	File    string
	Line    int
	HasLine bool
	Message string
}

func (e Error) String() string {
	if e.HasLine {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
	}
	return e.Message
}

// Sink accumulates diagnostics during inheritance validation and type
// checking. Analysis is best-effort: most errors are recorded and
// scanning continues (spec.md §4.5, §7).
type Sink struct {
	errors []Error
}

// NewSink creates an empty diagnostic sink.
func NewSink() *Sink {
	return &Sink{}
}

// Errorf records a line-attributed diagnostic.
func (s *Sink) Errorf(file string, line int, format string, args ...any) {
	s.errors = append(s.errors, Error{
		File:    file,
		Line:    line,
		HasLine: true,
		Message: fmt.Sprintf(format, args...),
	})
}

// ErrorfNoPos records a diagnostic with no specific source position.
func (s *Sink) ErrorfNoPos(format string, args ...any) {
	s.errors = append(s.errors, Error{Message: fmt.Sprintf(format, args...)})
}

// Count returns the number of diagnostics recorded so far.
func (s *Sink) Count() int {
	return len(s.errors)
}

// HasErrors reports whether any diagnostic was recorded.
func (s *Sink) HasErrors() bool {
	return len(s.errors) > 0
}

// Errors returns the accumulated diagnostics in emission order.
func (s *Sink) Errors() []Error {
	return s.errors
}

// Emit writes one diagnostic per line to w.
func (s *Sink) Emit(w io.Writer) {
	for _, e := range s.errors {
		fmt.Fprintln(w, e.String())
	}
}
