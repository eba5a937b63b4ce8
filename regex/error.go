// Package regex is the top-level driver: it composes the front end
// (package parser) with a chosen back end (package nfa/dfa, or package
// vm) and substring wrapping, exposing a single Exec predicate to
// external callers through a Compile/MustCompile constructor pair and a
// thin method API over an internal, immutable compiled engine.
package regex

import "fmt"

// CompileError wraps a pattern compilation failure with the offending
// pattern text: a Pattern/Err pair with Unwrap so callers can
// errors.Is/As through to the underlying parser.SyntaxError.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("regex: compile %q: %v", e.Pattern, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *CompileError) Unwrap() error {
	return e.Err
}
