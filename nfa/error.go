// Package nfa lowers an ast.Node into a Thompson-style nondeterministic
// finite automaton, built over a Char/Any/Epsilon rulebook, and
// simulates it directly (no bytecode involved).
package nfa

import "fmt"

// BuildError reports an internal inconsistency discovered while lowering
// an AST to an NFA fragment — a programming error, not a pattern error,
// since the parser already rejected malformed patterns.
type BuildError struct {
	Message string
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("NFA build error: %s", e.Message)
}
