package regex

import "github.com/tkyk0317/toy-regex/vm"

// Options selects which back end Exec runs and whether the pattern is
// matched anywhere in the input (substring mode) or against the whole
// string, fixed at Compile time instead of passed on every call.
type Options struct {
	// UseVM selects the bytecode/VM back end (package vm) over the
	// automaton back end (packages nfa/dfa) when true.
	UseVM bool

	// Substring, when true, wraps the pattern as ".*" + pattern + ".*"
	// before compilation, so a match anywhere in the input suffices.
	// When false, the whole input must match.
	Substring bool

	// UseDFA selects subset-constructed DFA execution over direct NFA
	// simulation for the automaton back end. Both implement the same
	// full-string semantics; DFA trades compile-time work for a faster
	// run. Ignored when UseVM is true. This knob exists so the two
	// automaton strategies can be tested directly against each other.
	UseDFA bool

	// VMRunner selects the VM interpreter used when UseVM is true.
	// Defaults to vm.WorkListRunner{} (see DefaultOptions), the
	// iterative interpreter preferred over thread-spawning.
	VMRunner vm.Runner
}

// DefaultOptions returns the automaton back end via DFA, full-string
// matching.
func DefaultOptions() Options {
	return Options{
		UseVM:     false,
		Substring: false,
		UseDFA:    true,
		VMRunner:  vm.WorkListRunner{},
	}
}
