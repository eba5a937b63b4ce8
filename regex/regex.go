package regex

import (
	"github.com/tkyk0317/toy-regex/ast"
	"github.com/tkyk0317/toy-regex/dfa"
	"github.com/tkyk0317/toy-regex/nfa"
	"github.com/tkyk0317/toy-regex/parser"
	"github.com/tkyk0317/toy-regex/vm"
)

// Regex is a compiled pattern together with the compiled artifacts of the
// back end its Options select. All fields are immutable after Compile returns, so a Regex
// is safe to share and reuse for repeated matches concurrently from
// multiple goroutines.
type Regex struct {
	pattern string
	opts    Options

	root *ast.Node
	n    *nfa.NFA
	d    *dfa.DFA
	prog vm.Program
}

// Compile parses pattern and builds the selected back end up front: the
// VM program when UseVM is set, otherwise the NFA and, when UseDFA is
// set, the DFA. If Substring is set, the pattern is wrapped as
// ".*" + pattern + ".*" before parsing.
func Compile(pattern string, opts Options) (*Regex, error) {
	effective := pattern
	if opts.Substring {
		effective = ".*" + pattern + ".*"
	}

	root, err := parser.Parse(effective)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	r := &Regex{
		pattern: pattern,
		opts:    opts,
		root:    root,
	}

	if opts.UseVM {
		r.prog = vm.Compile(root)
	} else {
		r.n = nfa.Compile(root)
		if opts.UseDFA {
			r.d = dfa.Compile(r.n)
		}
	}

	return r, nil
}

// MustCompile is like Compile but panics if pattern is invalid. Useful
// for patterns known to be valid at compile time.
func MustCompile(pattern string, opts Options) *Regex {
	re, err := Compile(pattern, opts)
	if err != nil {
		panic("regex: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// Exec reports whether input matches the compiled pattern under this
// Regex's Options.
func (r *Regex) Exec(input string) bool {
	if r.opts.UseVM {
		return r.opts.VMRunner.Run(r.prog, input)
	}
	if r.opts.UseDFA {
		return dfa.Run(r.d, input)
	}
	return nfa.Match(r.n, input)
}

// Pattern returns the original, unwrapped pattern text this Regex was
// compiled from.
func (r *Regex) Pattern() string { return r.pattern }

// Exec is a convenience wrapper that compiles pattern with the given
// useVM/substring selection and executes it once against input, for
// callers that don't need to reuse the compiled artifacts.
func Exec(pattern, input string, useVM, substring bool) (bool, error) {
	opts := DefaultOptions()
	opts.UseVM = useVM
	opts.Substring = substring
	re, err := Compile(pattern, opts)
	if err != nil {
		return false, err
	}
	return re.Exec(input), nil
}
