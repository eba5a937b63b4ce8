package nfa

import (
	"github.com/tkyk0317/toy-regex/ast"
	"github.com/tkyk0317/toy-regex/fa"
)

// NFA is a compiled, immutable nondeterministic finite automaton: one
// start state, a non-empty set of accept states, and the rulebook
// connecting them. Once built it may be shared across any number of
// concurrent simulations.
type NFA struct {
	Start    fa.StateID
	Accept   fa.StateSet
	Rulebook *fa.Rulebook
}

// Compile lowers an AST into a complete NFA.
func Compile(n *ast.Node) *NFA {
	b := NewBuilder()
	frag := b.Lower(n)
	return &NFA{Start: frag.Start, Accept: frag.Accept, Rulebook: b.Rulebook()}
}

// Alphabet returns the set of literal runes that appear in Char
// transitions, plus a flag reporting whether any Any transition exists.
// The DFA subset construction (package dfa) uses this as its symbol set:
// the automaton's alphabet is the characters syntactically present in
// the pattern, not the whole Unicode universe.
func (n *NFA) Alphabet() (chars []rune, hasAny bool) {
	seen := make(map[rune]struct{})
	for _, t := range n.Rulebook.Rules() {
		switch t.On {
		case fa.CharKind:
			if _, ok := seen[t.Ch]; !ok {
				seen[t.Ch] = struct{}{}
				chars = append(chars, t.Ch)
			}
		case fa.AnyKind:
			hasAny = true
		}
	}
	return chars, hasAny
}

// EpsilonClosure returns the smallest superset of states reachable by
// following only epsilon transitions, iterated to a fixed point via
// StateSet.IsSubsetOf rather than a deep-equality check, since the union
// only ever grows.
func (n *NFA) EpsilonClosure(states fa.StateSet) fa.StateSet {
	closure := states
	for {
		step := n.Rulebook.Step(closure, nil)
		if step.IsSubsetOf(closure) {
			return closure
		}
		closure = closure.Union(step)
	}
}

// Simulator runs one NFA simulation over an input string, tracking the
// current set of live states: epsilon-close, then step on each input
// rune, epsilon-closing again after each step.
type Simulator struct {
	nfa     *NFA
	current fa.StateSet
}

// NewSimulator starts a simulation at the NFA's ε-closed start state.
func NewSimulator(n *NFA) *Simulator {
	s := &Simulator{nfa: n}
	s.current = n.EpsilonClosure(fa.NewStateSet(n.Start))
	return s
}

// Step advances the simulation by one input rune.
func (s *Simulator) Step(c rune) {
	stepped := s.nfa.Rulebook.Step(s.current, &c)
	s.current = s.nfa.EpsilonClosure(stepped)
}

// Accepting reports whether the current state set intersects the NFA's
// accept states. If the live-state set has gone empty (no rule applied),
// it simply stays empty and this test fails, with no special-casing
// required.
func (s *Simulator) Accepting() bool {
	return s.current.Intersects(s.nfa.Accept)
}

// Match runs a full simulation over input and reports whether the NFA
// accepts it as a whole string. This is always full-string semantics;
// substring matching is the driver's responsibility (wrapping the
// pattern with `.*…*`).
func Match(n *NFA, input string) bool {
	sim := NewSimulator(n)
	for _, c := range input {
		sim.Step(c)
	}
	return sim.Accepting()
}
