// Package fa provides the automaton primitives shared by the nfa and dfa
// packages: state identifiers, transitions, and rulebooks, covering the
// Char/Any/Epsilon transition kinds a Thompson construction needs.
package fa

import "sort"

// StateID uniquely identifies a state within one compilation. Identifiers
// are assigned by a monotonic per-builder counter (see Builder.Fresh) —
// never by a random generator, which would make two constructions of the
// same logical set produce different, incomparable identifiers.
type StateID uint32

// InvalidStateID marks the absence of a state.
const InvalidStateID StateID = ^StateID(0)

// Builder hands out fresh, unique StateIDs for one automaton compilation.
type Builder struct {
	next StateID
}

// Fresh returns a new StateID, unique within this Builder's lifetime.
func (b *Builder) Fresh() StateID {
	id := b.next
	b.next++
	return id
}

// TransitionKind identifies what a Transition consumes to follow it.
type TransitionKind uint8

const (
	// Epsilon transitions consume no input.
	Epsilon TransitionKind = iota
	// CharKind transitions consume exactly the rune in Transition.Ch.
	CharKind
	// AnyKind transitions consume any single input rune.
	AnyKind
)

// Transition is one edge of a rulebook: from From, on On, to To. Multiple
// transitions may share (From, On); that shared nondeterminism is what
// makes the automaton an NFA rather than a DFA.
type Transition struct {
	From StateID
	On   TransitionKind
	Ch   rune // valid when On == CharKind
	To   StateID
}

// Applies reports whether this transition can be followed from `from` on
// input `c` (nil meaning "no input", i.e. an epsilon step).
func (t Transition) Applies(from StateID, c *rune) bool {
	if t.From != from {
		return false
	}
	switch t.On {
	case Epsilon:
		return c == nil
	case CharKind:
		return c != nil && *c == t.Ch
	case AnyKind:
		return c != nil
	default:
		return false
	}
}

// Rulebook is the unordered collection of transitions owned by one
// automaton. It is append-only during construction and read-only during
// simulation.
type Rulebook struct {
	rules []Transition
}

// NewRulebook builds a Rulebook from a slice of transitions.
func NewRulebook(rules []Transition) *Rulebook {
	return &Rulebook{rules: rules}
}

// Add appends a transition to the rulebook.
func (rb *Rulebook) Add(t Transition) {
	rb.rules = append(rb.rules, t)
}

// Rules exposes the underlying transitions for iteration.
func (rb *Rulebook) Rules() []Transition {
	return rb.rules
}

// Step returns the set of states reachable from any state in `states` by
// following a single transition that applies to input `c` (nil for an
// epsilon step): for each current state, collect every rule that applies
// to it.
func (rb *Rulebook) Step(states StateSet, c *rune) StateSet {
	next := make(StateSet)
	for from := range states {
		for _, t := range rb.rules {
			if t.Applies(from, c) {
				next[t.To] = struct{}{}
			}
		}
	}
	return next
}

// StepAny returns the set of states reachable from `states` by following
// a transition whose kind is AnyKind, treating Any as its own alphabet
// symbol rather than a concrete rune: it is never expanded over the
// concrete Unicode alphabet during subset construction.
func (rb *Rulebook) StepAny(states StateSet) StateSet {
	next := make(StateSet)
	for from := range states {
		for _, t := range rb.rules {
			if t.On == AnyKind && t.From == from {
				next[t.To] = struct{}{}
			}
		}
	}
	return next
}

// StateSet is an unordered set of StateIDs, the NFA simulator's and the
// DFA builder's working representation of "current states".
type StateSet map[StateID]struct{}

// NewStateSet builds a StateSet containing exactly the given ids.
func NewStateSet(ids ...StateID) StateSet {
	s := make(StateSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Union returns a new StateSet containing every element of s and other.
func (s StateSet) Union(other StateSet) StateSet {
	out := make(StateSet, len(s)+len(other))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range other {
		out[id] = struct{}{}
	}
	return out
}

// IsSubsetOf reports whether every element of s is also in other — used
// by ε-closure to detect the fixed point without re-sorting on each step.
func (s StateSet) IsSubsetOf(other StateSet) bool {
	for id := range s {
		if _, ok := other[id]; !ok {
			return false
		}
	}
	return true
}

// Intersects reports whether s and other share at least one element.
func (s StateSet) Intersects(other StateSet) bool {
	small, big := s, other
	if len(big) < len(small) {
		small, big = big, small
	}
	for id := range small {
		if _, ok := big[id]; ok {
			return true
		}
	}
	return false
}

// Canonical returns the sorted slice of StateIDs in s. Two StateSets
// representing the same logical set always produce an identical
// Canonical slice, which is exactly the property the DFA subset
// construction needs to collapse structurally-equal NFA-state-sets into
// one DFA state.
func (s StateSet) Canonical() []StateID {
	out := make([]StateID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Empty reports whether the set has no members.
func (s StateSet) Empty() bool { return len(s) == 0 }
