package dfa

import (
	"github.com/tkyk0317/toy-regex/fa"
	"github.com/tkyk0317/toy-regex/nfa"
)

// StateID identifies a DFA state. Unlike fa.StateID (one NFA state), a
// DFA StateID denotes a whole canonicalized set of NFA states — the
// subset construction's state.
type StateID uint32

// DFA is a compiled, immutable deterministic finite automaton: one start
// state, a set of accepting states, and a transition function with at
// most one successor per (state, symbol). Missing entries are an
// implicit dead state.
type DFA struct {
	Start    StateID
	accept   map[StateID]bool
	trans    map[StateID]map[rune]StateID // exact-character edges
	anyTrans map[StateID]StateID          // fallback Any edges
}

// Accepts reports whether s is an accepting DFA state.
func (d *DFA) Accepts(s StateID) bool { return d.accept[s] }

// Compile performs subset construction over n, producing an equivalent
// DFA. Starting from the ε-closure of the NFA's start state, for every
// symbol in the NFA's alphabet — each literal rune that appears in the
// pattern, plus the sentinel Any symbol when present — it steps and
// ε-closes to find the successor set, canonicalizing each set
// (fa.StateSet.Canonical) so structurally equal sets collapse to the
// same DFA state, repeating until the worklist is empty.
func Compile(n *nfa.NFA) *DFA {
	d := &DFA{
		accept:   make(map[StateID]bool),
		trans:    make(map[StateID]map[rune]StateID),
		anyTrans: make(map[StateID]StateID),
	}
	chars, hasAny := n.Alphabet()

	seen := make(map[string]StateID)
	var sets []fa.StateSet
	var nextID StateID

	internID := func(set fa.StateSet) (StateID, bool) {
		key := canonicalKey(set)
		if id, ok := seen[key]; ok {
			return id, false
		}
		id := nextID
		nextID++
		seen[key] = id
		sets = append(sets, set)
		return id, true
	}

	startSet := n.EpsilonClosure(fa.NewStateSet(n.Start))
	startID, _ := internID(startSet)
	d.Start = startID

	queue := []StateID{startID}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		qSet := sets[q]

		if qSet.Intersects(n.Accept) {
			d.accept[q] = true
		}

		for _, c := range chars {
			ch := c
			succ := n.EpsilonClosure(n.Rulebook.Step(qSet, &ch))
			if succ.Empty() {
				continue
			}
			succID, isNew := internID(succ)
			if d.trans[q] == nil {
				d.trans[q] = make(map[rune]StateID)
			}
			d.trans[q][c] = succID
			if isNew {
				queue = append(queue, succID)
			}
		}

		if hasAny {
			succ := n.EpsilonClosure(n.Rulebook.StepAny(qSet))
			if !succ.Empty() {
				succID, isNew := internID(succ)
				d.anyTrans[q] = succID
				if isNew {
					queue = append(queue, succID)
				}
			}
		}
	}

	return d
}

func canonicalKey(set fa.StateSet) string {
	ids := set.Canonical()
	key := make([]byte, 0, len(ids)*5)
	for _, id := range ids {
		key = append(key, byte(id), byte(id>>8), byte(id>>16), byte(id>>24), ',')
	}
	return string(key)
}

// Run walks the DFA over input, consuming one rune per step. On each
// rune the runner prefers an exact-character transition and falls back
// to the Any transition from the same state; the absence of both is a
// dead end, and a dead state can never become accepting again, so Run
// reports false immediately rather than consuming the rest of the input.
func Run(d *DFA, input string) bool {
	state := d.Start
	for _, c := range input {
		next, ok := d.step(state, c)
		if !ok {
			return false
		}
		state = next
	}
	return d.Accepts(state)
}

func (d *DFA) step(state StateID, c rune) (StateID, bool) {
	if row, ok := d.trans[state]; ok {
		if next, ok := row[c]; ok {
			return next, true
		}
	}
	if next, ok := d.anyTrans[state]; ok {
		return next, true
	}
	return 0, false
}
