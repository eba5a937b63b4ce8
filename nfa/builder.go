package nfa

import (
	"github.com/tkyk0317/toy-regex/ast"
	"github.com/tkyk0317/toy-regex/fa"
)

// Fragment is one piece of NFA under construction: a start state and a
// set of accept states. The transitions that wire them together live in
// the Builder's shared rulebook, not in the Fragment. Start is
// always a member of the fragment's state universe, every transition
// endpoint is too, and Accept is never empty.
type Fragment struct {
	Start  fa.StateID
	Accept fa.StateSet
}

// Builder lowers an ast.Node into NFA fragments, accumulating every state
// and transition into one shared Rulebook.
type Builder struct {
	states   fa.Builder
	rulebook fa.Rulebook
}

// NewBuilder returns a Builder ready to lower AST nodes.
func NewBuilder() *Builder {
	return &Builder{}
}

// Rulebook exposes the rulebook accumulated so far, for assembling the
// final NFA once lowering completes.
func (b *Builder) Rulebook() *fa.Rulebook { return &b.rulebook }

// Lower compiles an AST node into an NFA fragment, recursively lowering
// children first and then wiring them together.
func (b *Builder) Lower(n *ast.Node) Fragment {
	switch n.Kind {
	case ast.Literal:
		return b.lowerSymbol(fa.CharKind, n.Ch)
	case ast.AnyChar:
		return b.lowerSymbol(fa.AnyKind, 0)
	case ast.Concat:
		return b.lowerConcat(n)
	case ast.Alt:
		return b.lowerAlt(n)
	case ast.Star:
		return b.lowerStar(n)
	case ast.Plus:
		return b.lowerPlus(n)
	case ast.Question:
		return b.lowerQuestion(n)
	default:
		panic(&BuildError{Message: "unknown AST node kind"})
	}
}

// lowerSymbol handles Literal(c) and Dot: two states joined by a single
// consuming transition.
func (b *Builder) lowerSymbol(kind fa.TransitionKind, ch rune) Fragment {
	s0 := b.states.Fresh()
	s1 := b.states.Fresh()
	b.rulebook.Add(fa.Transition{From: s0, On: kind, Ch: ch, To: s1})
	return Fragment{Start: s0, Accept: fa.NewStateSet(s1)}
}

// lowerConcat joins L's accept states to R's start with epsilon
// transitions. The combined fragment starts where L started and accepts
// where R accepts.
func (b *Builder) lowerConcat(n *ast.Node) Fragment {
	l := b.Lower(n.Left)
	r := b.Lower(n.Right)
	for s := range l.Accept {
		b.rulebook.Add(fa.Transition{From: s, On: fa.Epsilon, To: r.Start})
	}
	return Fragment{Start: l.Start, Accept: r.Accept}
}

// lowerAlt adds a new start state with epsilon branches into both
// operands; the result accepts wherever either operand accepts.
func (b *Builder) lowerAlt(n *ast.Node) Fragment {
	l := b.Lower(n.Left)
	r := b.Lower(n.Right)
	s0 := b.states.Fresh()
	b.rulebook.Add(fa.Transition{From: s0, On: fa.Epsilon, To: l.Start})
	b.rulebook.Add(fa.Transition{From: s0, On: fa.Epsilon, To: r.Start})
	return Fragment{Start: s0, Accept: l.Accept.Union(r.Accept)}
}

// lowerStar adds a new start state that can skip straight past the body
// (zero repetitions) and loops the body's accept states back to its own
// start (more repetitions). The new start state is itself accepting,
// giving Star its nullable semantics.
func (b *Builder) lowerStar(n *ast.Node) Fragment {
	e := b.Lower(n.Child)
	s0 := b.states.Fresh()
	b.rulebook.Add(fa.Transition{From: s0, On: fa.Epsilon, To: e.Start})
	for s := range e.Accept {
		b.rulebook.Add(fa.Transition{From: s, On: fa.Epsilon, To: e.Start})
	}
	accept := fa.NewStateSet(s0)
	return Fragment{Start: s0, Accept: accept.Union(e.Accept)}
}

// lowerPlus lowers Plus(E) as Concat(E, Star(E')) where E' is a
// structurally independent re-lowering of the same AST subtree. Sharing
// the single lowered fragment between the "must match once" and "may
// match more" copies would alias their states — the Star loop would then
// loop back into the very states the leading copy already consumed from,
// corrupting epsilon-closures for unrelated paths. ast.Node.Clone gives
// each copy its own states instead.
func (b *Builder) lowerPlus(n *ast.Node) Fragment {
	once := b.Lower(n.Child)
	star := b.lowerStar(&ast.Node{Kind: ast.Star, Child: n.Child.Clone()})
	for s := range once.Accept {
		b.rulebook.Add(fa.Transition{From: s, On: fa.Epsilon, To: star.Start})
	}
	return Fragment{Start: once.Start, Accept: star.Accept}
}

// lowerQuestion adds a new start state with an epsilon branch into the
// body and a second epsilon branch directly to a dedicated accept state,
// skipping the body entirely. No fixed sentinel character is ever
// consulted, so behavior is correct on every input, including inputs
// that contain NUL.
func (b *Builder) lowerQuestion(n *ast.Node) Fragment {
	e := b.Lower(n.Child)
	s0 := b.states.Fresh()
	skip := b.states.Fresh()
	b.rulebook.Add(fa.Transition{From: s0, On: fa.Epsilon, To: e.Start})
	b.rulebook.Add(fa.Transition{From: s0, On: fa.Epsilon, To: skip})
	accept := e.Accept.Union(fa.NewStateSet(skip))
	return Fragment{Start: s0, Accept: accept}
}
