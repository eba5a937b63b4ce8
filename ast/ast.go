// Package ast defines the abstract syntax tree produced by package parser
// and consumed by the nfa and vm compilers.
package ast

import "fmt"

// Kind identifies the variant of a Node.
type Kind uint8

const (
	// Literal matches exactly one rune.
	Literal Kind = iota
	// AnyChar matches any single input rune (the '.' wildcard).
	AnyChar
	// Concat matches Left followed by Right.
	Concat
	// Alt matches Left or Right.
	Alt
	// Star matches zero or more repetitions of Child.
	Star
	// Plus matches one or more repetitions of Child.
	Plus
	// Question matches zero or one repetition of Child.
	Question
)

// Node is an immutable AST node. Exactly the fields relevant to Kind are
// populated; the rest are left at their zero value.
type Node struct {
	Kind  Kind
	Ch    rune  // valid when Kind == Literal
	Left  *Node // valid when Kind == Concat or Alt
	Right *Node // valid when Kind == Concat or Alt
	Child *Node // valid when Kind == Star, Plus, or Question
}

// NewLiteral builds a Literal node matching c.
func NewLiteral(c rune) *Node { return &Node{Kind: Literal, Ch: c} }

// NewAnyChar builds an AnyChar node.
func NewAnyChar() *Node { return &Node{Kind: AnyChar} }

// NewConcat builds a Concat node over l then r.
func NewConcat(l, r *Node) *Node { return &Node{Kind: Concat, Left: l, Right: r} }

// NewAlt builds an Alt node choosing between l and r.
func NewAlt(l, r *Node) *Node { return &Node{Kind: Alt, Left: l, Right: r} }

// NewStar builds a Star node over child.
func NewStar(child *Node) *Node { return &Node{Kind: Star, Child: child} }

// NewPlus builds a Plus node over child.
func NewPlus(child *Node) *Node { return &Node{Kind: Plus, Child: child} }

// NewQuestion builds a Question node over child.
func NewQuestion(child *Node) *Node { return &Node{Kind: Question, Child: child} }

// Clone returns a structural deep copy of n, sharing no nodes with the
// original. The NFA lowering for Plus relies on this: it re-lowers the
// repeated body from an independent clone so the "must-match-once" and
// "may-match-more" copies never alias the same states.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	return &Node{
		Kind:  n.Kind,
		Ch:    n.Ch,
		Left:  n.Left.Clone(),
		Right: n.Right.Clone(),
		Child: n.Child.Clone(),
	}
}

// String renders n for debugging, e.g. Concat(Literal('a'), Star(AnyChar)).
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Kind {
	case Literal:
		return fmt.Sprintf("Literal(%q)", n.Ch)
	case AnyChar:
		return "AnyChar"
	case Concat:
		return fmt.Sprintf("Concat(%s, %s)", n.Left, n.Right)
	case Alt:
		return fmt.Sprintf("Alt(%s, %s)", n.Left, n.Right)
	case Star:
		return fmt.Sprintf("Star(%s)", n.Child)
	case Plus:
		return fmt.Sprintf("Plus(%s)", n.Child)
	case Question:
		return fmt.Sprintf("Question(%s)", n.Child)
	default:
		return fmt.Sprintf("Node(kind=%d)", n.Kind)
	}
}

// Nullable reports whether n's language contains the empty string. This
// decides, without running any automaton, whether exec("") should match:
// no unquantified literal or '.' may appear outside a '?' or '*' branch.
func (n *Node) Nullable() bool {
	switch n.Kind {
	case Literal, AnyChar:
		return false
	case Concat:
		return n.Left.Nullable() && n.Right.Nullable()
	case Alt:
		return n.Left.Nullable() || n.Right.Nullable()
	case Star, Question:
		return true
	case Plus:
		return n.Child.Nullable()
	default:
		return false
	}
}
