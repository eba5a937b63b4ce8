// Package vm compiles an ast.Node into a linear bytecode stream and
// provides two interchangeable interpreters that execute it with
// Thompson-style nondeterminism: a work-list interpreter and a recursive
// one. Both advance a frontier of (pc, sp) cursors over a simple,
// non-capturing, non-byte-class instruction set.
package vm

import "fmt"

// Op identifies the variant of an Instruction.
type Op uint8

const (
	// OpChar consumes one input rune if it equals Ch.
	OpChar Op = iota
	// OpAnyChar consumes one input rune, unconditionally.
	OpAnyChar
	// OpJmp transfers control to X unconditionally.
	OpJmp
	// OpSplit forks execution: one thread continues at X, another at Y.
	OpSplit
	// OpMatch accepts if the whole input has been consumed.
	OpMatch
)

// String names the Op, for disassembly and debugging.
func (o Op) String() string {
	switch o {
	case OpChar:
		return "char"
	case OpAnyChar:
		return "any"
	case OpJmp:
		return "jmp"
	case OpSplit:
		return "split"
	case OpMatch:
		return "match"
	default:
		return fmt.Sprintf("op(%d)", o)
	}
}

// Instruction is one entry of a Program, addressed by its position (pc).
type Instruction struct {
	Op Op
	Ch rune // valid when Op == OpChar
	X  int  // jmp target (OpJmp), or first split branch (OpSplit)
	Y  int  // second split branch (OpSplit)
}

// Program is an ordered, immutable instruction stream compiled from one
// pattern. All X/Y operands are absolute indices into the same slice.
type Program []Instruction

// String disassembles p, one instruction per line, for debugging.
func (p Program) String() string {
	s := ""
	for pc, instr := range p {
		switch instr.Op {
		case OpChar:
			s += fmt.Sprintf("%4d  char %q\n", pc, instr.Ch)
		case OpJmp:
			s += fmt.Sprintf("%4d  jmp %d\n", pc, instr.X)
		case OpSplit:
			s += fmt.Sprintf("%4d  split %d, %d\n", pc, instr.X, instr.Y)
		default:
			s += fmt.Sprintf("%4d  %s\n", pc, instr.Op)
		}
	}
	return s
}
