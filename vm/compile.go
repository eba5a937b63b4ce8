package vm

import "github.com/tkyk0317/toy-regex/ast"

// Compiler lowers an ast.Node into a Program, back-patching jump and
// split targets with absolute instruction indices once the size of the
// emitted region is known.
type Compiler struct {
	prog Program
}

// Compile lowers n into a complete, runnable Program terminated by
// OpMatch.
func Compile(n *ast.Node) Program {
	c := &Compiler{}
	c.compile(n)
	c.emit(Instruction{Op: OpMatch})
	return c.prog
}

func (c *Compiler) pc() int { return len(c.prog) }

func (c *Compiler) emit(i Instruction) int {
	c.prog = append(c.prog, i)
	return c.pc() - 1
}

func (c *Compiler) compile(n *ast.Node) {
	switch n.Kind {
	case ast.Literal:
		c.emit(Instruction{Op: OpChar, Ch: n.Ch})
	case ast.AnyChar:
		c.emit(Instruction{Op: OpAnyChar})
	case ast.Concat:
		c.compile(n.Left)
		c.compile(n.Right)
	case ast.Alt:
		c.compileAlt(n)
	case ast.Star:
		c.compileStar(n)
	case ast.Plus:
		c.compilePlus(n)
	case ast.Question:
		c.compileQuestion(n)
	}
}

// compileAlt: split L, then L, jmp end, then R; L/R_start set once known.
//
//	split Lstart, Rstart
//	Lstart: <L>
//	        jmp end
//	Rstart: <R>
//	end:
func (c *Compiler) compileAlt(n *ast.Node) {
	splitPC := c.emit(Instruction{Op: OpSplit})
	lStart := c.pc()
	c.compile(n.Left)
	jmpPC := c.emit(Instruction{Op: OpJmp})
	rStart := c.pc()
	c.compile(n.Right)
	end := c.pc()

	c.prog[splitPC].X, c.prog[splitPC].Y = lStart, rStart
	c.prog[jmpPC].X = end
}

// compileStar:
//
//	L0: split L1, L2
//	L1: <E>
//	    jmp L0
//	L2:
func (c *Compiler) compileStar(n *ast.Node) {
	l0 := c.pc()
	splitPC := c.emit(Instruction{Op: OpSplit})
	l1 := c.pc()
	c.compile(n.Child)
	c.emit(Instruction{Op: OpJmp, X: l0})
	l2 := c.pc()

	c.prog[splitPC].X, c.prog[splitPC].Y = l1, l2
}

// compilePlus:
//
//	L0: <E>
//	    split L0, next
func (c *Compiler) compilePlus(n *ast.Node) {
	l0 := c.pc()
	c.compile(n.Child)
	splitPC := c.emit(Instruction{Op: OpSplit})
	next := c.pc()

	c.prog[splitPC].X, c.prog[splitPC].Y = l0, next
}

// compileQuestion:
//
//	split Estart, end
//	Estart: <E>
//	end:
func (c *Compiler) compileQuestion(n *ast.Node) {
	splitPC := c.emit(Instruction{Op: OpSplit})
	eStart := c.pc()
	c.compile(n.Child)
	end := c.pc()

	c.prog[splitPC].X, c.prog[splitPC].Y = eStart, end
}
