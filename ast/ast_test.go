package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tkyk0317/toy-regex/ast"
)

func TestNullable(t *testing.T) {
	lit := ast.NewLiteral('a')
	dot := ast.NewAnyChar()

	tests := []struct {
		name string
		node *ast.Node
		want bool
	}{
		{"literal", lit, false},
		{"dot", dot, false},
		{"star of literal", ast.NewStar(lit), true},
		{"question of literal", ast.NewQuestion(lit), true},
		{"plus of literal", ast.NewPlus(lit), false},
		{"plus of star", ast.NewPlus(ast.NewStar(lit)), true},
		{"concat of two literals", ast.NewConcat(lit, lit), false},
		{"concat with a question branch", ast.NewConcat(ast.NewQuestion(lit), ast.NewQuestion(lit)), true},
		{"concat with one non-nullable branch", ast.NewConcat(ast.NewQuestion(lit), lit), false},
		{"alt of literal and question", ast.NewAlt(lit, ast.NewQuestion(lit)), true},
		{"alt of literal and dot", ast.NewAlt(lit, dot), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.Nullable())
		})
	}
}

func TestCloneIsStructurallyEqualButIndependent(t *testing.T) {
	original := ast.NewConcat(ast.NewLiteral('a'), ast.NewStar(ast.NewLiteral('b')))
	clone := original.Clone()

	assert.Equal(t, original.String(), clone.String())
	assert.NotSame(t, original, clone)
	assert.NotSame(t, original.Left, clone.Left)
	assert.NotSame(t, original.Right, clone.Right)
	assert.NotSame(t, original.Right.Child, clone.Right.Child)
}

func TestCloneNil(t *testing.T) {
	var n *ast.Node
	assert.Nil(t, n.Clone())
}
