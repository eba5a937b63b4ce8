package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkyk0317/toy-regex/ast"
	"github.com/tkyk0317/toy-regex/parser"
)

func TestParseShapes(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{"literal", "a", `Literal('a')`},
		{"dot", ".", "AnyChar"},
		{"concat", "ab", `Concat(Literal('a'), Literal('b'))`},
		{"alt right-associative", "a|b|c", `Alt(Literal('a'), Alt(Literal('b'), Literal('c')))`},
		{"star binds to preceding factor", "ab*", `Concat(Literal('a'), Star(Literal('b')))`},
		{"plus", "a+", `Plus(Literal('a'))`},
		{"question", "a?", `Question(Literal('a'))`},
		{"group resolves quantifier target", "(ab)*", `Star(Concat(Literal('a'), Literal('b')))`},
		{"alt inside group then concat", "(a|b)c", `Concat(Alt(Literal('a'), Literal('b')), Literal('c'))`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := parser.Parse(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"double star", "a**"},
		{"leading star", "*a"},
		{"leading plus", "+a"},
		{"leading question", "?a"},
		{"unmatched open paren", "(ab"},
		{"unmatched close paren", "ab)"},
		{"empty group", "()"},
		{"trailing alt", "a|"},
		{"invalid scanner token", "a$b"},
		{"empty pattern", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.pattern)
			require.Error(t, err)
		})
	}
}

func TestParseIsSinglePass(t *testing.T) {
	// a deeply nested but well-formed pattern should parse without error,
	// confirming the parser's index only ever advances.
	n, err := parser.Parse("((((a))))*")
	require.NoError(t, err)
	assert.Equal(t, ast.Star, n.Kind)
}
