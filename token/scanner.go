package token

import (
	"fmt"
	"unicode"
)

// ScanError reports that the scanner encountered a character that has no
// token mapping. It is never retried; the caller surfaces it as an
// InvalidPattern failure.
type ScanError struct {
	Ch  rune
	Pos int
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	return fmt.Sprintf("invalid token %q at position %d", e.Ch, e.Pos)
}

var metaTokens = map[rune]Kind{
	'*': Star,
	'+': Plus,
	'?': Question,
	'|': Alt,
	'(': LParen,
	')': RParen,
}

// Scan turns a pattern string into a sequence of tokens.
//
// Every alphanumeric rune becomes a Char token, the metacharacters
// `* + ? | ( )` become their respective tokens, '.' becomes Dot, and
// newlines are silently dropped. Any other rune is a *ScanError. The
// scanner is non-restartable: it consumes the whole pattern in one pass
// and the resulting slice is never longer than the input.
func Scan(pattern string) ([]Token, error) {
	tokens := make([]Token, 0, len(pattern))
	for i, c := range pattern {
		switch {
		case c == '\n':
			continue
		case c == '.':
			tokens = append(tokens, Token{Kind: Dot})
		case unicode.IsLetter(c) || unicode.IsDigit(c):
			tokens = append(tokens, NewChar(c))
		default:
			if kind, ok := metaTokens[c]; ok {
				tokens = append(tokens, Token{Kind: kind})
				continue
			}
			return nil, &ScanError{Ch: c, Pos: i}
		}
	}
	return tokens, nil
}
