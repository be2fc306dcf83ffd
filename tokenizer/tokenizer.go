// Package tokenizer splits sentence text into word, number and
// punctuation tokens.
package tokenizer

import (
	"regexp"

	"github.com/revelaction/toktab/token"
)

// A token is a word (internal apostrophe allowed), a number (optional
// decimal part), or any other single non-space rune.
var tokenRe = regexp.MustCompile(`[\pL]+(?:'[\pL]+)?|\pN+(?:\.\pN+)?|[^\s]`)

// Scanner yields the tokens of a text in order, one Scan call at a
// time. A new Scanner over the same text restarts the sequence.
type Scanner struct {
	text  string
	pos   int
	index int
	tok   token.Token
}

func NewScanner(text string) *Scanner {
	return &Scanner{text: text}
}

// Scan advances to the next token. It returns false when the text is
// exhausted. Any string is valid input; there are no error conditions.
func (s *Scanner) Scan() bool {
	loc := tokenRe.FindStringIndex(s.text[s.pos:])
	if loc == nil {
		return false
	}

	s.tok = token.Token{
		Index: s.index,
		Idx:   s.pos + loc[0],
		Text:  s.text[s.pos+loc[0] : s.pos+loc[1]],
	}
	s.pos += loc[1]
	s.index++
	return true
}

// Token returns the token found by the last call to Scan.
func (s *Scanner) Token() token.Token {
	return s.tok
}

// Tokenize returns all tokens of text in order.
func Tokenize(text string) []token.Token {
	var tokens []token.Token
	sc := NewScanner(text)
	for sc.Scan() {
		tokens = append(tokens, sc.Token())
	}
	return tokens
}
