// Package segment splits raw text into sentences.
package segment

import (
	"regexp"
	"strings"
	"unicode"
)

var spaceRe = regexp.MustCompile(`\s+`)

// Sentences normalizes whitespace and splits text into sentences. A
// sentence ends at '.', '!' or '?' followed by whitespace and the start
// of a new sentence (capital letter, digit or quote). Empty text yields
// no sentences.
func Sentences(text string) []string {
	text = spaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	if text == "" {
		return nil
	}

	runes := []rune(text)
	var out []string
	start := 0
	for i := 0; i < len(runes)-2; i++ {
		if !isTerminator(runes[i]) {
			continue
		}
		if runes[i+1] != ' ' {
			continue
		}
		if !isSentenceStart(runes[i+2]) {
			continue
		}
		out = append(out, string(runes[start:i+1]))
		start = i + 2
	}

	return append(out, string(runes[start:]))
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isSentenceStart(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsDigit(r) || r == '"' || r == '\''
}
