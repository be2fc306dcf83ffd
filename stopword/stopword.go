// Package stopword decides which tokens are kept in the final output.
package stopword

import (
	"strings"

	"github.com/revelaction/toktab/token"
)

// Set holds lowercased stopwords.
type Set map[string]struct{}

// New builds a Set from words. A caller-supplied set fully replaces the
// default one.
func New(words []string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// Default returns the built-in set of common English function words.
func Default() Set {
	return New([]string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else",
		"for", "to", "of", "in", "on", "at", "by", "with", "as",
		"is", "are", "was", "were", "be", "been", "being",
		"this", "that", "these", "those", "it", "its", "they", "their",
		"we", "our", "you", "your", "i", "me", "my", "he", "she",
		"him", "her", "them", "from", "can", "could", "may", "might",
		"will", "would", "should", "do", "does", "did", "not",
		"so", "many", "often", "each", "after", "before", "still",
	})
}

// Keep reports whether a lemmatized token survives filtering.
// Punctuation is always dropped; otherwise a token is dropped when its
// lemma or lowercased surface form is in the set.
func (s Set) Keep(lt token.Lemmatized) bool {
	if lt.Pos == token.Punctuation {
		return false
	}
	if _, ok := s[lt.Lemma]; ok {
		return false
	}
	if _, ok := s[strings.ToLower(lt.Text)]; ok {
		return false
	}
	return true
}
