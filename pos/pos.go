// Package pos assigns part-of-speech labels to tokens.
package pos

import (
	"strings"
	"unicode"

	"github.com/revelaction/toktab/token"
)

// Mode selects the tagging strategy. It is fixed at configuration time.
type Mode int

const (
	// Rules tags by token shape and closed-class word lists.
	Rules Mode = iota

	// Manual consults a stored surface→POS mapping and falls back to
	// the rule result for unmapped tokens.
	Manual
)

// Closed-class word lists, lowercased.
var (
	determiners  = set("a", "an", "the", "this", "that", "these", "those")
	adpositions  = set("in", "on", "at", "by", "with", "for", "to", "of", "from", "as")
	conjunctions = set("and", "or", "but")
	pronouns     = set("i", "me", "my", "you", "your", "he", "him", "her",
		"she", "it", "its", "we", "our", "they", "them", "their")
)

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// Tagger labels tokens. The zero value is a rule tagger.
type Tagger struct {
	mode   Mode
	labels map[string]token.POS
}

// NewRuleTagger returns a tagger that uses only the deterministic rules.
func NewRuleTagger() *Tagger {
	return &Tagger{mode: Rules}
}

// NewManualTagger returns a tagger backed by labels, keyed by lowercased
// surface form. Tokens not in labels get the rule-based result.
func NewManualTagger(labels map[string]token.POS) *Tagger {
	return &Tagger{mode: Manual, labels: labels}
}

// Mode returns the tagging strategy of the tagger.
func (t *Tagger) Mode() Mode {
	return t.mode
}

// Tag labels a single token. It never fails; unmatched cases resolve to
// token.Other.
func (t *Tagger) Tag(tok token.Token) token.Tagged {
	if t.mode == Manual {
		if p, ok := t.labels[strings.ToLower(tok.Text)]; ok {
			return token.Tagged{Token: tok, Pos: p}
		}
	}
	return token.Tagged{Token: tok, Pos: Rule(tok.Text)}
}

// Rule returns the rule-based POS label for a surface form.
func Rule(text string) token.POS {
	lower := strings.ToLower(text)

	switch {
	case IsPunctuation(text):
		return token.Punctuation
	case isNumeric(text):
		return token.Numeral
	}

	if _, ok := determiners[lower]; ok {
		return token.Determiner
	}
	if _, ok := adpositions[lower]; ok {
		return token.Adposition
	}
	if _, ok := conjunctions[lower]; ok {
		return token.Conjunction
	}
	if _, ok := pronouns[lower]; ok {
		return token.Pronoun
	}

	switch {
	case strings.HasSuffix(lower, "ly"):
		return token.Adverb
	case len(lower) > 3 && hasAnySuffix(lower, "ous", "ful", "able", "ible", "al", "ive", "ic", "y"):
		return token.Adjective
	case hasAnySuffix(lower, "ing", "ed"):
		return token.Verb
	case isWord(text):
		return token.Noun
	}

	return token.Other
}

// IsPunctuation reports whether text is a pure punctuation/symbol token.
func IsPunctuation(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func isNumeric(text string) bool {
	dot := false
	for i, r := range text {
		if r == '.' {
			if dot || i == 0 || i == len(text)-1 {
				return false
			}
			dot = true
			continue
		}
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return text != ""
}

// isWord reports whether text is letters with at most one internal
// apostrophe.
func isWord(text string) bool {
	apostrophes := 0
	for i, r := range text {
		if r == '\'' {
			if apostrophes > 0 || i == 0 || i == len(text)-1 {
				return false
			}
			apostrophes++
			continue
		}
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return text != ""
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}
