package token

// POS is a coarse part-of-speech label from a small closed set.
type POS string

const (
	Noun        POS = "noun"
	Verb        POS = "verb"
	Adjective   POS = "adjective"
	Adverb      POS = "adverb"
	Pronoun     POS = "pronoun"
	Determiner  POS = "determiner"
	Adposition  POS = "adposition"
	Conjunction POS = "conjunction"
	Numeral     POS = "numeral"
	Punctuation POS = "punctuation"
	Other       POS = "other"
)

// Labels returns all valid POS labels in display order.
func Labels() []POS {
	return []POS{
		Noun, Verb, Adjective, Adverb, Pronoun, Determiner,
		Adposition, Conjunction, Numeral, Punctuation, Other,
	}
}

// ParsePOS returns the label matching s, and whether s is a valid label.
func ParsePOS(s string) (POS, bool) {
	for _, p := range Labels() {
		if string(p) == s {
			return p, true
		}
	}
	return Other, false
}

// Token is a word or punctuation unit of the input text.
// Immutable once produced by the tokenizer.
type Token struct {
	// The index of the token in the whole input, starting at 0.
	Index int `json:"index"`

	// The sentence the token belongs to, starting at 0.
	SentenceId int `json:"sent"`

	// The byte offset of the start of the token in its sentence.
	Idx int `json:"idx"`

	// The unmodified surface form.
	Text string `json:"text"`
}

// Tagged is a Token plus its POS label.
type Tagged struct {
	Token
	Pos POS `json:"pos"`
}

// Lemmatized is a Tagged token plus its lemma.
type Lemmatized struct {
	Tagged
	Lemma string `json:"lemma"`
}

// Record is the unit written to the output table. Kept is false for
// stopwords and punctuation; the record itself is never dropped.
type Record struct {
	Lemmatized
	Kept bool `json:"kept"`
}
