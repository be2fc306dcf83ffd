// Package pipeline runs the fixed annotation chain: segment, tokenize,
// tag, lemmatize, filter.
package pipeline

import (
	"github.com/revelaction/toktab/lemma"
	"github.com/revelaction/toktab/pos"
	"github.com/revelaction/toktab/segment"
	"github.com/revelaction/toktab/stopword"
	"github.com/revelaction/toktab/token"
	"github.com/revelaction/toktab/tokenizer"
)

// Config holds the stage configuration. It is built once at startup and
// not modified afterwards.
type Config struct {
	Tagger     *pos.Tagger
	Lemmatizer *lemma.Lemmatizer
	Stopwords  stopword.Set
}

type Pipeline struct {
	cfg Config
}

// New returns a Pipeline. Nil config fields get defaults: rule tagger,
// identity lemmatizer, built-in stopword set.
func New(cfg Config) *Pipeline {
	if cfg.Tagger == nil {
		cfg.Tagger = pos.NewRuleTagger()
	}
	if cfg.Lemmatizer == nil {
		cfg.Lemmatizer = lemma.New(nil)
	}
	if cfg.Stopwords == nil {
		cfg.Stopwords = stopword.Default()
	}
	return &Pipeline{cfg: cfg}
}

// Run annotates text and returns one Record per token, in input order.
// No token is ever dropped from the record stream; filtering only
// clears the Kept flag.
func (p *Pipeline) Run(text string) []token.Record {
	var records []token.Record

	index := 0
	for sentId, sentence := range segment.Sentences(text) {
		sc := tokenizer.NewScanner(sentence)
		for sc.Scan() {
			tok := sc.Token()
			tok.Index = index
			tok.SentenceId = sentId
			index++

			tagged := p.cfg.Tagger.Tag(tok)
			lemmatized := token.Lemmatized{
				Tagged: tagged,
				Lemma:  p.cfg.Lemmatizer.Lemma(tok.Text),
			}

			records = append(records, token.Record{
				Lemmatized: lemmatized,
				Kept:       p.cfg.Stopwords.Keep(lemmatized),
			})
		}
	}

	return records
}
