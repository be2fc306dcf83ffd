// Package stat aggregates counts over annotation records.
package stat

import (
	"github.com/revelaction/toktab/token"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences          int
	NumTokens             int
	NumKept               int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

func (h *Handler) Aggregate(records []token.Record) {
	perSentence := map[int]int{}
	for _, rec := range records {
		h.stats.NumTokens++
		if rec.Kept {
			h.stats.NumKept++
		}
		perSentence[rec.SentenceId]++
	}

	h.stats.NumSentences = len(perSentence)
	for _, n := range perSentence {
		h.stats.TokensPerSentenceDis[n]++
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}
