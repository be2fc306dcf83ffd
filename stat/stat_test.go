package stat

import (
	"testing"

	"github.com/revelaction/toktab/token"
)

func record(sentId int, kept bool) token.Record {
	return token.Record{
		Lemmatized: token.Lemmatized{
			Tagged: token.Tagged{Token: token.Token{SentenceId: sentId}},
		},
		Kept: kept,
	}
}

func TestAggregate(t *testing.T) {
	hdl := NewHandler()
	hdl.Aggregate([]token.Record{
		record(0, true),
		record(0, false),
		record(0, true),
		record(1, false),
	})

	stats := hdl.Get()
	if stats.NumSentences != 2 {
		t.Errorf("expected 2 sentences, got %d", stats.NumSentences)
	}
	if stats.NumTokens != 4 {
		t.Errorf("expected 4 tokens, got %d", stats.NumTokens)
	}
	if stats.NumKept != 2 {
		t.Errorf("expected 2 kept, got %d", stats.NumKept)
	}
	if stats.TokensPerSentenceMean != 2 {
		t.Errorf("expected mean 2, got %d", stats.TokensPerSentenceMean)
	}
	if stats.TokensPerSentenceDis[3] != 1 || stats.TokensPerSentenceDis[1] != 1 {
		t.Errorf("unexpected distribution: %v", stats.TokensPerSentenceDis)
	}
}

func TestAggregateEmpty(t *testing.T) {
	hdl := NewHandler()
	hdl.Aggregate(nil)

	stats := hdl.Get()
	if stats.NumSentences != 0 || stats.NumTokens != 0 || stats.TokensPerSentenceMean != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}
