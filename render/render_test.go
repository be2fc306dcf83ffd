package render

import (
	"strings"
	"testing"

	"github.com/revelaction/toktab/token"
)

func record(text string, p token.POS, lemma string, kept bool) token.Record {
	return token.Record{
		Lemmatized: token.Lemmatized{
			Tagged: token.Tagged{Token: token.Token{Text: text}, Pos: p},
			Lemma:  lemma,
		},
		Kept: kept,
	}
}

func TestTable(t *testing.T) {
	records := []token.Record{
		record("The", token.Determiner, "the", false),
		record("cat", token.Noun, "cat", true),
	}

	got := string(Table(records))
	want := "token\tpos\tlemma\tkept\n" +
		"The\tdeterminer\tthe\tfalse\n" +
		"cat\tnoun\tcat\ttrue\n"

	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTableEmptyHasOnlyHeader(t *testing.T) {
	got := string(Table(nil))

	if got != Header+"\n" {
		t.Fatalf("expected only the header row, got %q", got)
	}
}

func TestKeptIsOrderedSubsequence(t *testing.T) {
	records := []token.Record{
		record("The", token.Determiner, "the", false),
		record("cat", token.Noun, "cat", true),
		record("sat", token.Noun, "sat", true),
		record(".", token.Punctuation, ".", false),
		record("mat", token.Noun, "mat", true),
	}

	got := string(Kept(records))
	if got != "cat\nsat\nmat\n" {
		t.Fatalf("expected cat/sat/mat, got %q", got)
	}

	// every kept line appears as a kept=true row of the table, in order
	table := string(Table(records))
	idx := 0
	for _, line := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
		rest := strings.Index(table[idx:], line+"\t")
		if rest < 0 {
			t.Fatalf("kept token %q not found in table after offset %d", line, idx)
		}
		idx += rest
	}
}

func TestKeptEmpty(t *testing.T) {
	if got := Kept(nil); len(got) != 0 {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestTSVRenderer(t *testing.T) {
	var sb strings.Builder
	r := NewTSVRenderer(&sb)

	if err := r.Render([]token.Record{record("cat", token.Noun, "cat", true)}); err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(sb.String(), Header) {
		t.Fatalf("expected the header first, got %q", sb.String())
	}
}
