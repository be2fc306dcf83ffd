// Package lemma maps surface forms to their base form.
package lemma

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// Dataset maps lowercased surface forms to lemmas. It is loaded once at
// startup and read-only thereafter.
type Dataset map[string]string

// LoadDataset reads a dataset file of lemma<TAB>surface_form lines and
// inverts it to key by surface form. Blank lines and lines starting
// with '#' are ignored. A line without a tab is skipped with a warning
// written to warn; loading continues.
func LoadDataset(path string, warn io.Writer) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lemma dataset: %w", err)
	}
	defer f.Close()

	ds := Dataset{}
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lem, surface, found := strings.Cut(line, "\t")
		if !found || lem == "" || surface == "" {
			if warn != nil {
				fmt.Fprintf(warn, "lemma dataset: line %d is not two tab-separated fields, skipped\n", lineNo)
			}
			continue
		}

		ds[strings.ToLower(strings.TrimSpace(surface))] = strings.ToLower(strings.TrimSpace(lem))
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lemma dataset: %w", err)
	}

	return ds, nil
}

// fallbackDict covers common forms when no dataset is given.
var fallbackDict = map[string]string{
	"helps": "help", "computers": "computer", "apps": "app",
	"results": "result", "students": "student", "sentences": "sentence",
	"words": "word", "parts": "part", "processing": "process",
	"systems": "system", "documents": "document", "questions": "question",
	"starts": "start", "assigns": "assign", "reduces": "reduce",
	"affects": "affect", "includes": "include", "meanings": "meaning",
	"running": "run",
}

// Lemmatizer resolves lemmas against an optional dataset. The zero value
// lemmatizes by identity.
type Lemmatizer struct {
	dataset Dataset

	// SuffixRules enables stripping of common English suffixes
	// (ies→y, ing, ed, plural s) when no dictionary entry matches.
	SuffixRules bool
}

// New returns a Lemmatizer over dataset, which may be nil.
func New(dataset Dataset) *Lemmatizer {
	return &Lemmatizer{dataset: dataset}
}

// Lemma returns the base form of a surface form. Lookup is
// case-insensitive; when nothing matches, the lowercased surface form
// is returned. It never fails.
func (l *Lemmatizer) Lemma(text string) string {
	key := strings.ToLower(text)

	if lem, ok := l.dataset[key]; ok {
		return lem
	}
	if lem, ok := fallbackDict[key]; ok {
		return lem
	}
	if l.SuffixRules && isAlpha(text) {
		return stripSuffix(key)
	}

	return key
}

func stripSuffix(key string) string {
	switch {
	case strings.HasSuffix(key, "ies") && len(key) > 3:
		return key[:len(key)-3] + "y"
	case strings.HasSuffix(key, "ing") && len(key) > 5:
		return key[:len(key)-3]
	case strings.HasSuffix(key, "ed") && len(key) > 4:
		return key[:len(key)-2]
	case strings.HasSuffix(key, "s") && len(key) > 3 && !strings.HasSuffix(key, "ss"):
		return key[:len(key)-1]
	}
	return key
}

func isAlpha(text string) bool {
	for _, r := range text {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return text != ""
}
