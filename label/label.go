// Package label implements interactive POS labeling of tokens.
package label

import (
	"fmt"
	"strings"

	prompt "github.com/c-bata/go-prompt"

	"github.com/revelaction/toktab/pos"
	"github.com/revelaction/toktab/storage"
	"github.com/revelaction/toktab/token"
)

type Handler struct {
	Store storage.LabelRepository
}

func NewHandler(store storage.LabelRepository) *Handler {
	return &Handler{Store: store}
}

// Run walks the tokens in order, prompting for a POS label for each
// surface form not yet in the store. Punctuation tokens are labeled
// automatically. "skip" leaves a token unlabeled, "quit" stops; labels
// assigned so far are persisted in both cases.
func (h *Handler) Run(tokens []token.Token) error {

	labels, err := h.Store.ReadAll()
	if err != nil {
		return err
	}

	fmt.Println("🔖 Label tokens: choose a POS, or skip, 🔧 quit")

	assigned := 0
	for _, tok := range tokens {
		key := strings.ToLower(tok.Text)
		if _, ok := labels[key]; ok {
			continue
		}

		if pos.IsPunctuation(tok.Text) {
			labels[key] = token.Punctuation
			assigned++
			continue
		}

		in := prompt.Input(fmt.Sprintf("      %q ", tok.Text), completer,
			prompt.OptionTitle("toktab label"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(12),
		)

		in = strings.TrimSpace(in)
		if in == "quit" {
			break
		}
		if in == "skip" || in == "" {
			continue
		}

		// anything unparseable resolves to "other"
		p, _ := token.ParsePOS(in)
		labels[key] = p
		assigned++
	}

	if err := h.Store.WriteAll(labels); err != nil {
		return err
	}

	fmt.Printf("✍  %d labels assigned, %d stored in total\n", assigned, len(labels))
	return nil
}

func completer(d prompt.Document) []prompt.Suggest {
	suggestions := make([]prompt.Suggest, 0, len(token.Labels())+2)
	for _, p := range token.Labels() {
		suggestions = append(suggestions, prompt.Suggest{Text: string(p)})
	}
	suggestions = append(suggestions,
		prompt.Suggest{Text: "skip", Description: "leave this token unlabeled"},
		prompt.Suggest{Text: "quit", Description: "stop labeling and save"},
	)

	return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
}
