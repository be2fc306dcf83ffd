package main

import (
	"fmt"
	"os"

	"github.com/revelaction/toktab/label"
	"github.com/revelaction/toktab/segment"
	"github.com/revelaction/toktab/token"
	"github.com/revelaction/toktab/tokenizer"
)

func labelCommand(opts LabelOptions, ui UI) error {

	text, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var tokens []token.Token
	for sentId, sentence := range segment.Sentences(string(text)) {
		sc := tokenizer.NewScanner(sentence)
		for sc.Scan() {
			tok := sc.Token()
			tok.Index = len(tokens)
			tok.SentenceId = sentId
			tokens = append(tokens, tok)
		}
	}

	repo, err := newLabelRepository(opts.ManualStore)
	if err != nil {
		return err
	}
	defer closeRepository(repo)

	hdl := label.NewHandler(repo)
	return hdl.Run(tokens)
}
