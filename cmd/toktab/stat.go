package main

import (
	"fmt"
	"os"

	"github.com/revelaction/toktab/pipeline"
	"github.com/revelaction/toktab/stat"
)

func statCommand(input string, ui UI) error {

	text, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	records := pipeline.New(pipeline.Config{}).Run(string(text))

	hdl := stat.NewHandler()
	hdl.Aggregate(records)

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Num sentences %d, num tokens %d, kept %d, tokens per sentence %d\n",
		stats.NumSentences, stats.NumTokens, stats.NumKept, stats.TokensPerSentenceMean)

	return nil
}
