package main

import (
	"fmt"
	"os"

	"github.com/revelaction/toktab/config"
	"github.com/revelaction/toktab/lemma"
	"github.com/revelaction/toktab/pipeline"
	"github.com/revelaction/toktab/pos"
	"github.com/revelaction/toktab/render"
	"github.com/revelaction/toktab/stopword"
	"github.com/revelaction/toktab/token"
)

// runPipelineCommand runs the annotation pipeline once: read input,
// annotate, write the table and the kept tokens. Both outputs are fully
// assembled before anything is written, so a failure leaves no partial
// files behind.
func runPipelineCommand(opts RunOptions, ui UI) error {

	cfg := &config.Config{}
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// flags take precedence over config file values
	if opts.Pos == "" {
		opts.Pos = cfg.Pos
	}
	if opts.Pos == "" {
		opts.Pos = "rules"
	}
	if opts.LemmaDataset == "" {
		opts.LemmaDataset = cfg.LemmaDataset
	}
	if opts.ManualStore == "" {
		opts.ManualStore = cfg.ManualStore
	}

	text, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var dataset lemma.Dataset
	if opts.LemmaDataset != "" {
		dataset, err = lemma.LoadDataset(opts.LemmaDataset, ui.Err)
		if err != nil {
			return err
		}
	}
	lemmatizer := lemma.New(dataset)
	lemmatizer.SuffixRules = cfg.SuffixRules

	stopwords := stopword.Default()
	if len(cfg.Stopwords) > 0 {
		stopwords = stopword.New(cfg.Stopwords)
	}

	tagger := pos.NewRuleTagger()
	if opts.Pos == "manual" {
		labels := map[string]token.POS{}
		if opts.ManualStore != "" {
			repo, err := newLabelRepository(opts.ManualStore)
			if err != nil {
				return err
			}
			labels, err = repo.ReadAll()
			closeRepository(repo)
			if err != nil {
				return err
			}
		}
		tagger = pos.NewManualTagger(labels)
	}

	p := pipeline.New(pipeline.Config{
		Tagger:     tagger,
		Lemmatizer: lemmatizer,
		Stopwords:  stopwords,
	})
	records := p.Run(string(text))

	var table []byte
	switch opts.Format {
	case "json":
		table, err = render.JSON(records)
		if err != nil {
			return err
		}
	default:
		table = render.Table(records)
	}

	if err := os.WriteFile(opts.Output, table, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	kept := render.Kept(records)
	if opts.Kept == "" {
		_, err := ui.Out.Write(kept)
		return err
	}

	if err := os.WriteFile(opts.Kept, kept, 0644); err != nil {
		return fmt.Errorf("write kept tokens: %w", err)
	}

	return nil
}
