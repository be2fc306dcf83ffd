package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"

	"github.com/revelaction/toktab/storage/filesystem"
	"github.com/revelaction/toktab/storage/sqlite/zombiezen"
	"github.com/revelaction/toktab/token"
)

func exportLabelsCommand(opts ExportLabelsOptions, ui UI) error {
	src, err := zombiezen.NewLabelStore(opts.From)
	if err != nil {
		return err
	}
	defer src.Close()

	labels, err := src.ReadAll()
	if err != nil {
		return err
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(len(labels))
	bar.AppendCompleted()
	bar.PrependElapsed()

	out := make(map[string]token.POS, len(labels))
	for surface, p := range labels {
		out[surface] = p
		bar.Incr()
	}

	dst := filesystem.NewLabelStore(opts.To)
	if err := dst.WriteAll(out); err != nil {
		uiprogress.Stop()
		return fmt.Errorf("failed to write labels to %s: %w", opts.To, err)
	}
	uiprogress.Stop()

	fmt.Fprintf(ui.Out, "Successfully exported %d labels from %s to %s\n", len(out), opts.From, opts.To)
	return nil
}
