package main

import (
	"fmt"
	"sort"

	"github.com/gosuri/uiprogress"

	"github.com/revelaction/toktab/storage/filesystem"
	"github.com/revelaction/toktab/storage/sqlite/zombiezen"
)

func importLabelsCommand(opts ImportLabelsOptions, ui UI) error {
	src := filesystem.NewLabelStore(opts.From)

	labels, err := src.ReadAll()
	if err != nil {
		return err
	}

	dst, err := zombiezen.NewLabelStore(opts.To)
	if err != nil {
		return err
	}
	defer dst.Close()

	fmt.Fprintf(ui.Out, "Reading labels from %s...\n", opts.From)

	surfaces := make([]string, 0, len(labels))
	for surface := range labels {
		surfaces = append(surfaces, surface)
	}
	sort.Strings(surfaces)

	uiprogress.Start()
	bar := uiprogress.AddBar(len(surfaces))
	bar.AppendCompleted()
	bar.PrependElapsed()

	count := 0
	for _, surface := range surfaces {
		if err := dst.Write(surface, labels[surface]); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to write label %s: %w", surface, err)
		}
		count++
		bar.Incr()
	}
	uiprogress.Stop()

	fmt.Fprintf(ui.Out, "Successfully imported %d labels from %s to %s\n", count, opts.From, opts.To)
	return nil
}
