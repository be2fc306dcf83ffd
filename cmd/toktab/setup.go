package main

import (
	"io"
	"path/filepath"

	"github.com/revelaction/toktab/storage"
	"github.com/revelaction/toktab/storage/filesystem"
	"github.com/revelaction/toktab/storage/sqlite/zombiezen"
)

// newLabelRepository selects the label store backend by path: a .json
// file is a filesystem store, anything else a SQLite database. Callers
// must close the returned repository if it implements io.Closer.
func newLabelRepository(path string) (storage.LabelRepository, error) {
	if filepath.Ext(path) == ".json" {
		return filesystem.NewLabelStore(path), nil
	}

	return zombiezen.NewLabelStore(path)
}

func closeRepository(repo storage.LabelRepository) {
	if c, ok := repo.(io.Closer); ok {
		_ = c.Close()
	}
}
