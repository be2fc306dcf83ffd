// Package storage defines repositories for manually assigned POS labels.
package storage

import (
	"github.com/revelaction/toktab/token"
)

// LabelReader defines read operations for label storage.
type LabelReader interface {
	// ReadAll returns all stored labels keyed by lowercased surface
	// form. A store that does not exist yet reads as empty.
	ReadAll() (map[string]token.POS, error)
}

// LabelWriter defines write operations for label storage.
type LabelWriter interface {
	// WriteAll persists the full label set.
	WriteAll(labels map[string]token.POS) error
}

// LabelRepository combines read and write operations.
type LabelRepository interface {
	LabelReader
	LabelWriter
}
