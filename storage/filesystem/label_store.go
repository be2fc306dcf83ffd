// Package filesystem stores POS labels in a JSON file.
package filesystem

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/revelaction/toktab/storage"
	"github.com/revelaction/toktab/token"
)

// LabelStore persists surface→POS labels as a single JSON object.
type LabelStore struct {
	path string
}

var _ storage.LabelRepository = (*LabelStore)(nil)

// NewLabelStore creates a filesystem label store at path. The file is
// created on the first write.
func NewLabelStore(path string) *LabelStore {
	return &LabelStore{path: path}
}

func (s *LabelStore) ReadAll() (map[string]token.POS, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]token.POS{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("label store: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("label store %s: %w", s.path, err)
	}

	labels := make(map[string]token.POS, len(raw))
	for surface, p := range raw {
		// unknown labels degrade to "other" rather than failing the run
		parsed, _ := token.ParsePOS(p)
		labels[surface] = parsed
	}

	return labels, nil
}

func (s *LabelStore) WriteAll(labels map[string]token.POS) error {
	data, err := json.MarshalIndent(labels, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("label store: %w", err)
	}

	return nil
}
