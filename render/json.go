package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/toktab/token"
)

// JSONRenderer writes annotation records as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the records as a JSON array.
func (r *JSONRenderer) Render(records []token.Record) error {
	return json.NewEncoder(r.W).Encode(records)
}

// JSON returns the records as an indented JSON array, fully assembled
// in memory.
func JSON(records []token.Record) ([]byte, error) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
