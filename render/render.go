// Package render assembles per-token records into output documents.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/revelaction/toktab/token"
)

const (
	// Header is the first row of the annotation table.
	Header = "token\tpos\tlemma\tkept"

	DefaultFormat = "tsv"
)

// SupportedFormats lists the table output formats.
func SupportedFormats() []string {
	return []string{"tsv", "json"}
}

// Renderer writes an annotation result to its destination.
type Renderer interface {
	Render(records []token.Record) error
}

// Table returns the full annotation table: the header plus one
// tab-separated row per record, in input order. The result is fully
// assembled in memory so callers can write it in a single operation.
func Table(records []token.Record) []byte {
	var buf bytes.Buffer
	buf.WriteString(Header)
	buf.WriteByte('\n')
	for _, rec := range records {
		buf.WriteString(rec.Text)
		buf.WriteByte('\t')
		buf.WriteString(string(rec.Pos))
		buf.WriteByte('\t')
		buf.WriteString(rec.Lemma)
		buf.WriteByte('\t')
		buf.WriteString(strconv.FormatBool(rec.Kept))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Kept returns the surface forms of the kept records, one per line, an
// order-preserving subsequence of the table rows.
func Kept(records []token.Record) []byte {
	var buf bytes.Buffer
	for _, rec := range records {
		if !rec.Kept {
			continue
		}
		buf.WriteString(rec.Text)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// TSVRenderer writes the annotation table to a writer.
type TSVRenderer struct {
	W io.Writer
}

// NewTSVRenderer creates a TSVRenderer writing to w.
func NewTSVRenderer(w io.Writer) *TSVRenderer {
	return &TSVRenderer{W: w}
}

// Render writes the header and one row per record.
func (r *TSVRenderer) Render(records []token.Record) error {
	if _, err := r.W.Write(Table(records)); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// compile-time interface check
var _ Renderer = (*TSVRenderer)(nil)
