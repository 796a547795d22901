// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/biogo/nessie/report"
)

var (
	nonWord    = regexp.MustCompile(`[^\w\s]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// TableLabel returns the sequence label used in tables: the header line
// with punctuation removed and runs of white space replaced by '_'.
func TableLabel(header string) string {
	return whitespace.ReplaceAllString(nonWord.ReplaceAllString(header, ""), "_")
}

// TableWriter writes buckets as tab delimited rows, one per hit.
type TableWriter struct {
	w      *bufio.Writer
	header bool
}

// NewTableWriter returns a TableWriter writing to w.
func NewTableWriter(w io.Writer) *TableWriter {
	return &TableWriter{w: bufio.NewWriter(w)}
}

// Write writes b with hits ordered according to d. The header row is
// written before the first bucket, with columns chosen by the directive
// in effect at that bucket's header line.
func (w *TableWriter) Write(d report.Directive, b *report.Bucket) error {
	var buf strings.Builder
	if !w.header {
		cols := []string{"#fasta_ID", "motif", "motif_type", "strand", "motif_length", "score"}
		if b.Directive.Counts() {
			cols = append(cols, "counts")
		}
		if b.Directive.Indexes() {
			cols = append(cols, "indexes")
		}
		buf.WriteString(strings.Join(cols, "\t"))
		buf.WriteByte('\n')
		w.header = true
	}

	label := TableLabel(b.Header)
	for _, h := range b.Sorted(d) {
		score, _ := h.Score()
		row := []string{
			label,
			h.Motif,
			d.Type.Code(),
			strandSign(d.Strand),
			strconv.Itoa(h.Length),
			strconv.Itoa(score),
		}
		if d.Counts() {
			row = append(row, strconv.Itoa(h.Count))
		}
		if d.Indexes() {
			idx := make([]string, len(h.Offsets))
			for i, o := range h.Offsets {
				idx[i] = strconv.Itoa(o)
			}
			row = append(row, strings.Join(idx, ","))
		}
		buf.WriteString(strings.Join(row, "\t"))
		buf.WriteByte('\n')
	}
	_, err := w.w.WriteString(buf.String())
	return err
}

// Flush flushes the underlying writer.
func (w *TableWriter) Flush() error { return w.w.Flush() }
