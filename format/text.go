// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/biogo/nessie/align"
	"github.com/biogo/nessie/report"
)

// Annotated text line prefixes.
const (
	alnPrefix     = "@aln: "
	countsPrefix  = "@counts: "
	indexesPrefix = "@indexes: "
)

// TextWriter writes buckets in the annotated text form: the section header
// followed, for each hit, by a $|length|motif|score line, optionally the
// rendered alignment and the counts and offsets the input reported.
type TextWriter struct {
	w *bufio.Writer

	// Alignment adds three @aln: lines per hit.
	Alignment bool
}

// NewTextWriter returns a TextWriter writing to w.
func NewTextWriter(w io.Writer, alignment bool) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w), Alignment: alignment}
}

// Write writes b with hits ordered according to d.
func (w *TextWriter) Write(d report.Directive, b *report.Bucket) error {
	var buf strings.Builder
	buf.WriteString(b.Header)
	buf.WriteByte('\n')
	for _, h := range b.Sorted(d) {
		score, markers := h.Score()
		writeRecord(&buf, h.Length, h.Motif, score)
		if w.Alignment {
			for _, l := range align.Render(h.Motif, h.Length, markers, d.Type == report.Palindrome) {
				buf.WriteString(alnPrefix)
				buf.WriteString(l)
				buf.WriteByte('\n')
			}
		}
		if d.Counts() {
			writeCounts(&buf, h.Count)
		}
		if d.Indexes() {
			writeIndexes(&buf, h.Offsets)
		}
	}
	_, err := w.w.WriteString(buf.String())
	return err
}

// Flush flushes the underlying writer.
func (w *TextWriter) Flush() error { return w.w.Flush() }

func writeRecord(buf *strings.Builder, length int, motif string, score int) {
	buf.WriteString("$|")
	buf.WriteString(strconv.Itoa(length))
	buf.WriteByte('|')
	buf.WriteString(motif)
	buf.WriteByte('|')
	buf.WriteString(strconv.Itoa(score))
	buf.WriteByte('\n')
}

func writeCounts(buf *strings.Builder, n int) {
	buf.WriteString(countsPrefix)
	buf.WriteString(strconv.Itoa(n))
	buf.WriteByte('\n')
}

func writeIndexes(buf *strings.Builder, offsets []int) {
	buf.WriteString(indexesPrefix)
	for _, i := range offsets {
		buf.WriteString(strconv.Itoa(i))
		buf.WriteByte('|')
	}
	buf.WriteByte('\n')
}
