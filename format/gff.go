// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"
	"gonum.org/v1/plot/palette"

	"github.com/biogo/nessie/report"
)

// scale is a fixed palette.Palette.
type scale []color.Color

func (s scale) Colors() []color.Color { return s }

func rgb(v uint32) color.Color {
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// ScoreScale is the default hit colour scale, from lowest to highest
// score.
var ScoreScale palette.Palette = scale{
	rgb(0xff0000),
	rgb(0xff0000),
	rgb(0xffee50),
	rgb(0x0080ff),
	rgb(0x00ff80),
	rgb(0x00ff80),
	rgb(0x00ff80),
}

// HeatScale returns a red to yellow palette of n colours.
func HeatScale(n int) palette.Palette {
	// The last colour of a heat palette is undefined when it
	// holds a single desaturated yellow.
	return scale(palette.Heat(n+1, 1).Colors()[:n])
}

// GFFWriter writes buckets as GFF annotation tracks with one feature per
// reported offset.
type GFFWriter struct {
	w *bufio.Writer

	// Source is the GFF source field.
	Source string
	// Palette holds the colours used for score classes.
	Palette palette.Palette
}

// NewGFFWriter returns a GFFWriter writing to w using ScoreScale.
func NewGFFWriter(w io.Writer) *GFFWriter {
	return &GFFWriter{w: bufio.NewWriter(w), Source: "NeSSie", Palette: ScoreScale}
}

// Features returns the features of b ordered by start position. Hits are
// placed at each of their offsets; when two motifs report the same offset
// the motif seen first in the section is used. Each feature is coloured
// by score class: the score divided by a fifth of the best score in the
// section, both truncated to integers, clamped to the palette.
func (w *GFFWriter) Features(d report.Directive, b *report.Bucket) []*gff.Feature {
	at := make(map[int]*report.Hit)
	var offsets []int
	scores := make(map[*report.Hit]int, len(b.Hits))
	best := math.MinInt32
	for _, h := range b.Hits {
		scores[h], _ = h.Score()
		if scores[h] > best {
			best = scores[h]
		}
		for _, i := range h.Offsets {
			if _, ok := at[i]; ok {
				continue
			}
			at[i] = h
			offsets = append(offsets, i)
		}
	}
	sort.Ints(offsets)

	colors := w.Palette.Colors()
	feats := make([]*gff.Feature, 0, len(offsets))
	for _, i := range offsets {
		h := at[i]
		score := float64(scores[h])
		feats = append(feats, &gff.Feature{
			SeqName:    b.Label,
			Source:     w.Source,
			Feature:    d.Type.String(),
			FeatStart:  i,
			FeatEnd:    i + h.Length,
			FeatScore:  &score,
			FeatStrand: d.Strand,
			FeatFrame:  gff.NoFrame,
			FeatAttributes: gff.Attributes{
				{Tag: "ID", Value: h.Motif},
				{Tag: "color", Value: hex(colors[class(scores[h], best, len(colors))])},
				{Tag: "score", Value: strconv.Itoa(scores[h])},
			},
		})
	}
	return feats
}

// class returns the colour class of score for a palette of n colours.
func class(score, best, n int) int {
	incr := best / 5
	if incr <= 0 || score <= 0 {
		return 0
	}
	c := score / incr
	if c >= n {
		c = n - 1
	}
	return c
}

func hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}

// Write writes the features of b.
func (w *GFFWriter) Write(d report.Directive, b *report.Bucket) error {
	for _, f := range w.Features(d, b) {
		_, err := w.w.WriteString(gffLine(f))
		if err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying writer.
func (w *GFFWriter) Flush() error { return w.w.Flush() }

// gffLine formats f as a GFF3 line. Coordinates are written as held.
func gffLine(f *gff.Feature) string {
	score := "."
	if f.FeatScore != nil {
		score = strconv.FormatFloat(*f.FeatScore, 'f', -1, 64)
	}
	attr := make([]string, len(f.FeatAttributes))
	for i, a := range f.FeatAttributes {
		attr[i] = a.Tag + "=" + a.Value
	}
	return fmt.Sprintf("%s\t%s\t%s\t%d\t%d\t%s\t%s\t.\t%s\n",
		f.SeqName, f.Source, f.Feature, f.FeatStart, f.FeatEnd,
		score, strandSign(f.FeatStrand), strings.Join(attr, ";"))
}

func strandSign(s seq.Strand) string {
	switch s {
	case seq.Plus:
		return "+"
	case seq.Minus:
		return "-"
	}
	return "."
}
