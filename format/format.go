// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format writes report buckets as annotated text, GFF annotation
// tracks and tab delimited tables.
package format

import (
	"io"

	"github.com/biogo/nessie/report"
)

// BucketWriter is implemented by the output formats.
type BucketWriter interface {
	// Write writes b using the directive state d.
	Write(d report.Directive, b *report.Bucket) error
	// Flush writes any buffered data to the underlying writer.
	Flush() error
}

// Options selects the annotated text output.
type Options struct {
	// Alignment adds the rendered alignment of each hit.
	Alignment bool
	// GFF selects GFF annotation track output.
	GFF bool
	// Heat colours GFF features with a heat palette
	// instead of ScoreScale.
	Heat bool
	// ByScore orders hits by descending alignment score.
	ByScore bool
	// Rewrite orders by score by rewriting the completed
	// output rather than ordering each section as it is
	// written.
	Rewrite bool
}

// ModeConflict is returned by Options.Resolve when requested options
// cannot be combined. It is a warning: the resolved options are usable.
type ModeConflict struct {
	Msg string
}

func (e *ModeConflict) Error() string { return "format: " + e.Msg }

// Resolve returns o with conflicting options disabled. GFF output cannot
// be ordered by score, so score ordering is dropped and a *ModeConflict
// returned.
func (o Options) Resolve() (Options, error) {
	if o.GFF && o.ByScore {
		o.ByScore = false
		o.Rewrite = false
		return o, &ModeConflict{Msg: "GFF output cannot be ordered by score: writing unordered GFF"}
	}
	if !o.ByScore {
		o.Rewrite = false
	}
	return o, nil
}

// NewWriter returns the BucketWriter selected by o.
func NewWriter(w io.Writer, o Options) BucketWriter {
	if o.GFF {
		g := NewGFFWriter(w)
		if o.Heat {
			g.Palette = HeatScale(len(ScoreScale.Colors()))
		}
		return g
	}
	return NewTextWriter(w, o.Alignment)
}
