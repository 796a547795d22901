// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"sort"

	"github.com/biogo/nessie/align"
)

// Hit is the aggregate of all reports of one motif within a sequence
// section. Hits are keyed by the motif string alone, so distinct
// occurrences of the same subsequence share a Hit.
type Hit struct {
	Motif  string
	Length int

	// Trace is the binary alignment trace, empty if none was reported.
	Trace string

	Count   int
	Offsets []int
}

// Score returns the alignment score and column markers of the hit.
func (h *Hit) Score() (score int, markers string) {
	return align.Score(h.Length, h.Trace)
}

// Bucket holds the hits of one sequence section.
type Bucket struct {
	// Header is the header line without its line ending.
	Header string
	// Label is the first word of the header without the leading '>'.
	Label string
	// Instance numbers sections from 1 in input order and
	// distinguishes sections that share a label.
	Instance int

	// Directive is the state in effect when the header was read.
	Directive Directive

	// Hits holds hits in the order their motifs were first seen.
	Hits []*Hit

	index map[string]*Hit
}

// NewBucket returns an empty Bucket.
func NewBucket(header, label string, instance int, d Directive) *Bucket {
	return &Bucket{
		Header:    header,
		Label:     label,
		Instance:  instance,
		Directive: d,
		index:     make(map[string]*Hit),
	}
}

// Add returns the Hit for motif, creating it if the motif has not been
// seen in the bucket. The length and trace of an existing Hit are left
// unchanged.
func (b *Bucket) Add(motif string, length int, trace string) *Hit {
	if h, ok := b.index[motif]; ok {
		return h
	}
	h := &Hit{Motif: motif, Length: length, Trace: trace}
	b.index[motif] = h
	b.Hits = append(b.Hits, h)
	return h
}

// Hit returns the Hit for motif, or nil.
func (b *Bucket) Hit(motif string) *Hit {
	return b.index[motif]
}

// Sorted returns the hits of b in the order requested by d. Offset
// ordering is ascending by first offset, with hits lacking offsets last.
// Count ordering is descending. Score ordering is descending and is
// applied over the count or offset ordering, so ties keep that order.
// All sorts are stable.
func (b *Bucket) Sorted(d Directive) []*Hit {
	hits := make([]*Hit, len(b.Hits))
	copy(hits, b.Hits)

	sort.SliceStable(hits, func(i, j int) bool {
		oi, oj := hits[i].Offsets, hits[j].Offsets
		switch {
		case len(oi) == 0:
			return false
		case len(oj) == 0:
			return true
		}
		return oi[0] < oj[0]
	})
	if d.Order() == ByOffset {
		return hits
	}

	if d.ByCounts {
		sort.SliceStable(hits, func(i, j int) bool {
			return hits[i].Count > hits[j].Count
		})
	}
	if d.ByScore {
		scores := make(map[*Hit]int, len(hits))
		for _, h := range hits {
			scores[h], _ = h.Score()
		}
		sort.SliceStable(hits, func(i, j int) bool {
			return scores[hits[i]] > scores[hits[j]]
		})
	}
	return hits
}
