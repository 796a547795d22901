// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"github.com/biogo/biogo/seq"
)

// MotifType is the symmetry searched for by the scanner.
type MotifType int

const (
	Mirror MotifType = iota
	Palindrome
	Triplex
)

func (t MotifType) String() string {
	switch t {
	case Mirror:
		return "mirror"
	case Palindrome:
		return "palindrome"
	case Triplex:
		return "triplex"
	}
	return "unknown"
}

// Code returns the single letter code used in tabular output.
func (t MotifType) Code() string {
	return t.String()[:1]
}

// Order is the ordering of hits within a sequence section.
type Order int

const (
	ByOffset Order = iota
	ByCounts
	ByScore
)

// Directive is the parsing and output state derived from the directive
// lines of a report. A Directive is a value: Apply returns an updated
// copy, and fields not mentioned by a directive line keep their previous
// values across sequence sections.
type Directive struct {
	Type   MotifType
	Strand seq.Strand

	// ByCounts and ByScore request count and score ordering.
	// Score ordering takes precedence.
	ByCounts bool
	ByScore  bool

	// CountsOnly and IndexesOnly indicate that the scanner
	// reported only counts or only offsets for each hit.
	CountsOnly  bool
	IndexesOnly bool
}

// NewDirective returns the default state: mirror motifs on the plus strand
// ordered by first offset, with both counts and offsets reported.
func NewDirective() Directive {
	return Directive{Type: Mirror, Strand: seq.Plus}
}

// Apply returns d updated by the tokens of a directive line, and any
// warnings about requests that could not be honoured. Unrecognised
// tokens are ignored.
func (d Directive) Apply(tokens []string) (Directive, []string) {
	has := func(short, long string) bool {
		for _, t := range tokens {
			if t == short || t == long {
				return true
			}
		}
		return false
	}

	switch {
	case has("-P", "--palindrome"):
		d.Type = Palindrome
	case has("-T", "--triplex"):
		d.Type = Triplex
	case has("-M", "--mirror"):
		d.Type = Mirror
	}
	if has("-C", "--complement") {
		d.Strand = seq.Minus
	}

	var warnings []string
	switch {
	case has("-c", "--counts"):
		// Only counts available, so order by them.
		d.ByCounts = true
		d.CountsOnly = true
		d.IndexesOnly = false
	case has("-i", "--indexes"):
		if d.ByCounts {
			warnings = append(warnings, "ordering by counts needs counts in the input: hits will be ordered by first offset")
		}
		d.ByCounts = false
		d.IndexesOnly = true
		d.CountsOnly = false
	}
	return d, warnings
}

// Order returns the effective ordering.
func (d Directive) Order() Order {
	switch {
	case d.ByScore:
		return ByScore
	case d.ByCounts:
		return ByCounts
	}
	return ByOffset
}

// Counts and Indexes report whether counts and offsets are shown.
func (d Directive) Counts() bool  { return !d.IndexesOnly }
func (d Directive) Indexes() bool { return !d.CountsOnly }
