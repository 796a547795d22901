// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"strings"

	"github.com/biogo/biogo/alphabet"
)

// Placeholders used in rendered alignments.
const (
	Gap       = '-'
	Connector = '|'
	Blank     = ' '
)

// Render returns a three line view of the alignment of the two arms of a
// motif. The first line holds the left arm read forwards, the third the
// right arm read from the end of the motif and the second a Connector at
// each matched column.
//
// When markers is empty the motif is split at length/2 without regard to
// gaps and columns are connected where the facing bases are equal, or
// Watson-Crick complements when palindrome is true. For an odd length the
// central base is placed only on the third line and is never connected.
func Render(motif string, length int, markers string, palindrome bool) [3]string {
	if markers == "" {
		return naive(motif, length, palindrome)
	}

	var upper, mid, lower strings.Builder
	i, j := 0, 0
	for k := 0; k < len(markers); k++ {
		switch markers[k] {
		case Match, Mismatch, UpperGap:
			upper.WriteByte(base(motif, i))
			i++
		default:
			upper.WriteByte(Gap)
		}

		if markers[k] == Match {
			mid.WriteByte(Connector)
		} else {
			mid.WriteByte(Blank)
		}

		switch markers[k] {
		case Match, Mismatch, LowerGap:
			lower.WriteByte(base(motif, length-j-1))
			j++
		default:
			lower.WriteByte(Gap)
		}
	}
	return [3]string{upper.String(), mid.String(), lower.String()}
}

func naive(motif string, length int, palindrome bool) [3]string {
	first := length / 2
	second := length - first

	var upper, mid, lower strings.Builder
	for i := 0; i < first; i++ {
		upper.WriteByte(base(motif, i))
	}
	if first != second {
		upper.WriteByte(Gap)
	}

	for i := 0; i < first; i++ {
		if pairs(base(motif, i), base(motif, length-i-1), palindrome) {
			mid.WriteByte(Connector)
		} else {
			mid.WriteByte(Blank)
		}
	}

	for i := 0; i < second; i++ {
		lower.WriteByte(base(motif, length-i-1))
	}
	return [3]string{upper.String(), mid.String(), lower.String()}
}

// pairs reports whether a faces b in a mirror or, when complement is true,
// in a palindrome.
func pairs(a, b byte, complement bool) bool {
	if !complement {
		return a == b
	}
	c, ok := alphabet.DNA.Complement(alphabet.Letter(b))
	return ok && alphabet.Letter(a) == c
}

// base returns motif[i], or Gap if the reported length and the motif
// disagree.
func base(motif string, i int) byte {
	if i < 0 || i >= len(motif) {
		return Gap
	}
	return motif[i]
}
