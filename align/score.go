// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package align decodes the binary alignment traces reported for mirror,
// palindrome and triplex hits, scores them and renders them as text.
//
// A trace is a string over {'0','1'} read two characters at a time. Each
// token describes one alignment column:
//
//	01  match           M
//	10  mismatch        m
//	00  gap, upper arm  u
//	11  gap, lower arm  l
package align

// Alignment column markers.
const (
	Match     = 'M'
	Mismatch  = 'm'
	UpperGap  = 'u'
	LowerGap  = 'l'
	matchCode = "01"
)

// Deviation penalties. A deviation directly following a match opens a
// run and costs Open; any further deviation extends the run and costs
// Extend.
const (
	Open   = -2
	Extend = -1
)

// Score returns the score of a hit of the given length and its column
// markers. The score starts at length and is reduced by Open for each run
// of deviations that starts after a match and by Extend for every other
// deviation, so a deviation at the very start of a trace costs Extend.
//
// An empty trace is taken to mean that no trace was reported; the score is
// then length and markers is empty. Score does not validate the trace:
// tokens other than 00, 01 and 11 are scored as mismatches and a trailing
// unpaired character is ignored.
func Score(length int, trace string) (score int, markers string) {
	score = length
	if trace == "" {
		return score, ""
	}

	m := make([]byte, 0, len(trace)/2)
	var last string
	for i := 0; i+1 < len(trace); i += 2 {
		tok := trace[i : i+2]
		var mark byte
		switch tok {
		case matchCode:
			m = append(m, Match)
			last = tok
			continue
		case "00":
			mark = UpperGap
		case "11":
			mark = LowerGap
		default:
			mark = Mismatch
		}
		if last == matchCode {
			score += Open
		} else {
			score += Extend
		}
		m = append(m, mark)
		last = tok
	}
	return score, string(m)
}
