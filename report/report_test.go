// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/biogo/biogo/seq"
	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func scan(c *check.C, in string, d Directive) ([]*Bucket, []Directive, error) {
	sc := NewScanner(strings.NewReader(in), d)
	var (
		buckets []*Bucket
		dirs    []Directive
	)
	for sc.Next() {
		buckets = append(buckets, sc.Bucket())
		dirs = append(dirs, sc.Directive())
	}
	return buckets, dirs, sc.Error()
}

func (s *S) TestApply(c *check.C) {
	for i, t := range []struct {
		start    Directive
		line     string
		want     Directive
		warnings int
	}{
		{
			start: NewDirective(),
			line:  "#Command -I in.fa -O out.txt -M -k 6",
			want:  Directive{Type: Mirror, Strand: seq.Plus},
		},
		{
			start: NewDirective(),
			line:  "#Command -P -C -k 4",
			want:  Directive{Type: Palindrome, Strand: seq.Minus},
		},
		{
			start: NewDirective(),
			line:  "#Command --triplex --counts",
			want:  Directive{Type: Triplex, Strand: seq.Plus, ByCounts: true, CountsOnly: true},
		},
		{
			start:    Directive{Type: Mirror, Strand: seq.Plus, ByCounts: true},
			line:     "#Command -T -i",
			want:     Directive{Type: Triplex, Strand: seq.Plus, IndexesOnly: true},
			warnings: 1,
		},
		{
			start: NewDirective(),
			line:  "#Command -c -i",
			want:  Directive{Type: Mirror, Strand: seq.Plus, ByCounts: true, CountsOnly: true},
		},
		{
			start: Directive{Type: Palindrome, Strand: seq.Minus, ByScore: true},
			line:  "#Command --unknown 12",
			want:  Directive{Type: Palindrome, Strand: seq.Minus, ByScore: true},
		},
	} {
		got, warnings := t.start.Apply(strings.Fields(t.line))
		c.Check(got, check.Equals, t.want, check.Commentf("Test %d", i))
		c.Check(warnings, check.HasLen, t.warnings, check.Commentf("Test %d", i))
	}
}

func (s *S) TestOrder(c *check.C) {
	c.Check(Directive{}.Order(), check.Equals, ByOffset)
	c.Check(Directive{ByCounts: true}.Order(), check.Equals, ByCounts)
	c.Check(Directive{ByCounts: true, ByScore: true}.Order(), check.Equals, ByScore)
}

func (s *S) TestAggregate(c *check.C) {
	const in = `#Command -M -k 4
>seqA first sequence
$|4|ACCA|01010101
@counts: 3
$|4|ACCA|01010101
@counts: 2
@indexes: 10|20|
@indexes: 30|
$|4|GTTG
@counts: 1
@indexes: 7|
`
	buckets, _, err := scan(c, in, NewDirective())
	c.Assert(err, check.IsNil)
	c.Assert(buckets, check.HasLen, 1)
	b := buckets[0]
	c.Check(b.Header, check.Equals, ">seqA first sequence")
	c.Check(b.Label, check.Equals, "seqA")
	c.Check(b.Instance, check.Equals, 1)
	c.Assert(b.Hits, check.HasLen, 2)

	h := b.Hit("ACCA")
	c.Assert(h, check.NotNil)
	c.Check(h.Count, check.Equals, 5)
	c.Check(h.Offsets, check.DeepEquals, []int{10, 20, 30})
	c.Check(h.Trace, check.Equals, "01010101")
	c.Check(b.Hit("GTTG").Trace, check.Equals, "")
}

func (s *S) TestSections(c *check.C) {
	const in = `#Command -P
>chr1
$|4|ACGT|01010101
@indexes: 5|
>chr1
$|4|ACGT|01010101
@indexes: 9|
#Command -C -c
>chr2
$|6|AACGTT
@counts: 2`
	buckets, dirs, err := scan(c, in, NewDirective())
	c.Assert(err, check.IsNil)
	c.Assert(buckets, check.HasLen, 3)
	for i, b := range buckets {
		c.Check(b.Instance, check.Equals, i+1)
	}
	c.Check(buckets[0].Label, check.Equals, "chr1")
	c.Check(buckets[1].Label, check.Equals, "chr1")
	c.Check(buckets[1].Hit("ACGT").Offsets, check.DeepEquals, []int{9})
	c.Check(buckets[2].Hit("AACGTT").Count, check.Equals, 2)

	// Directive state is sticky and observed at flush time.
	c.Check(dirs[0].Type, check.Equals, Palindrome)
	c.Check(dirs[0].Strand, check.Equals, seq.Plus)
	c.Check(dirs[1].Strand, check.Equals, seq.Minus)
	c.Check(buckets[1].Directive.Strand, check.Equals, seq.Plus)
	c.Check(dirs[2].Type, check.Equals, Palindrome)
	c.Check(dirs[2].CountsOnly, check.Equals, true)
}

func (s *S) TestWarn(c *check.C) {
	var warned []string
	sc := NewScanner(strings.NewReader("#Command -i\n>s\n"), Directive{ByCounts: true})
	sc.Warn = func(w string) { warned = append(warned, w) }
	for sc.Next() {
	}
	c.Check(sc.Error(), check.IsNil)
	c.Check(warned, check.HasLen, 1)
}

func (s *S) TestFormatErrors(c *check.C) {
	for i, in := range []string{
		"$|4|ACGT\n",
		">s\n@counts: 2\n",
		">s\n@indexes: 1|2|\n",
		">s\n$|x|ACGT\n",
		">s\n$|4\n",
		">s\n$|4|ACGT|0101|extra\n",
		">s\n$|4|ACGT\n@counts: two\n",
		">s\n$|4|ACGT\n@indexes: 1|b|\n",
		">s\n$|4|ACGT\n>t\n@counts: 1\n",
	} {
		_, _, err := scan(c, in, NewDirective())
		var fe *FormatError
		c.Check(errors.As(err, &fe), check.Equals, true, check.Commentf("Test %d: %v", i, err))
	}
}

func (s *S) TestFormatErrorLine(c *check.C) {
	_, _, err := scan(c, ">s\n$|4|ACGT\n\n@counts: x\n", NewDirective())
	c.Check(err, check.ErrorMatches, `report: line 4: .*`)
}

func (s *S) TestSorted(c *check.C) {
	b := NewBucket(">s", "s", 1, NewDirective())
	for _, h := range []struct {
		motif   string
		trace   string
		count   int
		offsets []int
	}{
		{"AAAA", "0100", 1, []int{40}},
		{"CCCC", "01010101", 3, []int{10}},
		{"GGGG", "", 3, []int{20, 5}},
		{"TTTT", "0000", 2, nil},
	} {
		hit := b.Add(h.motif, 4, h.trace)
		hit.Count = h.count
		hit.Offsets = h.offsets
	}

	motifs := func(hits []*Hit) []string {
		var m []string
		for _, h := range hits {
			m = append(m, h.Motif)
		}
		return m
	}
	c.Check(motifs(b.Sorted(Directive{})), check.DeepEquals, []string{"CCCC", "GGGG", "AAAA", "TTTT"})
	c.Check(motifs(b.Sorted(Directive{ByCounts: true})), check.DeepEquals, []string{"CCCC", "GGGG", "TTTT", "AAAA"})
	c.Check(motifs(b.Sorted(Directive{ByScore: true})), check.DeepEquals, []string{"CCCC", "GGGG", "AAAA", "TTTT"})
	c.Check(motifs(b.Sorted(Directive{ByCounts: true, ByScore: true})), check.DeepEquals, []string{"CCCC", "GGGG", "TTTT", "AAAA"})

	c.Check(motifs(b.Hits), check.DeepEquals, []string{"AAAA", "CCCC", "GGGG", "TTTT"})
}

func (s *S) TestSortedMonotone(c *check.C) {
	const in = `>s
$|4|AAAA
@counts: 1
@indexes: 12|
$|4|CCCC
@counts: 7
@indexes: 3|
$|4|GGGG
@counts: 4
@indexes: 8|
`
	buckets, _, err := scan(c, in, NewDirective())
	c.Assert(err, check.IsNil)
	b := buckets[0]

	hits := b.Sorted(Directive{})
	for i := 1; i < len(hits); i++ {
		c.Check(hits[i-1].Offsets[0] <= hits[i].Offsets[0], check.Equals, true)
	}
	hits = b.Sorted(Directive{ByCounts: true})
	for i := 1; i < len(hits); i++ {
		c.Check(hits[i-1].Count >= hits[i].Count, check.Equals, true)
	}
}
