// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/check.v1"

	"github.com/biogo/nessie/format"
	"github.com/biogo/nessie/report"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const in = `#Command -I in.fa -O out.txt -P -k 4
>chr1
$|4|ACGT|01010101
@counts: 1
@indexes: 3|
$|6|AACGTT|010110100101
@counts: 4
@indexes: 1|9|12|
`

func (s *S) TestRewrite(c *check.C) {
	dir := c.MkDir()
	src := filepath.Join(dir, "in.txt")
	dst := filepath.Join(dir, "out.txt")
	c.Assert(os.WriteFile(src, []byte(in), 0o644), check.IsNil)

	opts, err := format.Options{ByScore: true, Rewrite: true}.Resolve()
	c.Assert(err, check.IsNil)
	c.Assert(run(src, dst, report.NewDirective(), opts), check.IsNil)

	got, err := os.ReadFile(dst)
	c.Assert(err, check.IsNil)
	c.Check(string(got), check.Equals, ">chr1\n$|6|AACGTT|3\n@counts: 4\n@indexes: 1|9|12|\n$|4|ACGT|4\n@counts: 1\n@indexes: 3|\n")

	c.Assert(format.ReorderFile(dst), check.IsNil)
	got, err = os.ReadFile(dst)
	c.Assert(err, check.IsNil)
	c.Check(string(got), check.Equals, ">chr1\n$|4|ACGT|4\n@counts: 1\n@indexes: 3|\n$|6|AACGTT|3\n@counts: 4\n@indexes: 1|9|12|\n")
}

func (s *S) TestGFF(c *check.C) {
	var buf strings.Builder
	err := convert(&buf, strings.NewReader(in), report.NewDirective(), format.Options{GFF: true})
	c.Assert(err, check.IsNil)
	c.Check(strings.Count(buf.String(), "\tNeSSie\tpalindrome\t"), check.Equals, 4)
}

func (s *S) TestGFFHeat(c *check.C) {
	const in = `>s
$|10|ACGTTTTGCA
@indexes: 1|
$|5|CCCCC
@indexes: 20|
`
	var scale, heat strings.Builder
	err := convert(&scale, strings.NewReader(in), report.NewDirective(), format.Options{GFF: true})
	c.Assert(err, check.IsNil)
	err = convert(&heat, strings.NewReader(in), report.NewDirective(), format.Options{GFF: true, Heat: true})
	c.Assert(err, check.IsNil)

	scaleLines := strings.Split(strings.TrimSpace(scale.String()), "\n")
	heatLines := strings.Split(strings.TrimSpace(heat.String()), "\n")
	c.Assert(heatLines, check.HasLen, 2)
	c.Assert(scaleLines, check.HasLen, 2)
	for i := range heatLines {
		c.Check(heatLines[i], check.Not(check.Equals), scaleLines[i], check.Commentf("Line %d", i))
	}
}

func (s *S) TestFormatError(c *check.C) {
	var buf strings.Builder
	err := convert(&buf, strings.NewReader(">s\n@counts: 1\n"), report.NewDirective(), format.Options{})
	c.Check(err, check.ErrorMatches, `failed during read: report: line 2: .*`)
}
