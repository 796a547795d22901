// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report reads the hit reports written by the NeSSie scanner for
// mirror, palindrome and triplex searches.
//
// A report is line oriented. The first character of a line selects its
// meaning:
//
//	#Command -P -k 6 ...     directive: the scanner options
//	>label description       start of a sequence section
//	$|length|motif[|trace]   hit declaration
//	@counts: n               occurrences of the last declared motif
//	@indexes: i|j|...|       start offsets of the last declared motif
//
// Other lines are ignored.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// FormatError is returned for report lines that do not follow the report
// grammar.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("report: line %d: %s", e.Line, e.Msg)
}

// Scanner provides an interface for reading the sequence sections of a
// report one Bucket at a time. A Bucket is complete when the following
// header line or the end of input is reached.
type Scanner struct {
	r    *bufio.Reader
	line int

	dir Directive
	cur *Bucket
	hit *Hit

	instance int

	b      *Bucket
	bucDir Directive

	// Warn, if not nil, is called with warnings raised
	// by directive lines.
	Warn func(string)

	err error
	eof bool
}

// NewScanner returns a Scanner reading from r starting with the directive
// state d.
func NewScanner(r io.Reader, d Directive) *Scanner {
	return &Scanner{r: bufio.NewReader(r), dir: d}
}

// Next advances the Scanner to the next complete Bucket, which will then
// be available through the Bucket method. It returns false when the scan
// stops, either by reaching the end of the input or an error. After Next
// returns false, the Error method will return any error that occurred
// during scanning, except that if it was io.EOF, Error will return nil.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	s.b = nil
	for !s.eof {
		line, err := s.r.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				s.err = err
				return false
			}
			s.eof = true
			if line == "" {
				break
			}
		}
		s.line++
		line = strings.TrimRightFunc(line, unicode.IsSpace)

		b, err := s.process(line)
		if err != nil {
			s.err = err
			return false
		}
		if b != nil {
			s.b = b
			s.bucDir = s.dir
			return true
		}
	}

	if s.cur == nil {
		return false
	}
	s.b, s.cur, s.hit = s.cur, nil, nil
	s.bucDir = s.dir
	return true
}

// process handles a single line. It returns the previous Bucket if line
// starts a new section.
func (s *Scanner) process(line string) (*Bucket, error) {
	if line == "" {
		return nil, nil
	}
	switch line[0] {
	case '#':
		var warnings []string
		s.dir, warnings = s.dir.Apply(strings.Fields(line[1:]))
		if s.Warn != nil {
			for _, w := range warnings {
				s.Warn(w)
			}
		}

	case '>':
		var label string
		if f := strings.Fields(line); len(f) != 0 {
			label = f[0][1:]
		}
		s.instance++
		prev := s.cur
		s.cur = NewBucket(line, label, s.instance, s.dir)
		s.hit = nil
		return prev, nil

	case '$':
		if s.cur == nil {
			return nil, s.errorf("hit declared before any sequence header")
		}
		f := strings.Split(line, "|")
		if f[0] != "$" || len(f) < 3 || len(f) > 4 {
			return nil, s.errorf("malformed hit declaration %q", line)
		}
		length, err := strconv.Atoi(strings.TrimSpace(f[1]))
		if err != nil {
			return nil, s.errorf("invalid motif length %q", f[1])
		}
		motif := strings.TrimSpace(f[2])
		if motif == "" {
			return nil, s.errorf("missing motif in %q", line)
		}
		var trace string
		if len(f) == 4 {
			trace = strings.TrimSpace(f[3])
		}
		s.hit = s.cur.Add(motif, length, trace)

	case '@':
		switch {
		case strings.HasPrefix(line, "@counts"):
			if s.hit == nil {
				return nil, s.errorf("counts without a declared motif")
			}
			f := strings.Fields(line)
			if len(f) < 2 {
				return nil, s.errorf("missing count in %q", line)
			}
			n, err := strconv.Atoi(f[1])
			if err != nil {
				return nil, s.errorf("invalid count %q", f[1])
			}
			s.hit.Count += n
		case strings.HasPrefix(line, "@indexes"):
			if s.hit == nil {
				return nil, s.errorf("indexes without a declared motif")
			}
			f := strings.Fields(line)
			if len(f) < 2 {
				return nil, nil
			}
			idx, err := ParseOffsets(f[1])
			if err != nil {
				return nil, s.errorf("%v", err)
			}
			s.hit.Offsets = append(s.hit.Offsets, idx...)
		}
	}
	return nil, nil
}

func (s *Scanner) errorf(format string, args ...interface{}) error {
	return &FormatError{Line: s.line, Msg: fmt.Sprintf(format, args...)}
}

// Bucket returns the most recent Bucket read by a call to Next.
func (s *Scanner) Bucket() *Bucket { return s.b }

// Directive returns the directive state in effect when the most recent
// Bucket was completed.
func (s *Scanner) Directive() Directive { return s.bucDir }

// Error returns the first non-EOF error that was encountered by the
// Scanner.
func (s *Scanner) Error() error { return s.err }

// ParseOffsets parses a '|' separated list of offsets. Empty elements,
// including the one after the customary trailing '|', are skipped.
func ParseOffsets(list string) ([]int, error) {
	var idx []int
	for _, f := range strings.Split(list, "|") {
		if f == "" {
			continue
		}
		i, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid offset %q", f)
		}
		idx = append(idx, i)
	}
	return idx, nil
}
