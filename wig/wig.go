// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wig converts the windowed Shannon entropy and linguistic
// complexity reports of the NeSSie scanner to wiggle tracks.
//
// The report starts with a directive line holding the scanner options,
// which must select entropy (-E) or complexity (-L) and give the window
// length (-l). Each sequence section starts with a >label line, each
// scanned interval with an @start-end line, followed by one
// "index score" line per window.
package wig

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/floats"

	"github.com/biogo/nessie/report"
)

// ConfigError is returned when a report does not declare a windowed
// scoring mode.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "wig: " + e.Msg }

// Mode is the windowed score reported.
type Mode int

const (
	Entropy Mode = iota
	Complexity
)

// Window describes the windowed scoring of a report.
type Window struct {
	Mode   Mode
	Length int
	Shift  int
}

// ParseWindow returns the Window declared by the tokens of a directive
// line. The shift defaults to 1.
func ParseWindow(tokens []string) (Window, error) {
	w := Window{Mode: -1, Shift: 1}
	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case "-E", "--entropy":
			w.Mode = Entropy
		case "-L", "--linguistic":
			w.Mode = Complexity
		case "-l", "--interval", "-s", "--shift":
			if i+1 == len(tokens) {
				return w, &ConfigError{Msg: fmt.Sprintf("missing value for %s", tokens[i])}
			}
			n, err := strconv.Atoi(tokens[i+1])
			if err != nil || n < 1 {
				return w, &ConfigError{Msg: fmt.Sprintf("invalid value for %s: %q", tokens[i], tokens[i+1])}
			}
			if tokens[i] == "-l" || tokens[i] == "--interval" {
				w.Length = n
			} else {
				w.Shift = n
			}
			i++
		}
	}
	switch {
	case w.Mode < 0:
		return w, &ConfigError{Msg: "report is not an entropy or linguistic complexity analysis"}
	case w.Length == 0:
		return w, &ConfigError{Msg: "no window length declared"}
	}
	return w, nil
}

// Point is a single wiggle data point.
type Point struct {
	Pos   int
	Score float64
}

// Track holds the points of one sequence label in input order.
type Track struct {
	Label  string
	Points []Point
}

// Read reads a windowed score report. Points are positioned at the centre
// of their window: index + interval start + window length/2. Sections
// sharing a label are collected into one Track, and tracks are returned in
// the order their labels were first seen.
func Read(r io.Reader) (Window, []*Track, error) {
	var (
		win    Window
		haveW  bool
		tracks []*Track
		byName = make(map[string]*Track)
		cur    *Track
		start  int
	)

	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return win, nil, err
		}
		if line == "" && err == io.EOF {
			break
		}
		line = strings.TrimRightFunc(line, unicode.IsSpace)

		switch {
		case line == "":
		case line[0] == '#':
			w, werr := ParseWindow(strings.Fields(line[1:]))
			if werr != nil {
				return win, nil, werr
			}
			win, haveW = w, true
		case !haveW:
			return win, nil, &ConfigError{Msg: "no windowed scoring directive before data"}
		case line[0] == '>':
			var label string
			if f := strings.Fields(line); len(f) != 0 {
				label = f[0][1:]
			}
			cur = byName[label]
			if cur == nil {
				cur = &Track{Label: label}
				byName[label] = cur
				tracks = append(tracks, cur)
			}
			start = 0
		case line[0] == '@':
			f := strings.SplitN(line[1:], "-", 2)
			s, serr := strconv.Atoi(strings.TrimSpace(f[0]))
			if serr != nil {
				return win, nil, &report.FormatError{Line: n, Msg: fmt.Sprintf("invalid interval %q", line)}
			}
			start = s
		default:
			if cur == nil {
				return win, nil, &report.FormatError{Line: n, Msg: "score before any sequence header"}
			}
			p, perr := parsePoint(line)
			if perr != nil {
				return win, nil, &report.FormatError{Line: n, Msg: perr.Error()}
			}
			p.Pos += start + win.Length/2
			cur.Points = append(cur.Points, p)
		}

		if err == io.EOF {
			break
		}
	}
	if !haveW {
		return win, nil, &ConfigError{Msg: "no windowed scoring directive"}
	}
	return win, tracks, nil
}

// parsePoint parses an "index score" line. Negative zero scores are
// returned as zero.
func parsePoint(line string) (Point, error) {
	f := strings.Fields(line)
	if len(f) < 2 {
		return Point{}, fmt.Errorf("malformed score line %q", line)
	}
	idx, err := strconv.Atoi(f[0])
	if err != nil {
		return Point{}, fmt.Errorf("invalid index %q", f[0])
	}
	score, err := strconv.ParseFloat(f[1], 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid score %q", f[1])
	}
	if score == 0 {
		score = 0
	}
	return Point{Pos: idx, Score: score}, nil
}

// Writer writes wiggle tracks.
type Writer struct {
	w   *bufio.Writer
	win Window

	// ViewLimits fixes the view range of each track to
	// the range of its scores instead of autoscaling.
	ViewLimits bool
}

// NewWriter returns a Writer writing tracks for the window win to w.
func NewWriter(w io.Writer, win Window) *Writer {
	return &Writer{w: bufio.NewWriter(w), win: win}
}

// Write writes t as a variableStep track.
func (w *Writer) Write(t *Track) error {
	name, desc := "Entropy scores", "Shannon entropy"
	if w.win.Mode == Complexity {
		name, desc = "Complexity scores", "linguistic complexity"
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "track type=wiggle_0 name=\"%s %s, windows %d - shift %d\" description=\"%s scores\" visibility=full",
		t.Label, name, w.win.Length, w.win.Shift, desc)
	if w.ViewLimits && len(t.Points) != 0 {
		scores := make([]float64, len(t.Points))
		for i, p := range t.Points {
			scores[i] = p.Score
		}
		fmt.Fprintf(&buf, " autoScale=off viewLimits=%s:%s",
			formatScore(floats.Min(scores)), formatScore(floats.Max(scores)))
	}
	buf.WriteString(" color=50,150,255\n")
	fmt.Fprintf(&buf, "variableStep chrom=%s\n", t.Label)
	for _, p := range t.Points {
		buf.WriteString(strconv.Itoa(p.Pos))
		buf.WriteByte(' ')
		buf.WriteString(formatScore(p.Score))
		buf.WriteByte('\n')
	}
	_, err := w.w.WriteString(buf.String())
	return err
}

// Flush flushes the underlying writer.
func (w *Writer) Flush() error { return w.w.Flush() }

// formatScore returns the shortest representation of f that always
// includes a decimal point or exponent.
func formatScore(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
