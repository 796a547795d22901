// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/biogo/nessie/report"
)

// scored is a hit read back from annotated text.
type scored struct {
	motif   string
	length  int
	score   int
	aln     []string
	count   int
	offsets []int
}

// section is a sequence section read back from annotated text. Sections
// are kept in input order, so sections sharing a label remain distinct.
type section struct {
	label string
	hits  []*scored
	index map[string]*scored
}

// Reorder reads annotated text written by TextWriter from src and writes
// it to dst with the hits of each section ordered by descending score.
// Sections keep their input order and hits with equal scores keep their
// relative order. Zero counts and empty offset lists are not written.
// Applying Reorder to its own output reproduces it exactly.
func Reorder(dst io.Writer, src io.Reader) error {
	sections, err := readScored(src)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(dst)
	for _, s := range sections {
		sort.SliceStable(s.hits, func(i, j int) bool {
			return s.hits[i].score > s.hits[j].score
		})
		var buf strings.Builder
		buf.WriteByte('>')
		buf.WriteString(s.label)
		buf.WriteByte('\n')
		for _, h := range s.hits {
			writeRecord(&buf, h.length, h.motif, h.score)
			for _, l := range h.aln {
				buf.WriteString(l)
				buf.WriteByte('\n')
			}
			if h.count != 0 {
				writeCounts(&buf, h.count)
			}
			if len(h.offsets) != 0 {
				writeIndexes(&buf, h.offsets)
			}
		}
		_, err = w.WriteString(buf.String())
		if err != nil {
			return err
		}
	}
	return w.Flush()
}

func readScored(src io.Reader) ([]*section, error) {
	var (
		sections []*section
		cur      *section
		hit      *scored
	)
	errorf := func(line int, format string, args ...interface{}) error {
		return &report.FormatError{Line: line, Msg: fmt.Sprintf(format, args...)}
	}

	r := bufio.NewReader(src)
	for n := 1; ; n++ {
		line, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if line == "" && err == io.EOF {
			break
		}
		line = strings.TrimRightFunc(line, unicode.IsSpace)

		switch {
		case line == "", line[0] == '#':
		case line[0] == '>':
			cur = &section{label: line[1:], index: make(map[string]*scored)}
			sections = append(sections, cur)
			hit = nil
		case line[0] == '$':
			if cur == nil {
				return nil, errorf(n, "hit declared before any sequence header")
			}
			f := strings.Split(line, "|")
			if f[0] != "$" || len(f) != 4 {
				return nil, errorf(n, "malformed scored hit %q", line)
			}
			length, err := strconv.Atoi(f[1])
			if err != nil {
				return nil, errorf(n, "invalid motif length %q", f[1])
			}
			score, err := strconv.Atoi(f[3])
			if err != nil {
				return nil, errorf(n, "invalid score %q", f[3])
			}
			var ok bool
			hit, ok = cur.index[f[2]]
			if !ok {
				hit = &scored{motif: f[2], length: length, score: score}
				cur.index[f[2]] = hit
				cur.hits = append(cur.hits, hit)
			}
		case strings.HasPrefix(line, "@aln"):
			if hit == nil {
				return nil, errorf(n, "alignment without a declared motif")
			}
			if len(hit.aln) < 3 {
				hit.aln = append(hit.aln, line)
			}
		case strings.HasPrefix(line, "@counts"):
			if hit == nil {
				return nil, errorf(n, "counts without a declared motif")
			}
			f := strings.Fields(line)
			if len(f) < 2 {
				return nil, errorf(n, "missing count in %q", line)
			}
			c, err := strconv.Atoi(f[1])
			if err != nil {
				return nil, errorf(n, "invalid count %q", f[1])
			}
			hit.count += c
		case strings.HasPrefix(line, "@indexes"):
			if hit == nil {
				return nil, errorf(n, "indexes without a declared motif")
			}
			f := strings.Fields(line)
			if len(f) < 2 {
				continue
			}
			idx, err := report.ParseOffsets(f[1])
			if err != nil {
				return nil, errorf(n, "%v", err)
			}
			hit.offsets = append(hit.offsets, idx...)
		}

		if err == io.EOF {
			break
		}
	}
	return sections, nil
}

// ReorderFile reorders the annotated text file at path in place. The
// reordered text is written to a temporary file in the same directory
// which then replaces the original with the original's permissions, so a
// failure leaves the original intact.
func ReorderFile(path string) (err error) {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()
	fi, err := src.Stat()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	err = Reorder(tmp, src)
	if err == nil {
		err = tmp.Chmod(fi.Mode().Perm())
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("format: reorder %s: %w", path, err)
	}
	return os.Rename(tmp.Name(), path)
}
