// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// nessfmt formats the mirror, palindrome and triplex reports of NeSSie.
// Hits are scored from their alignment traces and may be ordered by
// first offset (default), by counts or by score, shown with their
// optimal alignment, or written as a GFF annotation track.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/biogo/nessie/format"
	"github.com/biogo/nessie/report"
)

var (
	inName  = pflag.StringP("inputfile", "i", "", "output file from NeSSie as input (required)")
	outName = pflag.StringP("outputfile", "o", "", "file to store formatted output (required)")
	counts  = pflag.BoolP("orderbycounts", "c", false, "order the results by counts and not by indexes")
	aln     = pflag.BoolP("alignshow", "a", false, "show optimal alignment")
	gffOut  = pflag.BoolP("gff", "g", false, "generate GFF file")
	score   = pflag.BoolP("score", "s", false, "order by score")
	rewrite = pflag.Bool("rewrite", false, "order by score by rewriting the completed output file")
	heat    = pflag.Bool("heat", false, "colour GFF features with a heat palette")
	help    = pflag.BoolP("help", "h", false, "print this usage message")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("nessfmt: ")

	pflag.Parse()
	if *help {
		pflag.Usage()
		os.Exit(0)
	}
	if *inName == "" || *outName == "" {
		pflag.Usage()
		os.Exit(1)
	}

	opts, err := format.Options{
		Alignment: *aln,
		GFF:       *gffOut,
		Heat:      *heat,
		ByScore:   *score,
		Rewrite:   *rewrite,
	}.Resolve()
	if err != nil {
		log.Printf("warning: %v", err)
	}

	d := report.NewDirective()
	d.ByCounts = *counts
	d.ByScore = opts.ByScore && !opts.Rewrite

	err = run(*inName, *outName, d, opts)
	if err != nil {
		log.Fatalf("failed to format %q: %v", *inName, err)
	}
	if opts.Rewrite {
		err = format.ReorderFile(*outName)
		if err != nil {
			log.Fatalf("failed to order %q by score: %v", *outName, err)
		}
	}
}

func run(in, out string, d report.Directive, opts format.Options) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	o, err := os.Create(out)
	if err != nil {
		return err
	}
	err = convert(o, f, d, opts)
	if cerr := o.Close(); err == nil {
		err = cerr
	}
	return err
}

func convert(dst io.Writer, src io.Reader, d report.Directive, opts format.Options) error {
	w := format.NewWriter(dst, opts)

	sc := report.NewScanner(bufio.NewReader(src), d)
	sc.Warn = func(msg string) { log.Printf("warning: %s", msg) }
	for sc.Next() {
		err := w.Write(sc.Directive(), sc.Bucket())
		if err != nil {
			return err
		}
	}
	if err := sc.Error(); err != nil {
		return fmt.Errorf("failed during read: %w", err)
	}
	return w.Flush()
}
