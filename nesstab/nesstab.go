// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// nesstab converts the mirror, palindrome and triplex reports of NeSSie
// into a tab delimited table with one row per motif.
package main

import (
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/biogo/nessie/format"
	"github.com/biogo/nessie/report"
)

var (
	inName  = pflag.StringP("inputfile", "i", "", "output file from NeSSie as input (required)")
	outName = pflag.StringP("outputfile", "o", "", "file to store the table (required)")
	counts  = pflag.BoolP("orderbycounts", "c", false, "order the results by counts and not by indexes")
	score   = pflag.BoolP("score", "s", false, "order by score")
	help    = pflag.BoolP("help", "h", false, "print this usage message")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("nesstab: ")

	pflag.Parse()
	if *help {
		pflag.Usage()
		os.Exit(0)
	}
	if *inName == "" || *outName == "" {
		pflag.Usage()
		os.Exit(1)
	}

	in, err := os.Open(*inName)
	if err != nil {
		log.Fatalf("failed to open %q: %v", *inName, err)
	}
	defer in.Close()

	out, err := os.Create(*outName)
	if err != nil {
		log.Fatalf("failed to create %q: %v", *outName, err)
	}
	defer out.Close()

	d := report.NewDirective()
	d.ByCounts = *counts
	d.ByScore = *score

	w := format.NewTableWriter(out)
	sc := report.NewScanner(in, d)
	sc.Warn = func(msg string) { log.Printf("warning: %s", msg) }
	for sc.Next() {
		b := sc.Bucket()
		err := w.Write(sc.Directive(), b)
		if err != nil {
			log.Fatalf("failed to write %q: %v", b.Label, err)
		}
	}
	err = sc.Error()
	if err != nil {
		log.Fatalf("failed during read: %v", err)
	}
	err = w.Flush()
	if err != nil {
		log.Fatalf("failed to write %q: %v", *outName, err)
	}
}
