// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// nesswig converts the Shannon entropy and linguistic complexity reports
// of NeSSie into wiggle tracks.
package main

import (
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/biogo/nessie/wig"
)

var (
	inName     = pflag.StringP("inputfile", "i", "", "input file (required)")
	outName    = pflag.StringP("outputfile", "o", "", "output file (required)")
	viewLimits = pflag.Bool("viewlimits", false, "fix track view limits to the range of scores")
	help       = pflag.BoolP("help", "h", false, "print this usage message")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("nesswig: ")

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
	win, tracks, err := wig.Read(in)
	in.Close()
	if err != nil {
		log.Fatalf("failed during read: %v", err)
	}

	out, err := os.Create(*outName)
	if err != nil {
		log.Fatalf("failed to create %q: %v", *outName, err)
	}
	defer out.Close()

	w := wig.NewWriter(out, win)
	w.ViewLimits = *viewLimits
	for _, t := range tracks {
		err = w.Write(t)
		if err != nil {
			log.Fatalf("failed to write track %q: %v", t.Label, err)
		}
	}
	err = w.Flush()
	if err != nil {
		log.Fatalf("failed to write %q: %v", *outName, err)
	}
}
