//    SearchVizGo
//    Copyright: The SearchVizGo Authors 2026
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package search

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/corpustools/SearchVizGo/internal/gen"
	"github.com/corpustools/SearchVizGo/internal/lnch"
	"github.com/corpustools/SearchVizGo/internal/str"
	"github.com/corpustools/SearchVizGo/internal/vv"
)

var Msg = lnch.Msg

// termstate - one search term's compiled highlighter and its accumulator
type termstate struct {
	literal string // the decoded term; also the pre-filter needle
	hl      *Highlighter
	tally   *str.TermTally
	broken  bool // the pattern would not compile; the term stays in the report with zero matches
}

// Aggregator - per-term accumulators fed one line at a time
//
// keeps no file handles so the tallying can be tested without any I/O
type Aggregator struct {
	terms      []*termstate
	max        int
	alwaysscan bool
}

// NewAggregator - decode the search terms and compile a highlighter for each
func NewAggregator(cfg *str.CurrentConfiguration) *Aggregator {
	const (
		FAIL = "could not compile a pattern for '%s' (%v); it will report zero matches"
		NOTE = "looking for %d search term(s)"
	)

	Msg.NOTE(fmt.Sprintf(NOTE, len(cfg.SearchTerms)))

	agg := &Aggregator{
		max: cfg.MaxExamples,
		// the literal pre-filter is useless when matching is caseless or the term is a regex
		alwaysscan: cfg.IgnoreCase || cfg.AsRegex,
	}

	for _, raw := range cfg.SearchTerms {
		term := gen.DecodeUnicodeEscape(raw)
		ts := &termstate{
			literal: term,
			tally:   &str.TermTally{Term: term},
		}

		hl, e := NewHighlighter(str.TermQuery{
			Term:          term,
			IgnoreCase:    cfg.IgnoreCase,
			AsRegex:       cfg.AsRegex,
			FullTokenOnly: cfg.FullTokenOnly,
			TokenColor:    cfg.TokenColor,
			MatchColor:    cfg.MatchColor,
		})

		if e != nil {
			Msg.WARN(fmt.Sprintf(FAIL, term, e))
			ts.broken = true
		} else {
			ts.hl = hl
		}

		agg.terms = append(agg.terms, ts)
	}

	return agg
}

// Absorb - run every term against one line and update the tallies
//
// the count keeps growing past the example cap so totals always reflect the whole file
func (agg *Aggregator) Absorb(linenumber int, ref string, text string) {
	for _, ts := range agg.terms {
		if ts.broken {
			continue
		}
		if !agg.alwaysscan && !strings.Contains(text, ts.literal) {
			continue
		}

		marked, n := ts.hl.Mark(text)
		if n == 0 {
			continue
		}

		if agg.max == 0 || len(ts.tally.Examples) < agg.max {
			ts.tally.Examples = append(ts.tally.Examples, str.ExampleRow{
				LineNumber:  linenumber,
				Ref:         ref,
				Highlighted: marked,
			})
		}
		ts.tally.Count += n
	}
}

// Tallies - the accumulators in the order the terms arrived
func (agg *Aggregator) Tallies() []*str.TermTally {
	tt := make([]*str.TermTally, len(agg.terms))
	for i, ts := range agg.terms {
		tt[i] = ts.tally
	}
	return tt
}

// ScanFile - stream the corpus (and any reference file) through an Aggregator
//
// the reference file is read in lockstep: if it runs short the remaining refs are empty
func ScanFile(cfg *str.CurrentConfiguration) ([]*str.TermTally, error) {
	fin, e := os.Open(cfg.InputFile)
	if e != nil {
		return nil, fmt.Errorf("could not open the input file '%s': %w", cfg.InputFile, e)
	}
	defer func() { _ = fin.Close() }()

	var refscan *bufio.Scanner
	if cfg.RefFile != "" {
		fref, e := os.Open(cfg.RefFile)
		if e != nil {
			return nil, fmt.Errorf("could not open the reference file '%s': %w", cfg.RefFile, e)
		}
		defer func() { _ = fref.Close() }()
		refscan = bufio.NewScanner(fref)
		refscan.Buffer(make([]byte, 0, 64*1024), vv.MAXLINELEN)
	}

	agg := NewAggregator(cfg)

	scan := bufio.NewScanner(fin)
	scan.Buffer(make([]byte, 0, 64*1024), vv.MAXLINELEN)

	ln := 0
	for scan.Scan() {
		ln += 1
		ref := ""
		if refscan != nil && refscan.Scan() {
			ref = strings.TrimSpace(refscan.Text())
		}
		agg.Absorb(ln, ref, scan.Text())
	}

	if e := scan.Err(); e != nil {
		return nil, fmt.Errorf("reading '%s' failed at line %d: %w", cfg.InputFile, ln, e)
	}

	// a reference read error and a short reference file both end refscan.Scan();
	// only Err() can tell them apart
	if refscan != nil {
		if e := refscan.Err(); e != nil {
			return nil, fmt.Errorf("reading the reference file '%s' failed: %w", cfg.RefFile, e)
		}
	}

	Msg.PEEK(fmt.Sprintf("scanned %d lines from '%s'", ln, cfg.InputFile))

	return agg.Tallies(), nil
}
