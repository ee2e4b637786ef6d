//    SearchVizGo
//    Copyright: The SearchVizGo Authors 2026
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package report

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/unicode/runenames"

	"github.com/corpustools/SearchVizGo/internal/gen"
	"github.com/corpustools/SearchVizGo/internal/str"
	"github.com/corpustools/SearchVizGo/internal/vv"
)

// Write - assemble the report and save it; returns the absolute path to the file written
func Write(cfg *str.CurrentConfiguration, tallies []*str.TermTally) (string, error) {
	const (
		TITLE = "Searching file %s"
	)

	fout, e := os.OpenFile(cfg.OutputFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, vv.WRITEPERMS)
	if e != nil {
		return "", fmt.Errorf("could not write the output file '%s': %w", cfg.OutputFile, e)
	}

	w := bufio.NewWriter(fout)
	title := fmt.Sprintf(TITLE, cfg.InputFile)
	date := time.Now().Format(vv.REPORTDATEFMT)
	fmt.Fprintf(w, vv.HTMLHEAD, vv.MYNAME, gen.GuardHTML(title), date, vv.MYNAME, vv.VERSION)

	for _, t := range tallies {
		w.WriteString(TermSummary(cfg, t))
		w.WriteString(ExampleTable(t))
	}

	w.WriteString(vv.HTMLFOOT)

	if e = w.Flush(); e != nil {
		_ = fout.Close()
		return "", fmt.Errorf("could not write the output file '%s': %w", cfg.OutputFile, e)
	}
	if e = fout.Close(); e != nil {
		return "", fmt.Errorf("could not write the output file '%s': %w", cfg.OutputFile, e)
	}

	abs, e := filepath.Abs(cfg.OutputFile)
	if e != nil {
		abs = cfg.OutputFile
	}
	return abs, nil
}

// TermSummary - the per-term header: the term, its qualifiers, and a pluralized count
//
// a term with characters beyond printable ASCII is not shown literally: you get a code point
// table instead, because nobody can eyeball the difference between two diacritic orderings
func TermSummary(cfg *str.CurrentConfiguration, t *str.TermTally) string {
	prt := message.NewPrinter(language.English)
	count := prt.Sprintf("%d", t.Count)

	instances := "instances"
	if t.Count == 1 {
		instances = "instance"
	}

	qual := Qualifiers(cfg)

	if gen.IsPrintableASCII(t.Term) {
		return fmt.Sprintf(vv.SUMMARYTMPL, gen.GuardHTML(t.Term), qual, count, instances)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(vv.SUMMARYBLANKTMPL, qual, count, instances))
	sb.WriteString(CodePointTable(t.Term))
	return sb.String()
}

// Qualifiers - "case-insensitive, " and/or "regex, " as the run warrants
func Qualifiers(cfg *str.CurrentConfiguration) string {
	q := ""
	if cfg.IgnoreCase {
		q += "case-insensitive, "
	}
	if cfg.AsRegex {
		q += "regex, "
	}
	return q
}

// CodePointTable - one row per character: the glyph, U+XXXX, and the unicode name
func CodePointTable(term string) string {
	var sb strings.Builder
	sb.WriteString("<table>\n")
	for _, r := range term {
		sb.WriteString(fmt.Sprintf(vv.CPROWTMPL, gen.GuardHTML(string(r)), r, runenames.Name(r)))
	}
	sb.WriteString("</table>\n")
	return sb.String()
}

// ExampleTable - the example rows recorded for one term: line number, reference id, highlighted line
func ExampleTable(t *str.TermTally) string {
	var sb strings.Builder
	sb.WriteString("<p>\n<table>\n")
	for _, r := range t.Examples {
		sb.WriteString(fmt.Sprintf(vv.EXROWTMPL, r.LineNumber, gen.GuardHTML(r.Ref), r.Highlighted))
	}
	sb.WriteString("</table>\n")
	return sb.String()
}
