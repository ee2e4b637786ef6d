//    SearchVizGo
//    Copyright: The SearchVizGo Authors 2026
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

// Package cmd carries the CLI surface of SearchVizGo
package cmd

import (
	"fmt"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/corpustools/SearchVizGo/internal/lnch"
	"github.com/corpustools/SearchVizGo/internal/report"
	"github.com/corpustools/SearchVizGo/internal/search"
	"github.com/corpustools/SearchVizGo/internal/vv"
)

var (
	flaginput        string
	flagoutput       string
	flagrefs         string
	flagterms        []string
	flagmaxn         int
	flagignorecase   bool
	flagnoignorecase bool
	flagregex        bool
	flagnoregex      bool
	flagfulltoken    bool
	flagloglevel     int
	flagbw           bool
	flagpc           bool
	flagpm           bool
)

var rootCmd = &cobra.Command{
	Use:   "searchviz",
	Short: "scan a text corpus for search terms and write an HTML report of highlighted matches",
	Long: vv.MYNAME + ` scans a plain-text corpus line by line for one or more search terms and
writes a single static HTML report: matches are highlighted in context, each
example row carries its line number and (optionally) a reference ID, and every
term gets a total match count.

Example usage:
  searchviz -i corpus.txt -o report.html -s David
  searchviz -i corpus.txt -o report.html -r vref.txt -s 'King David' --ignore_case
  searchviz -i wlc.txt -o order.html -r vref.txt -s '\u05B7\u05BD' -s '\u05BD\u05B7' -n 20

Project home: ` + vv.PROJURL,
	Version:       vv.VERSION,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runsearch,
}

// Execute - hand control to cobra
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flaginput, "input_filename", "i", "", "plain-text corpus, one record per line")
	f.StringVarP(&flagoutput, "output_filename", "o", "", "where to write the HTML report")
	f.StringVarP(&flagrefs, "snt_id_filename", "r", "", "reference ID file, e.g. vref.txt, aligned line-by-line with the input")
	f.StringArrayVarP(&flagterms, "search_term", "s", nil, "search term; repeat the flag for several; \\uXXXX escapes welcome")
	f.IntVarP(&flagmaxn, "max_n_examples", "n", vv.DEFAULTMAXEXAMPLES, "cap on example rows shown per term (0 = no cap; totals are never capped)")
	f.BoolVar(&flagignorecase, "ignore_case", false, "case-insensitive matching")
	f.BoolVar(&flagnoignorecase, "no-ignore_case", false, "force case-sensitive matching")
	f.BoolVar(&flagregex, "regex", false, "interpret search terms as regular expressions")
	f.BoolVar(&flagnoregex, "no-regex", false, "force literal matching")
	f.BoolVar(&flagfulltoken, "full_token_only", false, "only count hits that are whole whitespace-delimited tokens")
	f.IntVar(&flagloglevel, "gl", vv.DEFAULTLOGLEVEL, "diagnostic log level (0-5)")
	f.BoolVar(&flagbw, "bw", false, "monochrome diagnostics")
	f.BoolVar(&flagpc, "pc", false, "profile cpu usage")
	f.BoolVar(&flagpm, "pm", false, "profile memory usage")

	_ = rootCmd.MarkFlagRequired("input_filename")
	_ = rootCmd.MarkFlagRequired("output_filename")
	_ = rootCmd.MarkFlagRequired("search_term")
}

// runsearch - flags into config, scan, report, diagnostics
func runsearch(cmd *cobra.Command, args []string) error {
	const (
		BANNER = "%s v.%s [loglevel=%d]"
		TERMDX = "Search term: %s (%sfound %d %s)"
		WROTE  = "Wrote results to C3%sC0"
	)

	lnch.ConfigAtLaunch()
	cfg := lnch.Config

	cfg.InputFile = flaginput
	cfg.OutputFile = flagoutput
	cfg.RefFile = flagrefs
	cfg.SearchTerms = flagterms
	cfg.MaxExamples = flagmaxn
	cfg.FullTokenOnly = flagfulltoken

	if flagignorecase {
		cfg.IgnoreCase = true
	}
	if flagnoignorecase {
		cfg.IgnoreCase = false
	}
	if flagregex {
		cfg.AsRegex = true
	}
	if flagnoregex {
		cfg.AsRegex = false
	}

	if cmd.Flags().Changed("gl") {
		cfg.LogLevel = flagloglevel
	}
	if flagbw {
		cfg.BlackAndWhite = true
	}
	cfg.ProfileCPU = flagpc
	cfg.ProfileMEM = flagpm

	lnch.UpdateMessageMakerWithConfig()
	Msg := lnch.Msg
	Msg.FYI(fmt.Sprintf(BANNER, vv.MYNAME, vv.VERSION, cfg.LogLevel))

	if cfg.ProfileCPU {
		defer profile.Start().Stop()
	} else if cfg.ProfileMEM {
		defer profile.Start(profile.MemProfile).Stop()
	}

	tallies, e := search.ScanFile(cfg)
	if e != nil {
		return e
	}

	loc, e := report.Write(cfg, tallies)
	if e != nil {
		return e
	}

	for _, t := range tallies {
		instances := "instances"
		if t.Count == 1 {
			instances = "instance"
		}
		Msg.CRIT(fmt.Sprintf(TERMDX, t.Term, report.Qualifiers(cfg), t.Count, instances))
	}
	Msg.MAND(Msg.Color(fmt.Sprintf(WROTE, loc)))

	return nil
}
