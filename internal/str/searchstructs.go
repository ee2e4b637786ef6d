//    SearchVizGo
//    Copyright: The SearchVizGo Authors 2026
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

// CurrentConfiguration - everything a run needs to know; built from defaults, config file, and flags
type CurrentConfiguration struct {
	InputFile     string
	OutputFile    string
	RefFile       string
	SearchTerms   []string
	MaxExamples   int // 0 = unlimited
	IgnoreCase    bool
	AsRegex       bool
	FullTokenOnly bool
	TokenColor    string
	MatchColor    string
	LogLevel      int
	BlackAndWhite bool
	ProfileCPU    bool
	ProfileMEM    bool
}

// TermQuery - one decoded search term plus the switches that govern its matching
type TermQuery struct {
	Term          string
	IgnoreCase    bool
	AsRegex       bool
	FullTokenOnly bool
	TokenColor    string
	MatchColor    string
}

// ExampleRow - one matching line destined for a term's example table
type ExampleRow struct {
	LineNumber  int
	Ref         string
	Highlighted string
}

// TermTally - per-term accumulator: a running total plus a capped list of example rows
//
// Count keeps growing past the cap; Examples never exceeds it.
type TermTally struct {
	Term     string
	Count    int
	Examples []ExampleRow
}
