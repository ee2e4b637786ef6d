//    SearchVizGo
//    Copyright: The SearchVizGo Authors 2026
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package search

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpustools/SearchVizGo/internal/lnch"
	"github.com/corpustools/SearchVizGo/internal/str"
	"github.com/corpustools/SearchVizGo/internal/vv"
)

func testcfg(terms ...string) *str.CurrentConfiguration {
	cfg := lnch.BuildDefaultConfig()
	cfg.SearchTerms = terms
	return cfg
}

func TestAggregatorKingDavid(t *testing.T) {
	cfg := testcfg("David")
	agg := NewAggregator(cfg)

	agg.Absorb(1, "", "The king David ruled.")
	agg.Absorb(2, "", "No match here.")

	tt := agg.Tallies()
	require.Len(t, tt, 1)
	assert.Equal(t, 1, tt[0].Count)
	require.Len(t, tt[0].Examples, 1)
	assert.Equal(t, 1, tt[0].Examples[0].LineNumber)
	assert.Contains(t, tt[0].Examples[0].Highlighted, `<span style="color:red;">David</span>`)
}

func TestAggregatorTotalKeepsGrowingPastTheCap(t *testing.T) {
	cfg := testcfg("cat")
	cfg.MaxExamples = 2
	agg := NewAggregator(cfg)

	agg.Absorb(1, "", "cat")
	agg.Absorb(2, "", "cat cat")
	agg.Absorb(3, "", "cat")
	agg.Absorb(4, "", "cat")

	tt := agg.Tallies()
	assert.Equal(t, 5, tt[0].Count)
	assert.Len(t, tt[0].Examples, 2)
}

func TestAggregatorNoCapMeansEveryMatchingLine(t *testing.T) {
	cfg := testcfg("cat")
	agg := NewAggregator(cfg)

	for i := 1; i <= 40; i++ {
		agg.Absorb(i, "", "a cat")
	}

	tt := agg.Tallies()
	assert.Equal(t, 40, tt[0].Count)
	assert.Len(t, tt[0].Examples, 40)
}

func TestAggregatorPrefilterIsCaseSensitive(t *testing.T) {
	cfg := testcfg("David")
	agg := NewAggregator(cfg)
	agg.Absorb(1, "", "david ruled")

	assert.Equal(t, 0, agg.Tallies()[0].Count)

	cfg = testcfg("David")
	cfg.IgnoreCase = true
	agg = NewAggregator(cfg)
	agg.Absorb(1, "", "david ruled")

	assert.Equal(t, 1, agg.Tallies()[0].Count)
}

func TestAggregatorBadRegexDegradesGracefully(t *testing.T) {
	cfg := testcfg("[", "cat")
	cfg.AsRegex = true
	agg := NewAggregator(cfg)

	agg.Absorb(1, "", "a cat sat")

	tt := agg.Tallies()
	require.Len(t, tt, 2)
	assert.Equal(t, 0, tt[0].Count)
	assert.Empty(t, tt[0].Examples)
	assert.Equal(t, 1, tt[1].Count)
}

func TestAggregatorDecodesEscapedTerms(t *testing.T) {
	cfg := testcfg(`\u0044avid`)
	agg := NewAggregator(cfg)

	agg.Absorb(1, "", "King David")

	tt := agg.Tallies()
	assert.Equal(t, "David", tt[0].Term)
	assert.Equal(t, 1, tt[0].Count)
}

func TestAggregatorCountEqualsSumOfLineCounts(t *testing.T) {
	cfg := testcfg("an")
	agg := NewAggregator(cfg)

	lines := []string{"banana", "an anvil and an apple", "nothing", "an"}
	perline := []int{2, 4, 0, 1}

	total := 0
	for i, l := range lines {
		agg.Absorb(i+1, "", l)
		total += perline[i]
	}

	assert.Equal(t, total, agg.Tallies()[0].Count)
}

func writetemp(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestScanFileWithReferenceIDs(t *testing.T) {
	dir := t.TempDir()
	in := writetemp(t, dir, "corpus.txt", "In the beginning\nwas the word\nthe end\n")
	refs := writetemp(t, dir, "vref.txt", "GEN 1:1\nGEN 1:2\n")

	cfg := testcfg("the")
	cfg.InputFile = in
	cfg.RefFile = refs

	tt, e := ScanFile(cfg)
	require.NoError(t, e)
	require.Len(t, tt, 1)
	require.Len(t, tt[0].Examples, 3)

	assert.Equal(t, "GEN 1:1", tt[0].Examples[0].Ref)
	assert.Equal(t, "GEN 1:2", tt[0].Examples[1].Ref)
	// reference file ran short: the decision is an empty id, not a crash
	assert.Equal(t, "", tt[0].Examples[2].Ref)
}

func TestScanFileReferenceReadError(t *testing.T) {
	// an unreadable reference line must be fatal, not mistaken for a short file
	dir := t.TempDir()
	in := writetemp(t, dir, "corpus.txt", "a cat\na dog\n")
	refs := writetemp(t, dir, "vref.txt", strings.Repeat("x", vv.MAXLINELEN+1)+"\n")

	cfg := testcfg("cat")
	cfg.InputFile = in
	cfg.RefFile = refs

	_, e := ScanFile(cfg)
	require.Error(t, e)
	assert.Contains(t, e.Error(), "reference file")
}

func TestScanFileMissingInput(t *testing.T) {
	cfg := testcfg("cat")
	cfg.InputFile = filepath.Join(t.TempDir(), "no-such-file.txt")

	_, e := ScanFile(cfg)
	assert.Error(t, e)
}
