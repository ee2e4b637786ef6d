//    SearchVizGo
//    Copyright: The SearchVizGo Authors 2026
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package search

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/corpustools/SearchVizGo/internal/gen"
	"github.com/corpustools/SearchVizGo/internal/str"
	"github.com/corpustools/SearchVizGo/internal/vv"
)

// the token-boundary patterns need lookbehind/lookahead; the stdlib engine will not compile them

const (
	// FULLTOKENTMPL - the hit must be a whole whitespace-delimited token
	FULLTOKENTMPL = `^(.*?)(\s*)(?<!\S)(%s)(?!\S)(\s*)(.*)$`

	// SUBSTRTMPL - the hit may sit anywhere inside a token; the token span swallows the token around it
	SUBSTRTMPL = `^(.*?)(\s?\S*?)(%s)(\S*\s|\S*)(.*)$`

	// INTOKENTMPL - further hits inside the remainder of the current token
	INTOKENTMPL = `^(.*?)(%s)(.*)$`
)

// Highlighter - precompiled patterns and markup for one search term
type Highlighter struct {
	outer     *regexp2.Regexp
	inner     *regexp2.Regexp
	tokopen   string
	matchopen string
}

// NewHighlighter - build the token-boundary and within-token patterns for a term
//
// a literal term is regex-quoted first; a bad user regex comes back as the error
func NewHighlighter(q str.TermQuery) (*Highlighter, error) {
	pat := q.Term
	if !q.AsRegex {
		pat = regexp.QuoteMeta(q.Term)
	}

	tmpl := SUBSTRTMPL
	if q.FullTokenOnly {
		tmpl = FULLTOKENTMPL
	}

	opts := regexp2.None
	if q.IgnoreCase {
		opts = regexp2.IgnoreCase
	}

	outer, e := regexp2.Compile(fmt.Sprintf(tmpl, pat), opts)
	if e != nil {
		return nil, e
	}

	inner, e := regexp2.Compile(fmt.Sprintf(INTOKENTMPL, pat), opts)
	if e != nil {
		return nil, e
	}

	return &Highlighter{
		outer:     outer,
		inner:     inner,
		tokopen:   fmt.Sprintf(vv.TOKENSPANTMPL, q.TokenColor),
		matchopen: fmt.Sprintf(vv.MATCHSPANTMPL, q.MatchColor),
	}, nil
}

// Mark - HTML-escape a line and wrap token/match spans around every occurrence of the term
//
// returns the marked-up line and the number of matches found in it
func (h *Highlighter) Mark(line string) (string, int) {
	var sb strings.Builder
	n := 0
	rest := line

	for {
		m := h.nexttoken(rest)
		if m == nil {
			break
		}

		g := m.Groups()
		posttokens := g[5].String()
		if len(posttokens) >= len(rest) {
			// a zero-width match made no forward progress; bail before spinning forever
			break
		}

		sb.WriteString(gen.GuardHTML(g[1].String()))
		sb.WriteString(h.tokopen)
		sb.WriteString(gen.GuardHTML(g[2].String()))
		sb.WriteString(h.matchopen)
		sb.WriteString(gen.GuardHTML(g[3].String()))
		sb.WriteString(vv.SPANCLOSE)
		n += 1

		marked, extra := h.expandwithintoken(g[4].String())
		sb.WriteString(marked)
		n += extra
		sb.WriteString(vv.SPANCLOSE)

		rest = posttokens
	}

	sb.WriteString(gen.GuardHTML(rest))
	return sb.String(), n
}

// nexttoken - locate the next token-boundary match in the remaining text
func (h *Highlighter) nexttoken(rest string) *regexp2.Match {
	m, e := h.outer.FindStringMatch(rest)
	if e != nil {
		// regexp2 only errors on a match timeout and none is set
		return nil
	}
	return m
}

// expandwithintoken - mark every further occurrence inside the remainder of the current token
//
// a token like "catcat" should light up twice even though the outer pattern only saw the first hit
func (h *Highlighter) expandwithintoken(rest string) (string, int) {
	var sb strings.Builder
	n := 0

	for {
		m, e := h.inner.FindStringMatch(rest)
		if e != nil || m == nil {
			break
		}

		g := m.Groups()
		if g[1].Length == 0 && g[2].Length == 0 {
			// zero-width: stop before emitting an empty match span
			break
		}

		sb.WriteString(gen.GuardHTML(g[1].String()))
		sb.WriteString(h.matchopen)
		sb.WriteString(gen.GuardHTML(g[2].String()))
		sb.WriteString(vv.SPANCLOSE)
		n += 1

		rest = g[3].String()
	}

	sb.WriteString(gen.GuardHTML(rest))
	return sb.String(), n
}
