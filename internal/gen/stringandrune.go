//    SearchVizGo
//    Copyright: The SearchVizGo Authors 2026
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"regexp"
	"strconv"
	"strings"
)

//
// STRINGS and []RUNE
//

var (
	escfinder = regexp.MustCompile(`(?s)^(.*?)\\u([0-9A-Fa-f]{4})(.*)$`)
	printable = regexp.MustCompile(`^[\x20-\x7E]+$`)
	guard     = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// DecodeUnicodeEscape - turn every `\uXXXX` escape into its literal character
//
// scans left to right, one escape per pass; anything that is not four hex digits is left alone
func DecodeUnicodeEscape(s string) string {
	for {
		m := escfinder.FindStringSubmatch(s)
		if m == nil {
			return s
		}
		cp, e := strconv.ParseInt(m[2], 16, 32)
		if e != nil {
			// four hex digits always parse; this is unreachable
			return s
		}
		s = m[1] + string(rune(cp)) + m[3]
	}
}

// GuardHTML - escape &, <, > and " so corpus text can sit inside the report markup
func GuardHTML(s string) string {
	return guard.Replace(s)
}

// IsPrintableASCII - true if every character sits in the 0x20-0x7E range
//
// terms that fail this test are shown via a code point table instead of literally
func IsPrintableASCII(s string) bool {
	return printable.MatchString(s)
}
