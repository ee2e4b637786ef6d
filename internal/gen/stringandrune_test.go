//    SearchVizGo
//    Copyright: The SearchVizGo Authors 2026
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"strings"
	"testing"
)

func TestDecodeUnicodeEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single escape", `\u0041`, "A"},
		{"no escapes", "King David", "King David"},
		{"several escapes", `\u05B7\u05BD`, "\u05B7\u05BD"},
		{"escape in the middle", `d\u0061vid`, "david"},
		{"malformed too short", `\u12`, `\u12`},
		{"malformed then wellformed", `\u12 \u0041`, `\u12 A`},
		{"lowercase hex", `\u00e9`, "\u00e9"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeUnicodeEscape(tt.in); got != tt.want {
				t.Errorf("DecodeUnicodeEscape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGuardHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`<a href="x">`, `&lt;a href=&quot;x&quot;&gt;`},
		{"fish & chips", "fish &amp; chips"},
		{"plain text", "plain text"},
		{`<>&"`, `&lt;&gt;&amp;&quot;`},
	}

	for _, tt := range tests {
		got := GuardHTML(tt.in)
		if got != tt.want {
			t.Errorf("GuardHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
		for _, raw := range []string{"<", ">", `"`} {
			if strings.Contains(got, raw) {
				t.Errorf("GuardHTML(%q) left a raw %q in %q", tt.in, raw, got)
			}
		}
	}
}

func TestIsPrintableASCII(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"David", true},
		{"King David!", true},
		{"ἡμέρα", false},
		{"a\tb", false},
		{"", false},
		{"ַ", false},
	}

	for _, tt := range tests {
		if got := IsPrintableASCII(tt.in); got != tt.want {
			t.Errorf("IsPrintableASCII(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
