//    SearchVizGo
//    Copyright: The SearchVizGo Authors 2026
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

//
// HTML TEMPLATES
//

// the report is one self-contained document: inline styling only, no external assets

const (
	// HTMLHEAD - %s: page title; %s: report title; %s: date; %s + %s: program name and version
	HTMLHEAD = `<html>
    <head>
        <meta http-equiv="Content-Type" content="text/html; charset=UTF-8">
        <title>%s</title>
    </head>
    <body bgcolor="#FFFFEE">
        <table width="100%%" border="0" cellpadding="0" cellspacing="0">
            <tr bgcolor="#BBCCFF">
                <td><table border="0" cellpadding="3" cellspacing="0">
                        <tr>
                            <td><b><font class="large" size="+1">&nbsp; %s</font></b></td>
                            <td>&nbsp;&nbsp;&nbsp;%s&nbsp;&nbsp;&nbsp;</td>
                            <td style="color:#777777;font-size:80%%;">%s &nbsp; v.%s</td>
                        </tr>
                    </table>
                </td>
            </tr>
        </table><p>
`

	HTMLFOOT = `    </body>
</html>
`

	// TOKENSPANTMPL - %s: background color for the whitespace-delimited token around a hit
	TOKENSPANTMPL = `<span style="background-color:%s;">`

	// MATCHSPANTMPL - %s: foreground color for the matched text itself
	MATCHSPANTMPL = `<span style="color:%s;">`

	SPANCLOSE = `</span>`

	// SUMMARYTMPL - %s: guarded term; %s: qualifiers; %s: grouped count; %s: instance(s)
	SUMMARYTMPL = "<p>\n<b>Search term:</b> %s &nbsp; (%sfound %s %s)<p>\n"

	// SUMMARYBLANKTMPL - as above but the term itself is unprintable and so omitted
	SUMMARYBLANKTMPL = "<p>\n<b>Search term:</b> &nbsp; (%sfound %s %s)\n"

	// CPROWTMPL - %s: the character; %04X: its code point; %s: its unicode name
	CPROWTMPL = "    <tr><td>%s</td><td>U+%04X</td><td>%s</td></tr>\n"

	// EXROWTMPL - %d: line number; %s: reference id; %s: highlighted line
	EXROWTMPL = `    <tr><td align="right" style="color:#AAAAAA;">%d</td><td>&nbsp;</td><td><nobr>%s</nobr></td><td>&nbsp;</td><td>%s</td></tr>` + "\n"
)
