//    SearchVizGo
//    Copyright: The SearchVizGo Authors 2026
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MYNAME    = "SearchVizGo"
	SHORTNAME = "SVZ"
	VERSION   = "1.2.0"
	PROJURL   = "https://github.com/corpustools/SearchVizGo"

	CONFIGLOCATION = "."
	CONFIGALTAPTH  = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGNAME     = "svz-conf.json"

	DEFAULTLOGLEVEL    = 0
	DEFAULTMAXEXAMPLES = 0 // 0 = record an example row for every matching line
	DEFAULTTOKENCOLOR  = "yellow"
	DEFAULTMATCHCOLOR  = "red"
	BLACKANDWHITE      = false

	// generous: some corpora keep a whole verse or paragraph per line
	MAXLINELEN = 1024 * 1024

	REPORTDATEFMT = "January 02, 2006 at 15:04"
	WRITEPERMS    = 0644
)
