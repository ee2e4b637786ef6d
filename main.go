//    SearchVizGo
//    Copyright: The SearchVizGo Authors 2026
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"github.com/corpustools/SearchVizGo/cmd"
	"github.com/corpustools/SearchVizGo/internal/lnch"
)

func main() {
	// EC is a no-op on a nil error; otherwise it reports and exits non-zero
	lnch.Msg.EC(cmd.Execute())
}
