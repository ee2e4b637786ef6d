//    SearchVizGo
//    Copyright: The SearchVizGo Authors 2026
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/corpustools/SearchVizGo/internal/mm"
	"github.com/corpustools/SearchVizGo/internal/str"
	"github.com/corpustools/SearchVizGo/internal/vv"
)

var (
	Config *str.CurrentConfiguration
	Msg    = mm.NewMessageMaker()
)

// ConfigAtLaunch - defaults, then whatever a config file has to say; the flags override both later
func ConfigAtLaunch() {
	Config = BuildDefaultConfig()
	readconfigfile()
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with the stock values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.MaxExamples = vv.DEFAULTMAXEXAMPLES
	c.IgnoreCase = false
	c.AsRegex = false
	c.FullTokenOnly = false
	c.TokenColor = vv.DEFAULTTOKENCOLOR
	c.MatchColor = vv.DEFAULTMATCHCOLOR
	c.LogLevel = vv.DEFAULTLOGLEVEL
	c.BlackAndWhite = vv.BLACKANDWHITE
	c.ProfileCPU = false
	c.ProfileMEM = false
	return &c
}

// readconfigfile - look for svz-conf.json beside us and then in ~/.config/; no file is no problem
func readconfigfile() {
	const (
		FAIL = `Could not parse '%s'. Skipping it and using built-in defaults instead.`
		FYI  = `'%s' loaded`
	)

	// only the cosmetic knobs live in the file
	type ConfigFile struct {
		TokenColor    string
		MatchColor    string
		LogLevel      int
		BlackAndWhite bool
	}

	locations := []string{fmt.Sprintf("%s/%s", vv.CONFIGLOCATION, vv.CONFIGNAME)}
	if uh, e := os.UserHomeDir(); e == nil {
		locations = append(locations, fmt.Sprintf(vv.CONFIGALTAPTH, uh)+vv.CONFIGNAME)
	}

	for _, loc := range locations {
		file, e := os.Open(loc)
		if e != nil {
			continue
		}

		decoder := json.NewDecoder(file)
		conf := ConfigFile{
			TokenColor: Config.TokenColor,
			MatchColor: Config.MatchColor,
			LogLevel:   Config.LogLevel,
		}
		err := decoder.Decode(&conf)
		_ = file.Close()

		if err != nil {
			Msg.WARN(fmt.Sprintf(FAIL, loc))
			continue
		}

		Config.TokenColor = conf.TokenColor
		Config.MatchColor = conf.MatchColor
		Config.LogLevel = conf.LogLevel
		Config.BlackAndWhite = conf.BlackAndWhite
		Msg.TMI(fmt.Sprintf(FYI, loc))
		return
	}
}

// UpdateMessageMakerWithConfig - let the messenger know what the flags decided
func UpdateMessageMakerWithConfig() {
	Msg.BW = Config.BlackAndWhite
	Msg.LLvl = Config.LogLevel
}
