package main

import (
	"github.com/projectdiscovery/gologger"

	"github.com/duskwolf/zonecrawler/pkg/runner"
)

func main() {
	options := runner.ParseOptions()

	r, err := runner.New(options)
	if err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}

	if err := r.Run(); err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}
}
