package main

import (
	"github.com/zan8in/faviquery/pkg/faviquery"
	"github.com/zan8in/gologger"
)

func main() {
	options := faviquery.ParseOptions()

	runner, err := faviquery.NewRunner(options)
	if err != nil {
		gologger.Fatal().Msgf("Could not create runner: %s\n", err)
	}

	if err := runner.Run(); err != nil {
		gologger.Fatal().Msgf("Program exiting: %s\n", err)
	}
}
