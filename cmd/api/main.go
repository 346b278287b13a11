package main

import (
	"fmt"

	"github.com/zan8in/faviquery/pkg/faviquery"
)

func main() {
	scanner, err := faviquery.NewScanner(&faviquery.Options{
		Concurrency: 8,
	})
	if err != nil {
		panic(err)
	}

	if err := scanner.Run(); err != nil {
		panic(err)
	}

	for entry := range scanner.Result.GetEntries() {
		fmt.Printf("%s\t%s\n", entry.Template, entry.Line())
	}
}
