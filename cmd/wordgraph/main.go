package main

import (
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/wordgraph/internal/runner"
)

func main() {
	cliOpts := runner.ParseFlags()

	r, err := runner.New(cliOpts, os.Stdout)
	if err != nil {
		gologger.Fatal().Msgf("failed to create wordgraph runner got %v", err)
	}
	if err := r.Run(); err != nil {
		gologger.Fatal().Msgf("wordgraph: %v", err)
	}
}
