// Command subfiles-clean strips standalone-only declarations (biblatex
// imports, \title, \author, \date) from every fragment in ./subfiles, then
// writes main.tex like subfiles-gen.
package main

import (
	"context"
	"os"

	"github.com/goliatone/go-subfiles/internal/cli"
	"github.com/goliatone/go-subfiles/internal/logging"
)

func main() {
	logger := logging.ConfigureRuntime("subfiles-clean")

	os.Exit(cli.Run(context.Background(), cli.Options{
		Clean:  true,
		Stdout: os.Stdout,
		Logger: logger,
	}))
}
