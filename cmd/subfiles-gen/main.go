// Command subfiles-gen writes main.tex with a \subfile directive for every
// .tex fragment found in ./subfiles, in filename order.
package main

import (
	"context"
	"os"

	"github.com/goliatone/go-subfiles/internal/cli"
	"github.com/goliatone/go-subfiles/internal/logging"
)

func main() {
	logger := logging.ConfigureRuntime("subfiles-gen")

	os.Exit(cli.Run(context.Background(), cli.Options{
		Stdout: os.Stdout,
		Logger: logger,
	}))
}
