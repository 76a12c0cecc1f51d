package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/coding4m/ot/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// Command failures already rendered themselves through the
		// formatter; only flag/usage errors still need printing.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
