// growlme - run a command, growl the result
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/growlme

package main

import (
	"os"

	"github.com/ariel-frischer/growlme/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
