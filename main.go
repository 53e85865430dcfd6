package main

import (
	"os"

	"github.com/ohsu-comp-bio/snakesub/cmd"
	"github.com/ohsu-comp-bio/snakesub/logger"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		logger.PrintSimpleError(err)
		os.Exit(cmd.ExitStatus(err))
	}
}
