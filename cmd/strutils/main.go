package main

import (
	"os"

	"github.com/Wosser1sProductions/utils/cmd/strutils/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
