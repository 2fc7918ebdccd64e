package main

import (
	"os"

	"github.com/exampartner/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
