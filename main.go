package main

import (
	"os"

	"github.com/stepsync/companion/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
