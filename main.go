package main

import (
	"os"

	"github.com/docnav/docnav/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
