package main

import (
	"os"

	"github.com/docverse/prlint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
