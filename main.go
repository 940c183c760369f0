package main

import (
	"os"

	"github.com/AnthonyHerman/cvefeed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
