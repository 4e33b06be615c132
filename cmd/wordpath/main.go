// Package main provides the entry point for the wordpath CLI.
package main

import (
	"os"

	"github.com/katalvlaran/wordpath/cmd/wordpath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
