// Package main provides the entry point for the evenflow CLI.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/evenflow/cmd/evenflow/commands"
)

func main() {
	err := commands.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
