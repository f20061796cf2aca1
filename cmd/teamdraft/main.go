// Package main is the entry point for the teamdraft CLI.
package main

import (
	"fmt"
	"os"

	"github.com/ahrav/go-draft/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
