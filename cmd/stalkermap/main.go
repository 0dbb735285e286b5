// Package main is the entry point for the stalkermap scan demo CLI: a
// thin wrapper around pkg/stalkermap, not part of the engine itself.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
