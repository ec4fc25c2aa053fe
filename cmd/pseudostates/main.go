// Package main provides the pseudostates CLI tool for rewriting stylesheets
// with forced pseudo-state selectors.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	defer syncLogger()

	if err := rootCmd.Execute(); err != nil {
		// Check failures have already been reported
		if !errors.Is(err, errCheckFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		syncLogger()
		os.Exit(1)
	}
}
