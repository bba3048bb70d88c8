// Package main implements the ttc-alerts CLI.
package main

import (
	"os"
	_ "time/tzdata"
)

// version information
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
