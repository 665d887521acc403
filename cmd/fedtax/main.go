// Package main provides the fedtax command-line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/fedtax/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
