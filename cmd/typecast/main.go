// Package main provides the typecast CLI.
package main

import (
	"os"

	"github.com/scalarlab/typecast/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
