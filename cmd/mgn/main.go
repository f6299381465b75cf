// Package main is the entry point for the mgn CLI tool.
package main

import (
	"os"

	"github.com/marginnotes/margin/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
