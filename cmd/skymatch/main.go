// Package main provides the entry point for the skymatch CLI tool.
package main

import (
	"github.com/almagest-io/skymatch/cmd/skymatch/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
