// Package main provides the entry point for linkdu.
//
// linkdu reports disk usage for one or more paths, counting files reached
// through several hard links only once.
//
// Usage:
//
//	linkdu [flags] [path...]
//
// See --help for all available options.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/linkdu/internal/cli"
)

// version is the application version, set via ldflags.
//
//nolint:gochecknoglobals // Set at build time
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
