//go:build !cgo
// +build !cgo

package main

import (
	"flag"
	"fmt"
	"os"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("Supermart %s (%s) %s\n", version, commit, date)
		return
	}

	fmt.Fprintln(os.Stderr, "Supermart requires a cgo/raylib enabled build.")
	os.Exit(1)
}
