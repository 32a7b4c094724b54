//go:build cgo
// +build cgo

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/brightlane-games/supermart/internal/config"
	"github.com/brightlane-games/supermart/internal/gui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		configPath  string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&configPath, "config", "", "path to a YAML config file")
	flag.Parse()

	if showVersion {
		fmt.Printf("Supermart %s (%s) %s\n", version, commit, date)
		return
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	app := gui.NewApp(gui.AppConfig{
		Version: version,
		Config:  cfg,
	})

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
