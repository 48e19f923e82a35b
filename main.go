package main

import (
	"os"

	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], version, commit, date))
}
