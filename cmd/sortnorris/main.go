package main

import (
	"fmt"
	"os"

	"github.com/sdejongh/sortnorris/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version, cli.Commit, cli.BuildDate = version, commit, date

	rootCmd := cli.NewRootCommand(cli.VersionString())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
