package cli

import (
	"github.com/spf13/cobra"
)

// GlobalFlags holds global flag values
type GlobalFlags struct {
	ConfigFile string
	Verbose    bool
	Quiet      bool
}

var globalFlags GlobalFlags

// AddGlobalFlags adds global flags to the root command
func AddGlobalFlags(cmd *cobra.Command) {
	globalFlags = GlobalFlags{}

	cmd.PersistentFlags().StringVar(
		&globalFlags.ConfigFile,
		"config",
		"",
		"config file (default is $XDG_CONFIG_HOME/sortnorris/config.yaml)",
	)
	cmd.PersistentFlags().BoolVarP(
		&globalFlags.Verbose,
		"verbose",
		"v",
		false,
		"report every directory created and file moved",
	)
	cmd.PersistentFlags().BoolVarP(
		&globalFlags.Quiet,
		"quiet",
		"q",
		false,
		"suppress non-error output",
	)
}
