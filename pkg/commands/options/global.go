package options

import (
	"github.com/spf13/cobra"
)

// GlobalOptions are the persistent flags shared by every command.
type GlobalOptions struct {
	Config  string
	Trainer string
	Verbose bool
	NoColor bool
}

func AddGlobalArgs(cmd *cobra.Command, o *GlobalOptions) {
	cmd.PersistentFlags().StringVar(&o.Config, "config", "",
		"Config file (default searches $POKEDEX_CONFIG_PATH, ./ and ~ for .pokedex.yaml).")
	cmd.PersistentFlags().StringVar(&o.Trainer, "trainer", "",
		"Trainer name used in greetings.")
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log debug diagnostics to stderr.")
	cmd.PersistentFlags().BoolVar(&o.NoColor, "no-color", false,
		"Disable colored output.")
}
