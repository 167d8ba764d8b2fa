package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/pokedex/pkg/commands/options"
	"tableflip.dev/pokedex/pkg/config"
	"tableflip.dev/pokedex/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the effective configuration and where it was read from.",
		Example: `
pokedex info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			c, err := config.Load(global.Config)
			if err != nil {
				return output.HandleError(err)
			}
			s := info.Info{
				Config: c,
				JSON:   output.JSON,
				Out:    stdout(cmd),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
