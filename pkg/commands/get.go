package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/pokedex/pkg/commands/options"
	"tableflip.dev/pokedex/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "get <id|name>",
		Short: "Show the detail page of one Pokémon",
		Long: options.Wrap80(`Show measurements, types, abilities and base stats of a
single Pokémon, looked up by national dex number or name.`),
		Example: `
pokedex get 25
pokedex get great-tusk
pokedex get pikachu --json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv()
			if err != nil {
				return err
			}
			g := get.Get{
				Service: e.dex,
				Key:     args[0],
				JSON:    output.JSON,
				Out:     stdout(cmd),
			}
			err = g.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
