package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/pokedex/pkg/commands/options"
	"tableflip.dev/pokedex/pkg/runner/moves"
)

func addMoves(topLevel *cobra.Command) {
	mo := &options.MovesOptions{}

	cmd := &cobra.Command{
		Use:   "moves <id|name>",
		Short: "Search the moves of one Pokémon",
		Example: `
pokedex moves charizard
pokedex moves 6 --query fl --order desc
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			q, err := mo.FilterQuery()
			if err != nil {
				return output.HandleError(err)
			}
			e, err := loadEnv()
			if err != nil {
				return err
			}
			m := moves.Moves{
				Service: e.dex,
				Key:     args[0],
				Query:   q,
				JSON:    output.JSON,
				Out:     stdout(cmd),
			}
			err = m.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddMovesArgs(cmd, mo)
	options.AddOutputArg(cmd, output)
	_ = cmd.RegisterFlagCompletionFunc("order", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"asc", "desc"}, cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
