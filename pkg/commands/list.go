package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/pokedex/pkg/commands/options"
	"tableflip.dev/pokedex/pkg/filter"
	"tableflip.dev/pokedex/pkg/prompt"
	"tableflip.dev/pokedex/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	co := &options.CatalogOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List a page of Pokémon",
		Long: options.Wrap80(`List one page of the Pokédex. Pages hold a fixed number of
cards; the line under the table shows where the page sits among its neighbours.
Switching --type always starts again from page 1.`),
		Example: `
pokedex list
pokedex list --page 3
pokedex list --type fire --sort weight
pokedex list -i
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv()
			if err != nil {
				return err
			}

			if i.Interactive {
				cats, err := e.dex.Categories(cmd.Context())
				if err != nil {
					return output.HandleError(err)
				}
				p := prompt.IO{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
				if co.Type, err = p.Category(cats); err != nil {
					return err
				}
				co.Page = 1
			}

			req, err := co.Request()
			if err != nil {
				return output.HandleError(err)
			}
			l := list.List{
				Service: e.dex,
				Trainer: e.trainer,
				Request: req,
				JSON:    output.JSON,
				Out:     stdout(cmd),
			}
			err = l.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddCatalogArgs(cmd, co)
	options.InteractiveArgs(cmd, i)
	options.AddOutputArg(cmd, output)

	_ = cmd.RegisterFlagCompletionFunc("type", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return typeCompletions(cmd, toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("sort", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		keys := make([]string, 0, len(filter.SortKeys()))
		for _, k := range filter.SortKeys() {
			keys = append(keys, string(k))
		}
		return keys, cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
