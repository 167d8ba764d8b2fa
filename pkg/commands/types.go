package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/pokedex/pkg/commands/options"
	"tableflip.dev/pokedex/pkg/runner/types"
)

func addTypes(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the types the catalog can be filtered by",
		Example: `
pokedex types
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv()
			if err != nil {
				return err
			}
			t := types.Types{
				Service: e.dex,
				JSON:    output.JSON,
				Out:     stdout(cmd),
			}
			err = t.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func typeCompletions(cmd *cobra.Command, toComplete string) []string {
	e, err := loadEnv()
	if err != nil {
		return nil
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cats, err := e.dex.Categories(ctx)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		if strings.HasPrefix(c.ID, strings.ToLower(toComplete)) {
			out = append(out, c.ID)
		}
	}
	return out
}
