package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/pokedex/pkg/commands/options"
	"tableflip.dev/pokedex/pkg/prompt"
	"tableflip.dev/pokedex/pkg/runner/trainer"
)

func addTrainer(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "trainer [name]",
		Short: "Enter your trainer name",
		Long: options.Wrap80(`Validate a trainer name and print the greeting shown above the
catalog. Without a name you are prompted for one. Set "trainer" in
.pokedex.yaml or pass --trainer to use the name with other commands.`),
		Example: `
pokedex trainer Ash
pokedex trainer
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv()
			if err != nil {
				return err
			}
			t := trainer.Trainer{
				Trainer: e.trainer,
				JSON:    output.JSON,
				Out:     stdout(cmd),
			}
			if len(args) == 1 {
				t.Name = args[0]
			} else {
				p := prompt.IO{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
				t.Prompt = p.TrainerName
			}
			err = t.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
