package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/pokedex/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
pokedex ui
pokedex ui --trainer Ash
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv()
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), tui.Options{
				Service: e.dex,
				Trainer: e.trainer,
				Logger:  e.logger,
				NoColor: global.NoColor,
			})
		},
	}

	topLevel.AddCommand(cmd)
}
