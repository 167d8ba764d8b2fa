package commands

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"tableflip.dev/pokedex/pkg/commands/options"
	"tableflip.dev/pokedex/pkg/runner/serve"
)

func addServe(topLevel *cobra.Command) {
	lo := &options.ListenOptions{}
	var origins []string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the catalog as a JSON HTTP API",
		Long: `Serve the catalog over HTTP:

  GET /api/pokemon?type=&page=&q=&sort=
  GET /api/pokemon/{idOrName}
  GET /api/pokemon/{idOrName}/moves?q=&order=
  GET /api/types
  GET /health
`,
		Example: `
pokedex serve
pokedex serve --port 9000 --allowed-origin https://dex.example.com
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			addr, err := lo.Addr()
			if err != nil {
				return err
			}
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s := serve.Serve{
				Service:        e.dex,
				Logger:         e.logger,
				ListenAddr:     addr,
				AllowedOrigins: origins,
				OnListening: func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Pokédex API listening on %s/api\n", options.DisplayAddr("http", a))
				},
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddListenArgs(cmd, lo, 8080)
	cmd.Flags().StringSliceVar(&origins, "allowed-origin", nil, "CORS origin allowed to call the API (repeatable).")

	topLevel.AddCommand(cmd)
}
