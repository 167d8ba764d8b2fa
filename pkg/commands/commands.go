package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableflip.dev/pokedex/pkg/commands/options"
	"tableflip.dev/pokedex/pkg/config"
	"tableflip.dev/pokedex/pkg/dex"
	"tableflip.dev/pokedex/pkg/logging"
	"tableflip.dev/pokedex/pkg/pokeapi"
	"tableflip.dev/pokedex/pkg/printers"
	"tableflip.dev/pokedex/pkg/trainer"
)

var (
	output = &options.OutputOptions{}
	global = &options.GlobalOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "pokedex",
		Short: options.Wrap80("Browse the Pokédex from the command line."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			printers.ConfigureColor(stdoutFile(cmd), global.NoColor)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddGlobalArgs(cmd, global)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addList(topLevel)
	addGet(topLevel)
	addMoves(topLevel)
	addTypes(topLevel)
	addTrainer(topLevel)
	addUI(topLevel)
	addServe(topLevel)
	addMCP(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// env is everything a command needs to talk to the catalog.
type env struct {
	config  *config.Config
	logger  *zap.Logger
	trainer *trainer.Trainer
	dex     *dex.Service
}

// loadEnv reads configuration and builds the catalog service. The trainer
// name comes from --trainer, falling back to the config file.
func loadEnv() (*env, error) {
	c, err := config.Load(global.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := logging.New(global.Verbose)
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded",
		zap.String("file", c.File),
		zap.String("api", c.API),
		zap.Duration("timeout", c.Timeout),
	)

	t := trainer.New()
	name := global.Trainer
	if name == "" {
		name = c.Trainer
	}
	if name != "" {
		if err := t.Set(name); err != nil {
			return nil, err
		}
	}

	client := pokeapi.New(c.API,
		pokeapi.WithTimeout(c.Timeout),
		pokeapi.WithLogger(logger),
	)
	return &env{
		config:  c,
		logger:  logger,
		trainer: t,
		dex: &dex.Service{
			API:       client,
			PageSize:  c.PageSize,
			BlockSize: c.BlockSize,
			Logger:    logger,
		},
	}, nil
}
