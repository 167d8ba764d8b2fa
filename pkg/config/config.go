// Package config loads pokedex settings from .pokedex.yaml and POKEDEX_* env
// vars.
package config

import (
	"errors"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/pokedex/pkg/pager"
	"tableflip.dev/pokedex/pkg/pokeapi"
)

// Config is the resolved configuration.
type Config struct {
	API       string        `json:"api" yaml:"api"`
	PageSize  int           `json:"page_size" yaml:"page_size"`
	BlockSize int           `json:"block_size" yaml:"block_size"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	Trainer   string        `json:"trainer,omitempty" yaml:"trainer,omitempty"`

	// File is the config file that was read, if any.
	File string `json:"file,omitempty" yaml:"-"`
}

// Load reads configuration into a fresh viper instance. explicit, when not
// empty, names a config file to use instead of searching.
func Load(explicit string) (*Config, error) {
	v := viper.New()
	v.SetDefault("api", pokeapi.DefaultBaseURL)
	v.SetDefault("page_size", pager.DefaultPageSize)
	v.SetDefault("block_size", pager.DefaultBlockSize)
	v.SetDefault("timeout", "10s")
	v.SetDefault("trainer", "")

	v.SetEnvPrefix("POKEDEX")
	v.AutomaticEnv()

	if explicit != "" {
		path, err := homedir.Expand(explicit)
		if err != nil {
			return nil, err
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".pokedex") // .yaml is implicit
		if override := os.Getenv("POKEDEX_CONFIG_PATH"); override != "" {
			if expanded, err := homedir.Expand(override); err == nil {
				v.AddConfigPath(expanded)
			}
		}
		v.AddConfigPath("./")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	c := &Config{
		API:       v.GetString("api"),
		PageSize:  v.GetInt("page_size"),
		BlockSize: v.GetInt("block_size"),
		Timeout:   v.GetDuration("timeout"),
		Trainer:   v.GetString("trainer"),
		File:      v.ConfigFileUsed(),
	}
	if c.PageSize <= 0 {
		c.PageSize = pager.DefaultPageSize
	}
	if c.BlockSize <= 0 {
		c.BlockSize = pager.DefaultBlockSize
	}
	return c, nil
}
