// Package info reports the effective configuration.
package info

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/pokedex/pkg/config"
	"tableflip.dev/pokedex/pkg/printers"
)

type Info struct {
	Config *config.Config
	JSON   bool
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	if n.Config == nil {
		var err error
		n.Config, err = config.Load("")
		if err != nil {
			return err
		}
	}
	w := printers.Output(n.Out)

	if n.JSON {
		return printers.JSON(w, n.Config)
	}

	if override := os.Getenv("POKEDEX_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(w, "POKEDEX_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(w, "POKEDEX_CONFIG_PATH env var not set")
	}

	file := n.Config.File
	if file == "" {
		file = "none (defaults)"
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("config file"), file)
	tbl.AddRow(bold.Sprint("api"), n.Config.API)
	tbl.AddRow(bold.Sprint("page_size"), strconv.Itoa(n.Config.PageSize))
	tbl.AddRow(bold.Sprint("block_size"), strconv.Itoa(n.Config.BlockSize))
	tbl.AddRow(bold.Sprint("timeout"), n.Config.Timeout.String())
	if n.Config.Trainer != "" {
		tbl.AddRow(bold.Sprint("trainer"), n.Config.Trainer)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(w, tbl)
	return nil
}
