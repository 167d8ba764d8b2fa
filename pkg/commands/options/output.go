package options

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/pokedex/pkg/category"
	"tableflip.dev/pokedex/pkg/pokeapi"
	"tableflip.dev/pokedex/pkg/printers"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

// HandleError reports err as {"error": ...} in JSON mode. In text mode a
// failed fetch also prints the retry hint before err is returned.
func (o *OutputOptions) HandleError(err error) error {
	if err == nil {
		return nil
	}
	if o.JSON {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	if errors.Is(err, category.ErrUnknown) {
		return err
	}
	if errors.Is(err, pokeapi.ErrFetchFailed) || errors.Is(err, category.ErrResolutionFailed) {
		pp := &printers.PrettyPrint{}
		pp.FetchFailed()
	}
	return err
}
