// Package trainer records the trainer name and prints the catalog greeting.
package trainer

import (
	"context"
	"fmt"
	"io"

	"tableflip.dev/pokedex/pkg/printers"
	"tableflip.dev/pokedex/pkg/trainer"
)

// Trainer validates a name and greets the trainer.
type Trainer struct {
	Trainer *trainer.Trainer
	Name    string
	// Prompt supplies the name when Name is empty.
	Prompt func() (string, error)
	JSON   bool
	Out    io.Writer
}

// Greeting is the JSON form of a greeting.
type Greeting struct {
	Name     string `json:"name"`
	Greeting string `json:"greeting"`
}

func (t *Trainer) Do(ctx context.Context) error {
	name := t.Name
	if name == "" && t.Prompt != nil {
		var err error
		if name, err = t.Prompt(); err != nil {
			return err
		}
	}
	if err := t.Trainer.Set(name); err != nil {
		return err
	}

	if t.JSON {
		return printers.JSON(printers.Output(t.Out), Greeting{Name: t.Trainer.Name(), Greeting: t.Trainer.Greeting()})
	}
	_, _ = fmt.Fprintln(printers.Output(t.Out), t.Trainer.Greeting())
	return nil
}
