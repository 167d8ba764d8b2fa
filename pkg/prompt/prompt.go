// Package prompt asks the user for input the command line left out.
package prompt

import (
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/pokedex/pkg/category"
	"tableflip.dev/pokedex/pkg/pokeapi"
	"tableflip.dev/pokedex/pkg/trainer"
)

// IO is where prompts read keys from and draw to. The process's own stdin
// and stdout are left to promptui so it can switch the terminal to raw mode.
type IO struct {
	In  io.Reader
	Out io.Writer
}

func (p IO) stdin() io.ReadCloser {
	if p.In == nil || p.In == os.Stdin {
		return nil
	}
	return io.NopCloser(p.In)
}

func (p IO) stdout() io.WriteCloser {
	if p.Out == nil || p.Out == os.Stdout {
		return nil
	}
	return nopCloser{p.Out}
}

// TrainerName asks for the trainer's name until it passes validation.
func (p IO) TrainerName() (string, error) {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | green }}: ",
		Invalid: "{{ . | red }}: ",
		Success: "{{ . | bold }}: ",
	}

	prompt := promptui.Prompt{
		Label:     "Trainer name",
		Templates: templates,
		Validate: func(input string) error {
			_, err := trainer.Validate(input)
			return err
		},
		Stdin:  p.stdin(),
		Stdout: p.stdout(),
	}

	result, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

// Category lets the user pick a type, with "All" as the first choice.
func (p IO) Category(cats []pokeapi.Category) (string, error) {
	items := make([]pokeapi.Category, 0, len(cats)+1)
	items = append(items, pokeapi.Category{ID: category.All, Name: category.All})
	items = append(items, cats...)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }}",
		Inactive: "   {{ .Name }}",
		Selected: "{{ .Name | bold }}",
	}

	searcher := func(input string, index int) bool {
		name := strings.ToLower(items[index].Name)
		input = strings.ToLower(strings.TrimSpace(input))
		return strings.Contains(name, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Type",
		Items:     items,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     p.stdin(),
		Stdout:    p.stdout(),
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return items[i].ID, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
