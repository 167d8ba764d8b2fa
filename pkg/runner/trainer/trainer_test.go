package trainer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"tableflip.dev/pokedex/pkg/trainer"
)

func TestTrainerGreets(t *testing.T) {
	var buf bytes.Buffer
	r := &Trainer{Trainer: trainer.New(), Name: "  Misty ", Out: &buf}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "Welcome Misty, here you can find your favorite Pokémon." {
		t.Fatalf("unexpected greeting %q", got)
	}
}

func TestTrainerPrompts(t *testing.T) {
	var buf bytes.Buffer
	prompted := false
	r := &Trainer{
		Trainer: trainer.New(),
		Prompt: func() (string, error) {
			prompted = true
			return "Brock", nil
		},
		JSON: true,
		Out:  &buf,
	}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !prompted {
		t.Fatalf("expected prompt to be used when no name is given")
	}
	if !strings.Contains(buf.String(), `"name": "Brock"`) {
		t.Fatalf("unexpected json %s", buf.String())
	}
}

func TestTrainerRejectsShortName(t *testing.T) {
	tr := trainer.New()
	r := &Trainer{Trainer: tr, Name: "A", Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); !errors.Is(err, trainer.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if tr.Name() != "" {
		t.Fatalf("name should not be stored on failure")
	}
}
