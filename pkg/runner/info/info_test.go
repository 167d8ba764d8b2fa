package info

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/pokedex/pkg/config"
)

func TestInfo(t *testing.T) {
	color.NoColor = true
	t.Setenv("POKEDEX_CONFIG_PATH", "")

	var buf bytes.Buffer
	n := &Info{
		Config: &config.Config{API: "http://localhost/api/v2", PageSize: 8, BlockSize: 8, Timeout: 3 * time.Second, Trainer: "Ash"},
		Out:    &buf,
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	got := buf.String()
	for _, want := range []string{"env var not set", "none (defaults)", "http://localhost/api/v2", "3s", "Ash"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestInfoJSON(t *testing.T) {
	var buf bytes.Buffer
	n := &Info{Config: &config.Config{API: "x", PageSize: 4}, JSON: true, Out: &buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(buf.String(), `"page_size": 4`) {
		t.Fatalf("unexpected json %s", buf.String())
	}
}
