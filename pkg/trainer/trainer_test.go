package trainer

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestValidate(t *testing.T) {
	if got, err := Validate("  Ash  "); err != nil || got != "Ash" {
		t.Fatalf("Validate = %q, %v", got, err)
	}
	for _, bad := range []string{"", "   ", "A", " b "} {
		if _, err := Validate(bad); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("Validate(%q): expected ErrInvalidInput, got %v", bad, err)
		}
	}
	_, err := Validate("")
	if !strings.Contains(err.Error(), "please enter your name") {
		t.Fatalf("unexpected message %q", err)
	}
}

func TestTrainerSetKeepsPreviousOnError(t *testing.T) {
	tr := New()
	if tr.Name() != "" {
		t.Fatalf("expected empty name")
	}
	if err := tr.Set("Misty"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := tr.Set("x"); err == nil {
		t.Fatalf("expected error")
	}
	if tr.Name() != "Misty" {
		t.Fatalf("failed Set must not overwrite, got %q", tr.Name())
	}
	if got := tr.Greeting(); got != "Welcome Misty, here you can find your favorite Pokémon." {
		t.Fatalf("unexpected greeting %q", got)
	}
}

func TestTrainerConcurrentReaders(t *testing.T) {
	tr := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = tr.Name()
			}
		}()
	}
	if err := tr.Set("Brock"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	wg.Wait()
	if tr.Name() != "Brock" {
		t.Fatalf("unexpected name %q", tr.Name())
	}
}
