// Package trainer holds the name the user entered before browsing.
package trainer

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"
)

// MinNameLength is the shortest accepted trainer name.
const MinNameLength = 2

// ErrInvalidInput is returned for names that fail validation.
var ErrInvalidInput = errors.New("invalid input")

// Validate trims name and checks it is long enough.
func Validate(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: please enter your name", ErrInvalidInput)
	}
	if utf8.RuneCountInString(trimmed) < MinNameLength {
		return "", fmt.Errorf("%w: name must be at least %d characters", ErrInvalidInput, MinNameLength)
	}
	return trimmed, nil
}

// Trainer is the shared "entered name". Set is the only writer; any number
// of views may read Name concurrently.
type Trainer struct {
	mu   sync.RWMutex
	name string
}

// New returns an empty Trainer.
func New() *Trainer {
	return &Trainer{}
}

// Set validates and stores name.
func (t *Trainer) Set(name string) error {
	trimmed, err := Validate(name)
	if err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.name = trimmed
	return nil
}

// Name returns the stored name, or "" before Set succeeded.
func (t *Trainer) Name() string {
	if t == nil {
		return ""
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.name
}

// Greeting is the catalog header line.
func (t *Trainer) Greeting() string {
	name := t.Name()
	if name == "" {
		name = "trainer"
	}
	return fmt.Sprintf("Welcome %s, here you can find your favorite Pokémon.", name)
}
