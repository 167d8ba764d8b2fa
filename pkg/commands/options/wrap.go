package options

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

func Wrap80(text string) string {
	return Wrap(text, 80)
}

// Wrap folds text at word boundaries so no line exceeds width.
func Wrap(text string, width int) string {
	return wordwrap.String(strings.Join(strings.Fields(text), " "), width)
}
