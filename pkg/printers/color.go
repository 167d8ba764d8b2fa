// Package printers renders pokedex views for the terminal.
package printers

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"tableflip.dev/pokedex/pkg/format"
)

// ConfigureColor turns colored output off when disabled is set or f is not a
// terminal.
func ConfigureColor(f *os.File, disabled bool) {
	if disabled {
		color.NoColor = true
		return
	}
	fd := f.Fd()
	color.NoColor = !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// typeColor picks the closest basic terminal color for a type.
func typeColor(typeName string) *color.Color {
	r, g, b := format.TypeRGB(typeName)
	switch {
	case r > 200 && g > 180 && b < 120:
		return color.New(color.FgYellow)
	case r > g && r > b:
		return color.New(color.FgRed)
	case g > r && g > b:
		return color.New(color.FgGreen)
	case b > r && b > g:
		if r > 100 {
			return color.New(color.FgMagenta)
		}
		return color.New(color.FgBlue)
	}
	return color.New(color.FgWhite)
}

// Output returns w, or the color aware stdout when w is nil.
func Output(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}
