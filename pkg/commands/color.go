package commands

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// stdoutFile is the file behind cmd's output, or os.Stdout when output was
// redirected to something that is not a file.
func stdoutFile(cmd *cobra.Command) *os.File {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return f
	}
	return os.Stdout
}

// stdout is where runners print. The process stdout goes through the color
// aware writer.
func stdout(cmd *cobra.Command) io.Writer {
	if w := cmd.OutOrStdout(); w != os.Stdout {
		return w
	}
	return color.Output
}
