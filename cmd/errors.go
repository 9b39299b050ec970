package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const usageLine = "Usage: md2html <input-path> <output-path>"

// usageError is returned when the command line is missing positional arguments.
type usageError struct{}

func (usageError) Error() string { return usageLine }

// MissingInputError reports an input file that does not exist or disappeared
// before it could be read.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("Missing %s", e.Path)
}

// requireInputOutput validates the root command's positional arguments.
func requireInputOutput(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return usageError{}
	}
	return nil
}
