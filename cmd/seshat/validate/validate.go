package validate

import (
	"fmt"
	"os"
	"strings"

	"github.com/flarebyte/seshat-papyrus/internal/jpath"
	"github.com/spf13/cobra"
)

// Cmd represents the `seshat validate` command. It always succeeds and
// always prints one line: "<bytes-consumed>:<canonical-path>" when the
// expression compiles, "<offset>:<error-message>" when it does not.
var Cmd = &cobra.Command{
	Use:           "validate <jpath>",
	Short:         "Check a jpath expression and print its canonical form",
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		expr := strings.Join(args, " ")
		_, err := fmt.Fprintln(os.Stdout, jpath.Validate(expr))
		return err
	},
}
