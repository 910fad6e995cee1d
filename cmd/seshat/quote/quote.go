package quote

import (
	"fmt"
	"os"
	"strings"

	"github.com/flarebyte/seshat-papyrus/internal/docjson"
	"github.com/spf13/cobra"
)

// Cmd represents the `seshat quote` command. Empty input is allowed
// and maps to empty output.
var Cmd = &cobra.Command{
	Use:           "quote [text]",
	Short:         "Escape text so it is safe inside a JSON string",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(os.Stdout, docjson.Quote(strings.Join(args, " ")))
		return err
	},
}
