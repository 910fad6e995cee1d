package root

import (
	"github.com/flarebyte/seshat-papyrus/cmd/seshat/decode"
	"github.com/flarebyte/seshat-papyrus/cmd/seshat/encode"
	"github.com/flarebyte/seshat-papyrus/cmd/seshat/quote"
	"github.com/flarebyte/seshat-papyrus/cmd/seshat/validate"
	"github.com/flarebyte/seshat-papyrus/cmd/seshat/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for seshat.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seshat",
		Short: "CLI: bridge JSON documents and typed attribute records, recorded by the goddess of the scribes",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(validate.Cmd)
	cmd.AddCommand(quote.Cmd)
	cmd.AddCommand(decode.Cmd)
	cmd.AddCommand(encode.Cmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
