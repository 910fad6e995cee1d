package encode

import (
	"fmt"
	"os"

	"github.com/flarebyte/seshat-papyrus/internal/attrfile"
	"github.com/flarebyte/seshat-papyrus/internal/config"
	"github.com/flarebyte/seshat-papyrus/internal/docjson"
	"github.com/flarebyte/seshat-papyrus/internal/expand"
	"github.com/flarebyte/seshat-papyrus/internal/mapper"
	"github.com/spf13/cobra"
)

var (
	cfgPath   string
	attrsPath string
	flagVars  []string
)

// Cmd represents the `seshat encode` command: apply the configured
// include/exclude templates to a source attribute collection and print
// the resulting JSON document.
var Cmd = &cobra.Command{
	Use:           "encode",
	Short:         "Serialize a selected attribute subset as a JSON document",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgPath == "" {
			return fmt.Errorf("missing required flag: --config")
		}
		if attrsPath == "" {
			return fmt.Errorf("missing required flag: --attrs")
		}
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if cfg.Encode == nil {
			return fmt.Errorf("config has no encode block")
		}
		vars, err := expand.ParseVars(flagVars)
		if err != nil {
			return err
		}

		source, err := attrfile.Read(attrsPath, cfg.Dict)
		if err != nil {
			return err
		}
		selected, err := mapper.BuildSet(cfg.Encode.Templates, source, cfg.Dict, expand.Lua(vars))
		if err != nil {
			if be, ok := err.(*mapper.BuildError); ok {
				for _, line := range be.Render() {
					fmt.Fprintln(os.Stderr, line)
				}
			}
			return err
		}

		fmt.Fprintln(os.Stdout, docjson.Serialize(selected, cfg.Encode.Format))
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to config file (.cue)")
	Cmd.Flags().StringVarP(&attrsPath, "attrs", "a", "", "Path to YAML attribute collection")
	Cmd.Flags().StringArrayVar(&flagVars, "var", nil, "Expansion variable key=value (repeatable)")
}
