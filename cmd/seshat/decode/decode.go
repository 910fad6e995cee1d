package decode

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/flarebyte/seshat-papyrus/internal/config"
	"github.com/flarebyte/seshat-papyrus/internal/expand"
	"github.com/flarebyte/seshat-papyrus/internal/mapper"
	"github.com/spf13/cobra"
)

var (
	cfgPath  string
	flagVars []string
)

// Cmd represents the `seshat decode` command: parse a JSON document
// and map leaf values to typed attribute records. Multiple input files
// are concatenated before parsing.
var Cmd = &cobra.Command{
	Use:           "decode <file>...",
	Short:         "Extract typed attribute records from a JSON document",
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgPath == "" {
			return fmt.Errorf("missing required flag: --config")
		}
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if cfg.Decode == nil {
			return fmt.Errorf("config has no decode block")
		}
		vars, err := expand.ParseVars(flagVars)
		if err != nil {
			return err
		}

		plan, err := mapper.BuildPlan(cfg.Decode.Entries, cfg.Dict)
		if err != nil {
			if ce, ok := err.(*mapper.ConfigError); ok {
				for _, line := range ce.Render() {
					fmt.Fprintln(os.Stderr, line)
				}
			}
			return err
		}

		frags := make([]string, 0, len(args))
		for _, name := range args {
			b, err := os.ReadFile(name)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			frags = append(frags, string(b))
		}

		engine := mapper.Engine{
			Dict:    cfg.Dict,
			Expand:  expand.Lua(vars),
			Lenient: cfg.Decode.Lenient,
		}
		res := engine.Run(plan, cfg.Decode.Entries, mapper.JoinFragments(frags))
		if res.Outcome == mapper.OutcomeFailed {
			return fmt.Errorf("decode failed: %s", strings.Join(strings.Fields(res.Reason), " "))
		}

		// Success output is a single JSON line.
		records := make([]map[string]any, 0, len(res.Pairs))
		for _, p := range res.Pairs {
			records = append(records, map[string]any{
				"name":  p.Name,
				"op":    p.Op.String(),
				"value": p.Value.Interface(),
			})
		}
		out, err := json.Marshal(map[string]any{
			"outcome": res.Outcome.String(),
			"records": records,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to config file (.cue)")
	Cmd.Flags().StringArrayVar(&flagVars, "var", nil, "Expansion variable key=value (repeatable)")
}
