package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tuning configuration",
	Long: `Loads the configuration the same way 'play' does and prints it as YAML.
The output is a complete file that can be edited and passed back with --config.`,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
