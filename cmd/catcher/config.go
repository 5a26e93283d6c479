package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-catcher/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Prints the config the game would run with, after resolving the
config file search order and applying --difficulty.

The output is valid YAML and can be saved as a custom config:
  catcher config > ~/.catcher/configs/catcher.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
