// catcher is a terminal fruit-catching arcade game.
//
// Usage:
//
//	catcher                  - Play the game
//	catcher play             - Play the game
//	catcher config           - Print the effective game config as YAML
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Load a custom config YAML
//	--difficulty <preset>  - Apply a preset: easy, normal, hard, fixed
//	--log-file <path>      - Write logs to a file (default: discarded)
//	--log-level <level>    - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catcher",
	Short: "Catcher - catch falling fruit in your terminal",
	Long: `Catcher is a terminal arcade game. Move the basket along the bottom
of the field and catch the fruit before it hits the ground.
Every catch scores a point. Every miss costs a life.

Available commands:
  play     - Play the game (default)
  config   - Print the effective config

Examples:
  catcher
  catcher --difficulty hard
  catcher play --seed 42
  catcher config --difficulty easy > my-catcher.yaml
  catcher --config ./my-catcher.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
