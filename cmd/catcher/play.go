package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-catcher/internal/config"
	"github.com/vovakirdan/tui-catcher/internal/core"
	"github.com/vovakirdan/tui-catcher/internal/game"
	"github.com/vovakirdan/tui-catcher/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a new game.

Controls:
  Left/H/A     - Move left
  Right/L/D    - Move right
  Space/R      - Play again (after game over)
  Esc/Q        - Quit

Difficulty options:
  easy   - Slower fruit, longer spawn intervals, wider catch margin
  normal - Default settings
  hard   - Faster fruit, shorter spawn intervals, tight catch margin
  fixed  - No spawn rate ramp, stays at the base interval

Examples:
  catcher play
  catcher play --difficulty easy
  catcher play --seed 42 --log-file catcher.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// loadGameConfig resolves the config file and applies the difficulty preset.
func loadGameConfig() (config.CatcherConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.CatcherConfig{}, err
	}

	cfg, err := config.LoadCatcher(flagConfig)
	if err != nil {
		return config.CatcherConfig{}, err
	}

	// Presets rewrite speeds and intervals, so a valid file can become invalid.
	config.ApplyCatcherPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.CatcherConfig{}, fmt.Errorf("invalid catcher config with difficulty %q: %w", flagDifficulty, err)
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS

	// Get terminal size
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if flagDifficulty != "" {
		logger.Info("difficulty preset applied", "preset", flagDifficulty)
	}
	session := game.New(gameCfg, cfg.Seed)

	if err := tui.Run(session, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
