package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-stack/internal/config"
	"github.com/vovakirdan/tui-stack/internal/core"
	"github.com/vovakirdan/tui-stack/internal/games/stack"
	"github.com/vovakirdan/tui-stack/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal.

Controls:
  Space/Enter/Up  - Drop the platform
  A               - Toggle assist (every drop is perfect)
  P/Esc           - Pause
  R               - Restart (after game over)
  Ctrl+S          - Save a text screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Slower platforms and a wider perfect window
  normal - Values from the config file
  hard   - Faster platforms, narrow perfect window, longer streak to expand
  fixed  - Platforms never speed up

Examples:
  stack play
  stack play --difficulty easy
  stack play --config ./my-stack.yaml --log-file stack.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags that select the game configuration.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadGameConfig loads the config file and applies the difficulty preset.
func loadGameConfig() (config.StackConfig, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.StackConfig{}, err
	}
	cfg, err := config.LoadStack(flagConfig)
	if err != nil {
		return config.StackConfig{}, err
	}
	config.ApplyStackPreset(&cfg, preset)
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go to --log-file.
	logger, closeLog, err := newLogger("stack", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := stack.New(stack.WithConfig(cfg), stack.WithLogger(logger))
	if err := tui.Run(game, rc, logger); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
